package main

import (
	"net/http"

	"github.com/Manoj-Murari/task-analyzer/internal/api"
	apiMiddleware "github.com/Manoj-Murari/task-analyzer/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	taskHandler := api.NewTaskHandler(app.taskService, api.TaskHandlerConfig{
		DefaultStrategy: app.defaultStrategy(),
		SuggestLimit:    app.config.Scoring.SuggestLimit,
	}, app.logger)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/analyze", taskHandler.Analyze)
		r.Get("/suggest", taskHandler.Suggest)
	})

	r.Get("/health", taskHandler.Health)

	return r
}
