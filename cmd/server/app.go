package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Manoj-Murari/task-analyzer/internal/config"
	"github.com/Manoj-Murari/task-analyzer/internal/digest"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/domain/priority"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/database"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/gemini"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database.Handle

	taskService service.TaskService
	digest      *digest.Digest
}

// newApplication creates a new application instance with all dependencies initialized:
// the database and its migrations, the Gemini advisor, the task service and,
// when enabled, the suggestion digest.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.db, err = database.Open(ctx, cfg.Database.URL, logger.With("component", "database"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	taskAdvisor, err := gemini.New(ctx, logger.With("component", "gemini_advisor"), cfg.LLM)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize Gemini advisor: %w", err)
	}

	app.taskService, err = service.NewTaskService(
		priority.NewDefaultService(),
		logger,
		service.WithStore(app.db.Tasks),
		service.WithAdvisor(taskAdvisor),
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Digest.Enabled {
		app.digest, err = digest.New(app.taskService, cfg.Digest, logger)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to create digest: %w", err)
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the background digest and the HTTP server, and blocks until ctx
// is cancelled or the server fails.
func (app *application) Run(ctx context.Context) error {
	if app.digest != nil {
		app.digest.Start(ctx)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) defaultStrategy() domain.Strategy {
	return domain.ParseStrategy(app.config.Scoring.DefaultStrategy)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.digest != nil {
		app.digest.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
