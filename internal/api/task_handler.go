package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Manoj-Murari/task-analyzer/internal/api/shared"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
)

// MaxSuggestLimit bounds the limit query parameter of the suggest endpoint.
const MaxSuggestLimit = 100

// TaskHandlerConfig carries the request defaults of the task endpoints.
type TaskHandlerConfig struct {
	DefaultStrategy domain.Strategy
	SuggestLimit    int
}

// TaskHandler handles the task prioritization endpoints
type TaskHandler struct {
	taskService service.TaskService
	config      TaskHandlerConfig
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, cfg TaskHandlerConfig, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	if !cfg.DefaultStrategy.IsKnown() {
		cfg.DefaultStrategy = domain.StrategySmart
	}
	if cfg.SuggestLimit < 1 {
		cfg.SuggestLimit = service.DefaultSuggestLimit
	}
	return &TaskHandler{
		taskService: taskService,
		config:      cfg,
		logger:      log.With("component", "task_handler"),
	}
}

// Analyze handles POST /api/tasks/analyze
//
// The body is a JSON array of tasks. Query parameters: strategy (smart,
// fastest, impact, deadline) and use_ai=true to consult the external advisor.
func (h *TaskHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnalyzeRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid request format: expected a JSON array of tasks", err)
		return
	}
	if req == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid request format: expected a JSON array of tasks")
		return
	}

	inputs, details := h.validateTasks(req)
	if len(details) > 0 {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", nil,
			shared.WithDetails(details))
		return
	}

	opts := service.AnalyzeOptions{
		Strategy: getStrategy(r, h.config.DefaultStrategy),
		UseAI:    getUseAI(r),
	}

	results, err := h.taskService.Analyze(r.Context(), domain.BuildTasks(inputs), opts)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze tasks")
		return
	}

	log.Debug("tasks analyzed",
		slog.Int("count", len(results)),
		slog.String("strategy", opts.Strategy.String()),
		slog.Bool("use_ai", opts.UseAI))

	shared.RespondWithJSON(w, r, http.StatusOK, toTaskResponses(results))
}

// validateTasks checks every task of the request and converts the valid ones.
// It returns one detail line per invalid task.
func (h *TaskHandler) validateTasks(req AnalyzeRequest) ([]domain.TaskInput, []string) {
	inputs := make([]domain.TaskInput, 0, len(req))
	var details []string
	for i, t := range req {
		if err := shared.ValidateRequest(&t); err != nil {
			details = append(details, fmt.Sprintf("task %d: %s", i, SanitizeValidationError(err)))
			continue
		}
		in, err := t.toInput()
		if err != nil {
			details = append(details, fmt.Sprintf("task %d: %s", i, GetSafeErrorMessage(err)))
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, details
}

// Suggest handles GET /api/tasks/suggest
//
// Returns the top tasks of the last analyzed batch under the smart strategy.
// The optional limit query parameter defaults to the configured suggest limit.
func (h *TaskHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	limit, err := getLimit(r, h.config.SuggestLimit, MaxSuggestLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	results, err := h.taskService.Suggest(r.Context(), limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load suggestions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toTaskResponses(results))
}

// Health handles GET /health
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
