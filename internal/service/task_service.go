package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/domain/priority"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
)

// DefaultSuggestLimit is the number of suggestions returned when the caller
// does not ask for a specific count.
const DefaultSuggestLimit = 3

// AnalyzeOptions selects how a batch is scored.
type AnalyzeOptions struct {
	Strategy domain.Strategy
	// UseAI asks the external advisor first; the engine is used when the
	// advisor is unavailable.
	UseAI bool
}

// TaskService provides the task prioritization use cases
type TaskService interface {
	// Analyze rejects cyclic batches, scores the rest and returns the results
	// ordered by score descending. The batch replaces the stored one when a
	// store is configured.
	Analyze(ctx context.Context, tasks []domain.Task, opts AnalyzeOptions) ([]domain.ScoreResult, error)

	// Suggest rescores the stored batch with the smart strategy against the
	// current date and returns the top limit results. A limit of 0 selects
	// DefaultSuggestLimit.
	Suggest(ctx context.Context, limit int) ([]domain.ScoreResult, error)
}

// Option customizes a task service.
type Option func(*taskServiceImpl)

// WithClock replaces time.Now as the source of the evaluation date.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		s.now = now
	}
}

// WithStore enables persistence of analyzed batches.
func WithStore(tasks store.TaskStore) Option {
	return func(s *taskServiceImpl) {
		s.store = tasks
	}
}

// WithAdvisor sets the external advisor consulted when AnalyzeOptions.UseAI
// is true.
func WithAdvisor(a advisor.Advisor) Option {
	return func(s *taskServiceImpl) {
		if a != nil {
			s.advisor = a
		}
	}
}

type taskServiceImpl struct {
	engine  priority.Service
	advisor advisor.Advisor
	store   store.TaskStore
	now     func() time.Time
	logger  *slog.Logger
}

// NewTaskService creates a TaskService over the given engine.
// Without options it has no store, no advisor and uses the wall clock.
func NewTaskService(engine priority.Service, log *slog.Logger, opts ...Option) (TaskService, error) {
	if engine == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "engine cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	s := &taskServiceImpl{
		engine:  engine,
		advisor: advisor.Disabled{},
		now:     time.Now,
		logger:  log.With("component", "task_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Analyze implements TaskService.
func (s *taskServiceImpl) Analyze(
	ctx context.Context,
	tasks []domain.Task,
	opts AnalyzeOptions,
) ([]domain.ScoreResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if cycles := s.engine.DetectCycles(tasks); len(cycles) > 0 {
		log.InfoContext(ctx, "rejecting batch with circular dependencies",
			"task_count", len(tasks),
			"cycles", cycles)
		return nil, &CycleError{Messages: cycles}
	}

	strategy := opts.Strategy
	if !strategy.IsKnown() {
		strategy = domain.StrategySmart
	}

	results, source := s.score(ctx, tasks, strategy, opts.UseAI)
	priority.SortResults(results)

	log.InfoContext(ctx, "batch analyzed",
		"task_count", len(tasks),
		"strategy", strategy.String(),
		"source", source)

	if s.store != nil {
		if err := s.store.ReplaceAll(ctx, tasks); err != nil {
			log.ErrorContext(ctx, "failed to persist analyzed batch", "error", err)
			return nil, NewTaskServiceError("analyze", "failed to save tasks", err)
		}
	}

	return results, nil
}

// score asks the advisor when requested and falls back to the engine.
func (s *taskServiceImpl) score(
	ctx context.Context,
	tasks []domain.Task,
	strategy domain.Strategy,
	useAI bool,
) ([]domain.ScoreResult, string) {
	if useAI {
		outcome := s.advisor.Advise(ctx, tasks)
		if results, ok := outcome.Results(); ok {
			return results, "advisor"
		}
		logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx,
			"advisor unavailable, using built-in engine",
			"reason", outcome.Reason())
	}
	return s.engine.Rank(tasks, strategy, s.now()), "engine"
}

// Suggest implements TaskService.
func (s *taskServiceImpl) Suggest(ctx context.Context, limit int) ([]domain.ScoreResult, error) {
	if limit == 0 {
		limit = DefaultSuggestLimit
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if s.store == nil {
		return nil, ErrNoStore
	}

	tasks, err := s.store.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx,
			"failed to load stored tasks", "error", err)
		return nil, NewTaskServiceError("suggest", "failed to load tasks", err)
	}

	results := s.engine.Rank(tasks, domain.StrategySmart, s.now())
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
