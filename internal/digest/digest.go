// Package digest periodically recomputes task suggestions and writes them to
// the log, so an operator sees the current top tasks without calling the API.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/config"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
	"github.com/robfig/cron/v3"
)

// Suggester is the part of service.TaskService the digest needs.
type Suggester interface {
	Suggest(ctx context.Context, limit int) ([]domain.ScoreResult, error)
}

// Digest runs the suggestion job on a cron schedule.
type Digest struct {
	suggester Suggester
	schedule  cron.Schedule
	spec      string
	limit     int
	logger    *slog.Logger
	cron      *cron.Cron
}

// New validates the schedule and builds a digest. The schedule accepts the
// standard five-field cron syntax and descriptors such as "@daily".
func New(suggester Suggester, cfg config.DigestConfig, log *slog.Logger) (*Digest, error) {
	if suggester == nil {
		return nil, errors.New("digest: suggester cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("digest: invalid schedule %q: %w", cfg.Schedule, err)
	}
	limit := cfg.Limit
	if limit < 1 {
		limit = service.DefaultSuggestLimit
	}

	log = log.With("component", "digest")
	return &Digest{
		suggester: suggester,
		schedule:  schedule,
		spec:      cfg.Schedule,
		limit:     limit,
		logger:    log,
		cron:      cron.New(cron.WithLogger(cronLogger{logger: log})),
	}, nil
}

// Start schedules the job and returns immediately. Runs stop when ctx is
// cancelled or Stop is called.
func (d *Digest) Start(ctx context.Context) {
	d.cron.Schedule(d.schedule, cron.FuncJob(func() {
		if _, err := d.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("digest run failed", "error", err)
		}
	}))
	d.cron.Start()
	d.logger.Info("digest scheduled",
		"schedule", d.spec,
		"next_run", d.NextRun(time.Now()))

	go func() {
		<-ctx.Done()
		d.Stop()
	}()
}

// Stop halts the scheduler and waits for a running job to finish.
func (d *Digest) Stop() {
	<-d.cron.Stop().Done()
}

// NextRun returns the first scheduled run after from.
func (d *Digest) NextRun(from time.Time) time.Time {
	return d.schedule.Next(from)
}

// RunOnce computes the current suggestions and logs them.
// A missing store is reported once at WARN and is not an error.
func (d *Digest) RunOnce(ctx context.Context) ([]domain.ScoreResult, error) {
	results, err := d.suggester.Suggest(ctx, d.limit)
	if errors.Is(err, service.ErrNoStore) {
		d.logger.Warn("digest skipped: task persistence is not configured")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		d.logger.Info("task digest: nothing to suggest")
		return results, nil
	}

	for i, r := range results {
		d.logger.Info("task digest",
			"rank", i+1,
			"task_id", r.Task.ID,
			"title", r.Task.Title,
			"due_date", domain.FormatDate(r.Task.DueDate),
			"score", r.Score,
			"explanation", r.Explanation)
	}
	return results, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
