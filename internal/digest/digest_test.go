package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/config"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggesterFunc func(ctx context.Context, limit int) ([]domain.ScoreResult, error)

func (f suggesterFunc) Suggest(ctx context.Context, limit int) ([]domain.ScoreResult, error) {
	return f(ctx, limit)
}

func TestNew(t *testing.T) {
	t.Parallel()

	ok := suggesterFunc(func(context.Context, int) ([]domain.ScoreResult, error) { return nil, nil })

	_, err := New(ok, config.DigestConfig{Schedule: "@daily", Limit: 3}, nil)
	assert.NoError(t, err)

	_, err = New(ok, config.DigestConfig{Schedule: "not a schedule", Limit: 3}, nil)
	assert.ErrorContains(t, err, "invalid schedule")

	_, err = New(nil, config.DigestConfig{Schedule: "@daily"}, nil)
	assert.Error(t, err)
}

func TestNextRun(t *testing.T) {
	t.Parallel()

	d, err := New(suggesterFunc(func(context.Context, int) ([]domain.ScoreResult, error) { return nil, nil }),
		config.DigestConfig{Schedule: "30 7 * * *", Limit: 3}, nil)
	require.NoError(t, err)

	from := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, time.June, 16, 7, 30, 0, 0, time.Local), d.NextRun(from))
}

func TestRunOnce(t *testing.T) {
	t.Parallel()

	logBuf, log := logger.NewTestLogger(t)
	gotLimit := 0
	d, err := New(suggesterFunc(func(_ context.Context, limit int) ([]domain.ScoreResult, error) {
		gotLimit = limit
		return []domain.ScoreResult{
			{Task: domain.Task{ID: 9, Title: "File taxes"}, Score: 150, Explanation: "Due today (+100)"},
		}, nil
	}), config.DigestConfig{Schedule: "@hourly", Limit: 5}, log)
	require.NoError(t, err)

	results, err := d.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 5, gotLimit)
	logger.AssertLogField(t, logBuf, "title", "File taxes")
	logger.AssertLogField(t, logBuf, "rank", float64(1))
}

func TestRunOnce_DefaultLimitAndErrors(t *testing.T) {
	t.Parallel()

	gotLimit := 0
	failing := errors.New("store offline")
	d, err := New(suggesterFunc(func(_ context.Context, limit int) ([]domain.ScoreResult, error) {
		gotLimit = limit
		return nil, failing
	}), config.DigestConfig{Schedule: "@daily"}, nil)
	require.NoError(t, err)

	_, err = d.RunOnce(context.Background())
	assert.ErrorIs(t, err, failing)
	assert.Equal(t, service.DefaultSuggestLimit, gotLimit)
}

func TestRunOnce_NoStore(t *testing.T) {
	t.Parallel()

	logBuf, log := logger.NewTestLogger(t)
	d, err := New(suggesterFunc(func(context.Context, int) ([]domain.ScoreResult, error) {
		return nil, service.ErrNoStore
	}), config.DigestConfig{Schedule: "@daily"}, log)
	require.NoError(t, err)

	results, err := d.RunOnce(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, results)
	logger.AssertLogContains(t, logBuf, "digest skipped")
}

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	logBuf, log := logger.NewTestLogger(t)
	calls := make(chan struct{}, 10)
	d, err := New(suggesterFunc(func(context.Context, int) ([]domain.ScoreResult, error) {
		calls <- struct{}{}
		return nil, nil
	}), config.DigestConfig{Schedule: "@every 1s"}, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("digest job did not run")
	}
	d.Stop()
	logger.AssertLogContains(t, logBuf, "digest scheduled")
}
