package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestStore(t *testing.T) *SQLiteTaskStore {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(ctx, db, nil))
	return NewSQLiteTaskStore(db, nil)
}

func TestSQLiteTaskStore_ReplaceAllAndList(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	tasks := []domain.Task{
		{ID: 3, Title: "Deploy", DueDate: date(t, "2025-06-20"), EstimatedHours: 1, Importance: 9, Dependencies: []int64{2, 1, 77}},
		{ID: 1, Title: "Design", DueDate: date(t, "2025-06-16"), EstimatedHours: 12, Importance: 4, Dependencies: []int64{}},
		{ID: 2, Title: "Build", DueDate: date(t, "2025-06-18"), EstimatedHours: 6.5, Importance: 7, Dependencies: []int64{1}},
	}
	require.NoError(t, s.ReplaceAll(ctx, tasks))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []int64{3, 1, 2}, []int64{got[0].ID, got[1].ID, got[2].ID}, "submission order")
	assert.Equal(t, []int64{2, 1}, got[0].Dependencies, "external dependency 77 is not stored")
	assert.Equal(t, []int64{}, got[1].Dependencies)
	assert.Equal(t, []int64{1}, got[2].Dependencies)
	assert.Equal(t, 6.5, got[2].EstimatedHours)
	assert.True(t, date(t, "2025-06-20").Equal(got[0].DueDate))
	assert.Equal(t, "Deploy", got[0].Title)
}

func TestSQLiteTaskStore_ReplaceAllDiscardsPreviousBatch(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, []domain.Task{
		{ID: 1, Title: "Old", DueDate: date(t, "2025-01-01"), Importance: 1, Dependencies: []int64{2}},
		{ID: 2, Title: "Older", DueDate: date(t, "2025-01-02"), Importance: 1},
	}))
	require.NoError(t, s.ReplaceAll(ctx, []domain.Task{
		{ID: 5, Title: "New", DueDate: date(t, "2025-02-01"), Importance: 2},
	}))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)

	require.NoError(t, s.ReplaceAll(ctx, nil))
	got, err = s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteTaskStore_InvalidBatchKeepsPreviousBatch(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, []domain.Task{
		{ID: 1, Title: "Keep", DueDate: date(t, "2025-01-01"), Importance: 1},
	}))

	err := s.ReplaceAll(ctx, []domain.Task{
		{ID: 2, Title: "Bad", DueDate: date(t, "2025-01-01"), Importance: 11},
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Keep", got[0].Title)
}

func TestSQLiteTaskStore_RepeatedIDs(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, []domain.Task{
		{ID: 7, Title: "First", DueDate: date(t, "2025-03-01"), Importance: 1},
		{ID: 7, Title: "Second", DueDate: date(t, "2025-03-02"), Importance: 2},
		{ID: 8, Title: "Third", DueDate: date(t, "2025-03-03"), Importance: 3, Dependencies: []int64{7}},
	}))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"First", "Second", "Third"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.Equal(t, int64(7), got[1].ID)
	assert.Equal(t, []int64{7}, got[2].Dependencies)
}

func TestOpen_CreatesFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db, nil))
	require.NoError(t, db.Close())

	// Migrating again is a no-op.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	assert.NoError(t, Migrate(ctx, db, nil))
}

func TestOpen_EmptyPath(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrUnsupportedDatabase)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(errors.New("UNIQUE constraint failed: tasks.position")), store.ErrDuplicate)
	assert.ErrorIs(t, mapError(errors.New("CHECK constraint failed: importance")), store.ErrInvalidEntity)
	assert.ErrorIs(t, mapError(errors.New("FOREIGN KEY constraint failed")), store.ErrInvalidEntity)

	other := errors.New("disk I/O error")
	assert.Equal(t, other, mapError(other))
}
