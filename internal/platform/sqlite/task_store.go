package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
)

const (
	insertTaskQuery = `
		INSERT INTO tasks (position, task_id, title, due_date, estimated_hours, importance)
		VALUES (?, ?, ?, ?, ?, ?)`

	insertDependencyQuery = `
		INSERT INTO task_dependencies (task_position, depends_on_id, ordinal)
		VALUES (?, ?, ?)`

	selectTasksQuery = `
		SELECT position, task_id, title, due_date, estimated_hours, importance
		FROM tasks
		ORDER BY position`

	selectDependenciesQuery = `
		SELECT task_position, depends_on_id
		FROM task_dependencies
		ORDER BY task_position, ordinal`
)

// SQLiteTaskStore implements store.TaskStore on SQLite.
type SQLiteTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteTaskStore creates a task store over an opened and migrated
// database. If logger is nil, a default logger will be used.
func NewSQLiteTaskStore(db *sql.DB, log *slog.Logger) *SQLiteTaskStore {
	if log == nil {
		log = slog.Default()
	}
	return &SQLiteTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// ReplaceAll implements store.TaskStore.
func (s *SQLiteTaskStore) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidateBatch(tasks); err != nil {
		log.WarnContext(ctx, "rejecting invalid task batch", slog.String("error", err.Error()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		// Dependencies go with their tasks through ON DELETE CASCADE.
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return store.NewStoreError("task", "replace", "failed to clear tasks", mapError(err))
		}
		return insertBatch(ctx, tx, tasks)
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "task batch replaced", slog.Int("count", len(tasks)))
	return nil
}

// List implements store.TaskStore.
func (s *SQLiteTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := queryBatch(ctx, s.db)
	if err != nil {
		log.ErrorContext(ctx, "failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}

	log.DebugContext(ctx, "listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

func insertBatch(ctx context.Context, q store.DBTX, tasks []domain.Task) error {
	for pos, t := range tasks {
		_, err := q.ExecContext(ctx, insertTaskQuery,
			pos, t.ID, t.Title, domain.FormatDate(t.DueDate), t.EstimatedHours, t.Importance)
		if err != nil {
			return store.NewStoreError("task", "replace",
				fmt.Sprintf("failed to insert task %d", t.ID), mapError(err))
		}
	}

	for _, e := range store.BatchEdges(tasks) {
		if _, err := q.ExecContext(ctx, insertDependencyQuery, e.Task, e.DependsOn, e.Ordinal); err != nil {
			return store.NewStoreError("dependency", "replace",
				fmt.Sprintf("failed to insert dependency %d -> %d", tasks[e.Task].ID, e.DependsOn), mapError(err))
		}
	}
	return nil
}

func queryBatch(ctx context.Context, q store.DBTX) ([]domain.Task, error) {
	rows, err := q.QueryContext(ctx, selectTasksQuery)
	if err != nil {
		return nil, store.NewStoreError("task", "list", "failed to query tasks", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]domain.Task, 0)
	index := make(map[int]int)
	for rows.Next() {
		var (
			t   domain.Task
			pos int
			due string
		)
		if err := rows.Scan(&pos, &t.ID, &t.Title, &due, &t.EstimatedHours, &t.Importance); err != nil {
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		if t.DueDate, err = domain.ParseDate(due); err != nil {
			return nil, store.NewStoreError("task", "list",
				fmt.Sprintf("task %d has a corrupt due date", t.ID), err)
		}
		t.Dependencies = []int64{}
		index[pos] = len(tasks)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "failed to iterate tasks", err)
	}
	// The single connection must be free before the next query.
	_ = rows.Close()

	depRows, err := q.QueryContext(ctx, selectDependenciesQuery)
	if err != nil {
		return nil, store.NewStoreError("dependency", "list", "failed to query dependencies", err)
	}
	defer func() { _ = depRows.Close() }()

	for depRows.Next() {
		var (
			pos       int
			dependsOn int64
		)
		if err := depRows.Scan(&pos, &dependsOn); err != nil {
			return nil, store.NewStoreError("dependency", "list", "failed to scan dependency", err)
		}
		if i, ok := index[pos]; ok {
			tasks[i].Dependencies = append(tasks[i].Dependencies, dependsOn)
		}
	}
	if err := depRows.Err(); err != nil {
		return nil, store.NewStoreError("dependency", "list", "failed to iterate dependencies", err)
	}
	return tasks, nil
}

// mapError translates SQLite constraint failures into store errors. The
// driver reports them only through its message text.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "PRIMARY KEY constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	return err
}
