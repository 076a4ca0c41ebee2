package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
)

const (
	deleteDependenciesQuery = `DELETE FROM task_dependencies`
	deleteTasksQuery        = `DELETE FROM tasks`

	insertTaskQuery = `
		INSERT INTO tasks (position, task_id, title, due_date, estimated_hours, importance)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertDependencyQuery = `
		INSERT INTO task_dependencies (task_position, depends_on_id, ordinal)
		VALUES ($1, $2, $3)`

	selectTasksQuery = `
		SELECT position, task_id, title, due_date, estimated_hours, importance
		FROM tasks
		ORDER BY position`

	selectDependenciesQuery = `
		SELECT task_position, depends_on_id
		FROM task_dependencies
		ORDER BY task_position, ordinal`
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db *sql.DB, log *slog.Logger) *PostgresTaskStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// ReplaceAll implements store.TaskStore.
func (s *PostgresTaskStore) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidateBatch(tasks); err != nil {
		log.WarnContext(ctx, "rejecting invalid task batch", slog.String("error", err.Error()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteDependenciesQuery); err != nil {
			return store.NewStoreError("task", "replace", "failed to clear dependencies", MapError(err))
		}
		if _, err := tx.ExecContext(ctx, deleteTasksQuery); err != nil {
			return store.NewStoreError("task", "replace", "failed to clear tasks", MapError(err))
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
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := queryBatch(ctx, s.db)
	if err != nil {
		log.ErrorContext(ctx, "failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}

	log.DebugContext(ctx, "listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// insertBatch writes tasks keyed by their batch position, then the in-batch
// dependency edges.
func insertBatch(ctx context.Context, q store.DBTX, tasks []domain.Task) error {
	for pos, t := range tasks {
		_, err := q.ExecContext(ctx, insertTaskQuery,
			pos, t.ID, t.Title, t.DueDate, t.EstimatedHours, t.Importance)
		if err != nil {
			return store.NewStoreError("task", "replace",
				fmt.Sprintf("failed to insert task %d", t.ID), MapError(err))
		}
	}

	for _, e := range store.BatchEdges(tasks) {
		if _, err := q.ExecContext(ctx, insertDependencyQuery, e.Task, e.DependsOn, e.Ordinal); err != nil {
			return store.NewStoreError("dependency", "replace",
				fmt.Sprintf("failed to insert dependency %d -> %d", tasks[e.Task].ID, e.DependsOn), MapError(err))
		}
	}
	return nil
}

// queryBatch loads the stored batch in submission order.
func queryBatch(ctx context.Context, q store.DBTX) ([]domain.Task, error) {
	rows, err := q.QueryContext(ctx, selectTasksQuery)
	if err != nil {
		return nil, store.NewStoreError("task", "list", "failed to query tasks", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]domain.Task, 0)
	index := make(map[int]int)
	for rows.Next() {
		var (
			t   domain.Task
			pos int
			due time.Time
		)
		if err := rows.Scan(&pos, &t.ID, &t.Title, &due, &t.EstimatedHours, &t.Importance); err != nil {
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		y, m, d := due.Date()
		t.DueDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		t.Dependencies = []int64{}
		index[pos] = len(tasks)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "failed to iterate tasks", MapError(err))
	}

	depRows, err := q.QueryContext(ctx, selectDependenciesQuery)
	if err != nil {
		return nil, store.NewStoreError("dependency", "list", "failed to query dependencies", MapError(err))
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
		return nil, store.NewStoreError("dependency", "list", "failed to iterate dependencies", MapError(err))
	}
	return tasks, nil
}
