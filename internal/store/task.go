package store

import (
	"context"
	"fmt"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// The store holds exactly one batch: the most recently analyzed one. Rows
// are keyed by their position in the batch, not by task id, so a batch that
// repeats an id is stored as submitted.
type TaskStore interface {
	// ReplaceAll atomically discards the stored batch and saves tasks in its
	// place. Dependency edges pointing outside the batch are not stored.
	// Returns ErrInvalidEntity if a task fails validation.
	ReplaceAll(ctx context.Context, tasks []domain.Task) error

	// List returns the stored batch in submission order. Every task carries
	// its stored dependencies; the slice is empty when nothing has been saved yet.
	List(ctx context.Context) ([]domain.Task, error)
}

// Edge is a stored dependency: the task at batch position Task depends on
// the task id DependsOn. Ordinal keeps the order of the task's dependency list.
type Edge struct {
	Task      int
	DependsOn int64
	Ordinal   int
}

// ValidateBatch checks every task the way all TaskStore implementations do
// before touching the database.
func ValidateBatch(tasks []domain.Task) error {
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return NewStoreError("task", "replace", "validation failed", fmt.Errorf("%w: %w", ErrInvalidEntity, err))
		}
	}
	return nil
}

// BatchEdges returns the dependency edges whose target id is also in the
// batch, in task order.
func BatchEdges(tasks []domain.Task) []Edge {
	inBatch := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		inBatch[t.ID] = struct{}{}
	}

	var edges []Edge
	for pos, t := range tasks {
		ordinal := 0
		for _, dep := range t.Dependencies {
			if _, ok := inBatch[dep]; ok {
				edges = append(edges, Edge{Task: pos, DependsOn: dep, Ordinal: ordinal})
				ordinal++
			}
		}
	}
	return edges
}
