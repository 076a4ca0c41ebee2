package domain

import (
	"fmt"
	"time"
)

// Defaults applied to optional task fields when a batch is built.
const (
	DefaultImportance     = 1
	DefaultEstimatedHours = 0.0

	// MinImportance and MaxImportance bound the importance scale.
	MinImportance = 1
	MaxImportance = 10

	// firstGeneratedID is the lowest id handed to tasks submitted without one.
	firstGeneratedID int64 = 1000
)

// Task is a single unit of work as seen by the prioritization engine.
// Tasks are only ever built through BuildTasks, so every field is populated.
type Task struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	DueDate        time.Time `json:"due_date"`
	EstimatedHours float64   `json:"estimated_hours"`
	Importance     int       `json:"importance"`
	Dependencies   []int64   `json:"dependencies"`
}

// TaskInput is a task record as submitted by a client, before ids are
// assigned and defaults applied. Nil pointers mean "absent".
type TaskInput struct {
	ID             *int64
	Title          string
	DueDate        time.Time
	EstimatedHours *float64
	Importance     *int
	Dependencies   []int64
}

// ScoreResult is a task together with its computed priority.
type ScoreResult struct {
	Task        Task
	Score       float64
	Explanation string
}

// BuildTasks turns client records into engine-ready tasks.
//
// Records without an id receive sequential ids that cannot collide with any
// id present in the batch: numbering starts above both 999 and the largest
// supplied id. Optional fields get their documented defaults and duplicate
// dependency ids are dropped while keeping the first occurrence order.
func BuildTasks(inputs []TaskInput) []Task {
	next := firstGeneratedID
	for _, in := range inputs {
		if in.ID != nil && *in.ID >= next {
			next = *in.ID + 1
		}
	}

	tasks := make([]Task, 0, len(inputs))
	for _, in := range inputs {
		t := Task{
			Title:          in.Title,
			DueDate:        in.DueDate,
			Importance:     DefaultImportance,
			EstimatedHours: DefaultEstimatedHours,
			Dependencies:   dedupeIDs(in.Dependencies),
		}
		if in.ID != nil {
			t.ID = *in.ID
		} else {
			t.ID = next
			next++
		}
		if in.Importance != nil {
			t.Importance = *in.Importance
		}
		if in.EstimatedHours != nil {
			t.EstimatedHours = *in.EstimatedHours
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// Validate checks the invariants the engine relies on. Transport layers are
// expected to reject bad records first; this guards the other entry points
// such as the CLI and the stores.
func (t Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: task %d has an empty title", ErrValidation, t.ID)
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: task %d has no due date", ErrValidation, t.ID)
	}
	if t.EstimatedHours < 0 {
		return fmt.Errorf("%w: task %d has negative estimated hours", ErrValidation, t.ID)
	}
	if t.Importance < MinImportance || t.Importance > MaxImportance {
		return fmt.Errorf("%w: task %d importance %d outside %d-%d",
			ErrValidation, t.ID, t.Importance, MinImportance, MaxImportance)
	}
	return nil
}

// DependsOn reports whether t lists id among its dependencies.
func (t Task) DependsOn(id int64) bool {
	for _, dep := range t.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}

func dedupeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
