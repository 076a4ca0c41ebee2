package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func intPtr(v int) *int             { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildTasks(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		tasks := BuildTasks([]TaskInput{{ID: int64Ptr(1), Title: "Write report", DueDate: due}})

		require.Len(t, tasks, 1)
		assert.Equal(t, int64(1), tasks[0].ID)
		assert.Equal(t, DefaultImportance, tasks[0].Importance)
		assert.Equal(t, DefaultEstimatedHours, tasks[0].EstimatedHours)
		assert.NotNil(t, tasks[0].Dependencies)
		assert.Empty(t, tasks[0].Dependencies)
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		t.Parallel()
		tasks := BuildTasks([]TaskInput{{
			ID:             int64Ptr(7),
			Title:          "Deploy",
			DueDate:        due,
			Importance:     intPtr(9),
			EstimatedHours: float64Ptr(3.5),
			Dependencies:   []int64{1, 2},
		}})

		require.Len(t, tasks, 1)
		assert.Equal(t, 9, tasks[0].Importance)
		assert.Equal(t, 3.5, tasks[0].EstimatedHours)
		assert.Equal(t, []int64{1, 2}, tasks[0].Dependencies)
	})

	t.Run("backfills ids from 1000", func(t *testing.T) {
		t.Parallel()
		tasks := BuildTasks([]TaskInput{
			{Title: "a", DueDate: due},
			{ID: int64Ptr(3), Title: "b", DueDate: due},
			{Title: "c", DueDate: due},
		})

		require.Len(t, tasks, 3)
		assert.Equal(t, int64(1000), tasks[0].ID)
		assert.Equal(t, int64(3), tasks[1].ID)
		assert.Equal(t, int64(1001), tasks[2].ID)
	})

	t.Run("backfilled ids never collide with supplied ids", func(t *testing.T) {
		t.Parallel()
		tasks := BuildTasks([]TaskInput{
			{Title: "a", DueDate: due},
			{ID: int64Ptr(1000), Title: "b", DueDate: due},
			{ID: int64Ptr(1500), Title: "c", DueDate: due},
		})

		require.Len(t, tasks, 3)
		assert.Equal(t, int64(1501), tasks[0].ID)
		assert.Equal(t, int64(1000), tasks[1].ID)
	})

	t.Run("drops duplicate dependencies", func(t *testing.T) {
		t.Parallel()
		tasks := BuildTasks([]TaskInput{{
			ID:           int64Ptr(1),
			Title:        "a",
			DueDate:      due,
			Dependencies: []int64{4, 2, 4, 2, 9},
		}})

		assert.Equal(t, []int64{4, 2, 9}, tasks[0].Dependencies)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, BuildTasks(nil))
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{
		ID:             1,
		Title:          "Ship it",
		DueDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHours: 2,
		Importance:     5,
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "empty title", mutate: func(t *Task) { t.Title = "" }, wantErr: true},
		{name: "zero due date", mutate: func(t *Task) { t.DueDate = time.Time{} }, wantErr: true},
		{name: "negative hours", mutate: func(t *Task) { t.EstimatedHours = -1 }, wantErr: true},
		{name: "importance too low", mutate: func(t *Task) { t.Importance = 0 }, wantErr: true},
		{name: "importance too high", mutate: func(t *Task) { t.Importance = 11 }, wantErr: true},
		{name: "importance at upper bound", mutate: func(t *Task) { t.Importance = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			task := valid
			tc.mutate(&task)

			err := task.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskDependsOn(t *testing.T) {
	t.Parallel()

	task := Task{ID: 1, Dependencies: []int64{2, 3}}
	assert.True(t, task.DependsOn(2))
	assert.False(t, task.DependsOn(4))
}
