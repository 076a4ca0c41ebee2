package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"gopkg.in/yaml.v3"
)

// taskRecord is one task of a task file.
type taskRecord struct {
	ID             *int64   `json:"id"              yaml:"id"`
	Title          string   `json:"title"           yaml:"title"`
	DueDate        string   `json:"due_date"        yaml:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours" yaml:"estimated_hours"`
	Importance     *int     `json:"importance"      yaml:"importance"`
	Dependencies   []int64  `json:"dependencies"    yaml:"dependencies"`
}

// readTasks loads and validates the task file at path. YAML is chosen by the
// .yaml or .yml extension, JSON otherwise; "-" reads JSON from stdin.
func readTasks(path string, stdin io.Reader) ([]domain.Task, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var records []taskRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing task file %s: %w", path, err)
	}

	inputs := make([]domain.TaskInput, 0, len(records))
	for i, r := range records {
		due, err := domain.ParseDate(strings.TrimSpace(r.DueDate))
		if err != nil {
			return nil, fmt.Errorf("task %d (%q): %w", i, r.Title, err)
		}
		inputs = append(inputs, domain.TaskInput{
			ID:             r.ID,
			Title:          r.Title,
			DueDate:        due,
			EstimatedHours: r.EstimatedHours,
			Importance:     r.Importance,
			Dependencies:   r.Dependencies,
		})
	}

	tasks := domain.BuildTasks(inputs)
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}
