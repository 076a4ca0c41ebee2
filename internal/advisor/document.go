package advisor

import (
	"encoding/json"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// taskDocument is the shape a task takes inside the prompt sent to a model.
type taskDocument struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
	Importance     int     `json:"importance"`
	Dependencies   []int64 `json:"dependencies"`
}

// BatchDocument renders the batch as the JSON document embedded in prompts.
func BatchDocument(tasks []domain.Task) (string, error) {
	docs := make([]taskDocument, 0, len(tasks))
	for _, t := range tasks {
		deps := t.Dependencies
		if deps == nil {
			deps = []int64{}
		}
		docs = append(docs, taskDocument{
			ID:             t.ID,
			Title:          t.Title,
			DueDate:        domain.FormatDate(t.DueDate),
			EstimatedHours: t.EstimatedHours,
			Importance:     t.Importance,
			Dependencies:   deps,
		})
	}

	b, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
