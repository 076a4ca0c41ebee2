package api

import (
	"strconv"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// TaskRequest is one task of an analyze request body. Pointer fields are
// optional; absent values get the domain defaults.
type TaskRequest struct {
	ID             *int64   `json:"id"`
	Title          string   `json:"title"           validate:"required,max=200"`
	DueDate        string   `json:"due_date"        validate:"required"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
	Importance     *int     `json:"importance"      validate:"omitempty,min=1,max=10"`
	Dependencies   []int64  `json:"dependencies"`
}

// toInput converts a validated request into a domain.TaskInput.
func (r TaskRequest) toInput() (domain.TaskInput, error) {
	due, err := domain.ParseDate(r.DueDate)
	if err != nil {
		return domain.TaskInput{}, err
	}
	return domain.TaskInput{
		ID:             r.ID,
		Title:          r.Title,
		DueDate:        due,
		EstimatedHours: r.EstimatedHours,
		Importance:     r.Importance,
		Dependencies:   r.Dependencies,
	}, nil
}

// AnalyzeRequest is the body of POST /api/tasks/analyze.
type AnalyzeRequest []TaskRequest

// Score renders as a JSON number with exactly two decimals.
type Score float64

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(s), 'f', 2, 64)), nil
}

// TaskResponse is a scored task as returned by the analyze and suggest endpoints.
type TaskResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
	Importance     int     `json:"importance"`
	Dependencies   []int64 `json:"dependencies"`
	Score          Score   `json:"score"`
	Explanation    string  `json:"explanation"`
}

func toTaskResponses(results []domain.ScoreResult) []TaskResponse {
	out := make([]TaskResponse, 0, len(results))
	for _, r := range results {
		deps := r.Task.Dependencies
		if deps == nil {
			deps = []int64{}
		}
		out = append(out, TaskResponse{
			ID:             r.Task.ID,
			Title:          r.Task.Title,
			DueDate:        domain.FormatDate(r.Task.DueDate),
			EstimatedHours: r.Task.EstimatedHours,
			Importance:     r.Task.Importance,
			Dependencies:   deps,
			Score:          Score(r.Score),
			Explanation:    r.Explanation,
		})
	}
	return out
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
