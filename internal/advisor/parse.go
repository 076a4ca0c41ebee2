package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// Text used when merging opinions into results.
const (
	InsightPrefix = "✨ AI Insight: "
	NoOpinionText = "AI could not analyze this task."
	fenceMarker   = "```"
)

// Opinion is the model's verdict on a single task.
type Opinion struct {
	ID          int64   `json:"id"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// StripCodeFence removes a Markdown code fence wrapped around text, along
// with whatever language tag follows the opening fence. Text without a fence
// is returned trimmed.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, fenceMarker) {
		return s
	}

	s = strings.TrimPrefix(s, fenceMarker)
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "[{") {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), fenceMarker)
	return strings.TrimSpace(s)
}

// ParseOpinions decodes a model response into opinions. The response must be
// a JSON array of {id, score, explanation} objects, optionally wrapped in a
// code fence.
func ParseOpinions(text string) ([]Opinion, error) {
	body := StripCodeFence(text)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	var opinions []Opinion
	if err := json.Unmarshal([]byte(body), &opinions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return opinions, nil
}

// Merge pairs every task with the model's opinion of it, in task order.
// Tasks the model said nothing about get a zero score and NoOpinionText.
// Opinions about ids outside the batch are ignored; when the model repeats an
// id the last opinion wins.
func Merge(tasks []domain.Task, opinions []Opinion) []domain.ScoreResult {
	byID := make(map[int64]Opinion, len(opinions))
	for _, op := range opinions {
		byID[op.ID] = op
	}

	results := make([]domain.ScoreResult, 0, len(tasks))
	for _, t := range tasks {
		result := domain.ScoreResult{Task: t, Explanation: NoOpinionText}
		if op, ok := byID[t.ID]; ok {
			result.Score = op.Score
			result.Explanation = InsightPrefix + op.Explanation
		}
		results = append(results, result)
	}
	return results
}
