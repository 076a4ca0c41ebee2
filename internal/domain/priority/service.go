// Package priority implements the task prioritization engine: the dependency
// cycle detector and the multi-factor scoring function it guards.
package priority

import (
	"sort"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// Service defines the interface for prioritization engine operations
type Service interface {
	// DetectCycles reports at most one dependency cycle in the batch
	DetectCycles(tasks []domain.Task) []string

	// Score computes the priority and explanation of one task within its batch.
	// The batch must have passed DetectCycles.
	Score(
		task domain.Task,
		batch []domain.Task,
		strategy domain.Strategy,
		now time.Time,
	) (float64, string)

	// Rank scores every task of an acyclic batch and orders the results by
	// score descending, keeping input order between equal scores.
	Rank(batch []domain.Task, strategy domain.Strategy, now time.Time) []domain.ScoreResult
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new prioritization service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new prioritization service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// DetectCycles implements the Service interface
func (s *defaultService) DetectCycles(tasks []domain.Task) []string {
	return DetectCycles(tasks)
}

// Score implements the Service interface
func (s *defaultService) Score(
	task domain.Task,
	batch []domain.Task,
	strategy domain.Strategy,
	now time.Time,
) (float64, string) {
	return calculateScore(task, countBlocking(task.ID, batch), strategy, now, s.params)
}

// Rank implements the Service interface
func (s *defaultService) Rank(
	batch []domain.Task,
	strategy domain.Strategy,
	now time.Time,
) []domain.ScoreResult {
	results := make([]domain.ScoreResult, 0, len(batch))
	for _, t := range batch {
		score, explanation := calculateScore(t, countBlocking(t.ID, batch), strategy, now, s.params)
		results = append(results, domain.ScoreResult{
			Task:        t,
			Score:       score,
			Explanation: explanation,
		})
	}

	SortResults(results)
	return results
}

// SortResults orders results by score descending. The sort is stable so
// equal scores keep their relative order.
func SortResults(results []domain.ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
