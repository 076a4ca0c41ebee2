package advisor

import (
	"context"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// Advisor defines the interface for delegating task prioritization to an
// external language model. It serves as a boundary between the application
// core and external AI services.
//
// An Advisor never returns an error: every failure mode is reported as an
// Unavailable outcome, and the caller falls back to the built-in engine.
type Advisor interface {
	// Advise asks the external service to score the whole batch.
	Advise(ctx context.Context, tasks []domain.Task) Outcome
}

// Outcome is the result of an Advise call: either a full set of results or
// the reason none could be produced.
type Outcome struct {
	results []domain.ScoreResult
	reason  string
	ok      bool
}

// Success wraps the advisor's results.
func Success(results []domain.ScoreResult) Outcome {
	return Outcome{results: results, ok: true}
}

// Unavailable reports that the advisor could not produce results.
func Unavailable(reason string) Outcome {
	return Outcome{reason: reason}
}

// Results returns the advisor's results and true on success.
func (o Outcome) Results() ([]domain.ScoreResult, bool) {
	return o.results, o.ok
}

// Reason explains why the outcome is unavailable. It is empty on success.
func (o Outcome) Reason() string {
	return o.reason
}

// Disabled is an Advisor that is always unavailable. It stands in when no
// API key is configured.
type Disabled struct{}

// Advise implements Advisor.
func (Disabled) Advise(context.Context, []domain.Task) Outcome {
	return Unavailable(ReasonNotConfigured)
}
