package priority

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// explanationSeparator joins the per-factor fragments of an explanation.
const explanationSeparator = "; "

// calculateScore computes the priority of a single task.
//
// The score is built from four factors, applied strictly in order:
//   - Urgency from the whole days between now and the due date
//   - An importance multiplier applied to the running score
//   - An additive effort adjustment (quick wins up, long tasks down)
//   - An additive bonus for every other batch task waiting on this one
//
// Parameters:
//   - task: The task being scored
//   - blocking: How many other tasks in the batch depend on task
//   - strategy: The weighting profile
//   - now: The evaluation instant; only its calendar date is used
//   - params: Configuration parameters for the engine
//
// Returns the score rounded to two decimals and the explanation, which lists
// only the factors that changed the score.
func calculateScore(
	task domain.Task,
	blocking int,
	strategy domain.Strategy,
	now time.Time,
	params *Params,
) (float64, string) {
	var fragments []string

	urgency, note := calculateUrgency(domain.DaysUntil(now, task.DueDate), params)
	if strategy == domain.StrategyDeadline {
		urgency *= params.DeadlineUrgency
	}
	if urgency != 0 {
		fragments = append(fragments, fmt.Sprintf("%s (+%s)", note, formatNumber(urgency)))
	}
	score := urgency

	multiplier := params.importanceMultiplier(strategy, task.Importance)
	score *= multiplier
	if multiplier != 1 && urgency != 0 {
		fragments = append(fragments, fmt.Sprintf("Importance %d (x%.1f)", task.Importance, multiplier))
	}

	switch hours := task.EstimatedHours; {
	case hours > 0 && hours <= params.QuickWinHours:
		bonus := params.quickWinBonus(strategy)
		score += bonus
		fragments = append(fragments, fmt.Sprintf("Quick win (< %sh) (+%s)",
			formatNumber(params.QuickWinHours), formatNumber(bonus)))
	case hours > params.HighEffortHours:
		score -= params.HighEffortPenalty
		fragments = append(fragments, fmt.Sprintf("High effort (> %sh) (-%s)",
			formatNumber(params.HighEffortHours), formatNumber(params.HighEffortPenalty)))
	}

	if blocking > 0 {
		bonus := float64(blocking) * params.BlockingBonusEach
		score += bonus
		fragments = append(fragments, fmt.Sprintf("Blocks %d other tasks (+%s)", blocking, formatNumber(bonus)))
	}

	return roundScore(score), strings.Join(fragments, explanationSeparator)
}

// calculateUrgency maps days until due onto the urgency bands and returns the
// base urgency with a short description of the band.
func calculateUrgency(days int, params *Params) (float64, string) {
	switch {
	case days < 0:
		overdue := -days
		return params.OverdueBase + params.OverduePerDay*float64(overdue),
			fmt.Sprintf("Overdue by %d days", overdue)
	case days == 0:
		return params.DueTodayScore, "Due today"
	case days <= params.DueSoonDays:
		return params.DueSoonBase - params.DueSoonPerDay*float64(days),
			fmt.Sprintf("Due soon (%d days)", days)
	case days <= params.DueThisWeekDays:
		return params.DueThisWeekScore, "Due this week"
	default:
		return math.Max(0, params.DistantBase-float64(floorDiv(days, 2))),
			fmt.Sprintf("Due in %d days", days)
	}
}

// countBlocking returns how many tasks other than id list id as a dependency.
func countBlocking(id int64, batch []domain.Task) int {
	count := 0
	for _, other := range batch {
		if other.ID != id && other.DependsOn(id) {
			count++
		}
	}
	return count
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
