package priority

import (
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// Params defines all configurable parameters for the scoring engine
type Params struct {
	// Urgency bands
	OverdueBase      float64
	OverduePerDay    float64
	DueTodayScore    float64
	DueSoonDays      int
	DueSoonBase      float64
	DueSoonPerDay    float64
	DueThisWeekDays  int
	DueThisWeekScore float64
	DistantBase      float64
	DeadlineUrgency  float64

	// Importance multiplier is 1 + importance/divisor per strategy
	ImportanceDivisor map[domain.Strategy]float64

	// Effort adjustments
	QuickWinHours     float64
	QuickWinBonus     map[domain.Strategy]float64
	DefaultQuickWin   float64
	HighEffortHours   float64
	HighEffortPenalty float64

	// Dependency bonus per task unblocked
	BlockingBonusEach float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		OverdueBase:      100,
		OverduePerDay:    10,
		DueTodayScore:    100,
		DueSoonDays:      3,
		DueSoonBase:      80,
		DueSoonPerDay:    10,
		DueThisWeekDays:  7,
		DueThisWeekScore: 40,
		DistantBase:      20,
		DeadlineUrgency:  1.5,

		// A zero divisor disables the importance multiplier.
		ImportanceDivisor: map[domain.Strategy]float64{
			domain.StrategySmart:    10,
			domain.StrategyDeadline: 10,
			domain.StrategyImpact:   5,
			domain.StrategyFastest:  0,
		},

		QuickWinHours: 2,
		QuickWinBonus: map[domain.Strategy]float64{
			domain.StrategyFastest: 40,
		},
		DefaultQuickWin:   20,
		HighEffortHours:   10,
		HighEffortPenalty: 10,
		BlockingBonusEach: 15,
	}
}

// importanceMultiplier returns the factor applied to the running score for
// the given strategy. Strategies without an entry behave like smart.
func (p *Params) importanceMultiplier(strategy domain.Strategy, importance int) float64 {
	divisor, ok := p.ImportanceDivisor[strategy]
	if !ok {
		divisor = p.ImportanceDivisor[domain.StrategySmart]
	}
	if divisor == 0 {
		return 1
	}
	return 1 + float64(importance)/divisor
}

func (p *Params) quickWinBonus(strategy domain.Strategy) float64 {
	if bonus, ok := p.QuickWinBonus[strategy]; ok {
		return bonus
	}
	return p.DefaultQuickWin
}
