package domain

import "strings"

// Strategy is a named weighting profile for the prioritization engine.
type Strategy string

// Supported strategies.
const (
	// StrategySmart balances urgency, importance, effort and dependencies.
	StrategySmart Strategy = "smart"

	// StrategyFastest favours quick wins and ignores importance.
	StrategyFastest Strategy = "fastest"

	// StrategyImpact weighs importance twice as heavily as smart.
	StrategyImpact Strategy = "impact"

	// StrategyDeadline amplifies urgency.
	StrategyDeadline Strategy = "deadline"
)

// Strategies lists every supported strategy in display order.
var Strategies = []Strategy{StrategySmart, StrategyFastest, StrategyImpact, StrategyDeadline}

// ParseStrategy maps a user supplied name to a Strategy. Names are matched
// case-insensitively; anything unrecognised, including the empty string,
// falls back to StrategySmart.
func ParseStrategy(name string) Strategy {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if s.IsKnown() {
		return s
	}
	return StrategySmart
}

// IsKnown reports whether s is one of the supported strategies.
func (s Strategy) IsKnown() bool {
	switch s {
	case StrategySmart, StrategyFastest, StrategyImpact, StrategyDeadline:
		return true
	default:
		return false
	}
}

func (s Strategy) String() string {
	return string(s)
}
