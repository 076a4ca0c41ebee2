package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := map[string]Strategy{
		"smart":    StrategySmart,
		"fastest":  StrategyFastest,
		"impact":   StrategyImpact,
		"deadline": StrategyDeadline,
		"FASTEST":  StrategyFastest,
		" impact ": StrategyImpact,
		"":         StrategySmart,
		"random":   StrategySmart,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseStrategy(in), "input %q", in)
	}
}

func TestStrategyIsKnown(t *testing.T) {
	t.Parallel()

	for _, s := range Strategies {
		assert.True(t, s.IsKnown(), s.String())
	}
	assert.False(t, Strategy("balanced").IsKnown())
}
