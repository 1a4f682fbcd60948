package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

func TestFilterRange(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "inside", From: 12, To: 12.1},
		{Instruction: "starts early", From: 11.1, To: 12.1},
		{Instruction: "ends late", From: 12, To: 13.1},
		{Instruction: "exact window", From: 12, To: 13},
		{Instruction: "outside", From: 14, To: 15},
	}

	filtered := filterRange(steps, 12, 13)

	assert.Len(t, filtered, 2)
	for _, step := range filtered {
		assert.GreaterOrEqual(t, step.From, 12.0)
		assert.LessOrEqual(t, step.To, 13.0)
	}
}

func TestFilterRangeEmptyResult(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "later", From: 14, To: 15},
	}

	assert.Empty(t, filterRange(steps, 12, 13))
}

func TestFilterRangeInvertedWindow(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "any", From: 12, To: 13},
	}

	// An inverted window is not rejected; it simply matches nothing.
	assert.Empty(t, filterRange(steps, 13, 12))
}

func TestFilterRangeDoesNotMutateInput(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "a", From: 12, To: 12.5},
		{Instruction: "b", From: 13, To: 14},
	}

	filterRange(steps, 12, 13)

	assert.Equal(t, "a", steps[0].Instruction)
	assert.Equal(t, "b", steps[1].Instruction)
}
