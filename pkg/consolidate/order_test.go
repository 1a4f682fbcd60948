package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

func TestOrderByTypePriority(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "deploy", Type: upgrade.StepTypeDeployment},
		{Instruction: "mystery", Type: upgrade.StepType("mystery")},
		{Instruction: "untyped"},
		{Instruction: "test", Type: upgrade.StepTypeTesting},
		{Instruction: "code", Type: upgrade.StepTypeCodeUpdate},
		{Instruction: "config", Type: upgrade.StepTypeConfiguration},
		{Instruction: "deps", Type: upgrade.StepTypeDependencies},
		{Instruction: "package", Type: upgrade.StepTypePackageUpdate},
	}

	ordered := order(steps)

	got := make([]string, 0, len(ordered))
	for _, step := range ordered {
		got = append(got, step.Instruction)
	}
	assert.Equal(t, []string{"package", "deps", "config", "code", "test", "deploy", "mystery", "untyped"}, got)
}

func TestOrderByVersionWithinType(t *testing.T) {
	steps := []upgrade.Step{
		{Instruction: "c", Type: upgrade.StepTypeConfiguration, From: 12.2, To: 13},
		{Instruction: "a", Type: upgrade.StepTypeConfiguration, From: 12, To: 12.1},
		{Instruction: "b", Type: upgrade.StepTypeConfiguration, From: 12, To: 12.2},
	}

	ordered := order(steps)

	assert.Equal(t, "a", ordered[0].Instruction)
	assert.Equal(t, "b", ordered[1].Instruction)
	assert.Equal(t, "c", ordered[2].Instruction)
}

func TestOrderIsStable(t *testing.T) {
	// Equal-key steps keep their relative input order.
	steps := []upgrade.Step{
		{Instruction: "first", Type: upgrade.StepTypeTesting, From: 12, To: 13},
		{Instruction: "second", Type: upgrade.StepTypeTesting, From: 12, To: 13},
		{Instruction: "third", Type: upgrade.StepTypeTesting, From: 12, To: 13},
	}

	ordered := order(steps)

	assert.Equal(t, "first", ordered[0].Instruction)
	assert.Equal(t, "second", ordered[1].Instruction)
	assert.Equal(t, "third", ordered[2].Instruction)
}
