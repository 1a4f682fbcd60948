package upgrade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTypePriority(t *testing.T) {
	assert.Equal(t, 1, StepTypePackageUpdate.Priority())
	assert.Equal(t, 2, StepTypeDependencies.Priority())
	assert.Equal(t, 3, StepTypeConfiguration.Priority())
	assert.Equal(t, 4, StepTypeCodeUpdate.Priority())
	assert.Equal(t, 5, StepTypeTesting.Priority())
	assert.Equal(t, 6, StepTypeDeployment.Priority())

	// Unknown and absent types sort after every known type.
	assert.Equal(t, UnknownTypePriority, StepType("mystery").Priority())
	assert.Equal(t, UnknownTypePriority, StepType("").Priority())
}

func TestStepTypeKnown(t *testing.T) {
	assert.True(t, StepTypeConfiguration.Known())
	assert.False(t, StepType("mystery").Known())
	assert.False(t, StepType("").Known())
}

func TestStepJSONSchema(t *testing.T) {
	raw := `{
		"instruction": "Update next.config.js",
		"detailedDescription": "Add the redirects block.",
		"from": 12,
		"to": 12.1,
		"stepType": "configuration",
		"affectedFile": "next.config.js",
		"unknownField": true
	}`

	var step Step
	require.NoError(t, json.Unmarshal([]byte(raw), &step))

	assert.Equal(t, "Update next.config.js", step.Instruction)
	assert.Equal(t, 12.0, step.From)
	assert.Equal(t, 12.1, step.To)
	assert.Equal(t, StepTypeConfiguration, step.Type)
	assert.Equal(t, "next.config.js", step.AffectedFile)
}

func TestStepJSONOptionalFields(t *testing.T) {
	var step Step
	require.NoError(t, json.Unmarshal([]byte(`{"instruction":"Do it","from":1,"to":2}`), &step))

	assert.Empty(t, step.Type)
	assert.Empty(t, step.AffectedFile)

	data, err := json.Marshal(step)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stepType")
	assert.NotContains(t, string(data), "affectedFile")
}
