// Package catalog provides shared decoding for the step catalog backends.
// The on-disk schema is a flat JSON or YAML sequence of step records per
// framework; unknown fields are ignored and malformed records are skipped
// with a logged warning rather than failing the load.
package catalog

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/stepmap/stepmap/pkg/errors"
	"github.com/stepmap/stepmap/pkg/logging"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// DecodeJSON decodes a framework's step list from JSON data.
func DecodeJSON(name string, data []byte) ([]upgrade.Step, error) {
	var steps []upgrade.Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, errors.WrapParse("json", name, err)
	}
	return sanitize(name, steps), nil
}

// DecodeYAML decodes a framework's step list from YAML data.
func DecodeYAML(name string, data []byte) ([]upgrade.Step, error) {
	var steps []upgrade.Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, errors.WrapParse("yaml", name, err)
	}
	return sanitize(name, steps), nil
}

// sanitize drops records missing their required instruction text. The
// catalogs are curated, so a malformed record is a data bug worth surfacing
// in logs, but it must not take the rest of the framework's steps with it.
func sanitize(name string, steps []upgrade.Step) []upgrade.Step {
	kept := make([]upgrade.Step, 0, len(steps))
	for i, step := range steps {
		if step.Instruction == "" {
			logging.Warn().
				Str("file", name).
				Int("index", i).
				Msg("Skipping step record with empty instruction")
			continue
		}
		kept = append(kept, step)
	}
	return kept
}
