// Package embedded provides the built-in step catalog compiled into the
// binary. It is the default data source: one JSON file per supported
// framework under data/.
package embedded

import (
	"embed"

	"github.com/stepmap/stepmap/internal/catalog"
	"github.com/stepmap/stepmap/pkg/errors"
	"github.com/stepmap/stepmap/pkg/logging"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

//go:embed data
var dataFS embed.FS

// Catalog is the embedded step catalog.
type Catalog struct {
	steps map[upgrade.Framework][]upgrade.Step
}

// NewCatalog creates an empty embedded catalog. Call Load before use.
func NewCatalog() *Catalog {
	return &Catalog{steps: make(map[upgrade.Framework][]upgrade.Step)}
}

// Load reads every supported framework's step file from the embedded data
// directory. A missing or malformed file degrades to an empty step list for
// that framework with a logged diagnostic; it never propagates as a hard
// failure to callers of the consolidation pipeline.
func (c *Catalog) Load() error {
	for _, framework := range upgrade.Frameworks() {
		path := "data/" + framework.String() + ".json"
		data, err := dataFS.ReadFile(path)
		if err != nil {
			logging.Warn().
				Err(errors.WrapLoad("embedded", path, err)).
				Str("framework", framework.String()).
				Msg("Framework catalog missing from embedded data")
			continue
		}
		steps, err := catalog.DecodeJSON(path, data)
		if err != nil {
			logging.Warn().
				Err(errors.WrapLoad("embedded", path, err)).
				Str("framework", framework.String()).
				Msg("Skipping malformed framework catalog")
			continue
		}
		c.steps[framework] = steps
	}
	return nil
}

// Steps returns the framework's full step list, or an empty slice for
// frameworks the catalog does not carry. The returned slice is a copy;
// catalog data is read-only.
func (c *Catalog) Steps(framework upgrade.Framework) []upgrade.Step {
	steps, ok := c.steps[framework]
	if !ok {
		return nil
	}
	out := make([]upgrade.Step, len(steps))
	copy(out, steps)
	return out
}

// Frameworks returns the frameworks present in the embedded data, in the
// supported set's display order.
func (c *Catalog) Frameworks() []upgrade.Framework {
	frameworks := make([]upgrade.Framework, 0, len(c.steps))
	for _, f := range upgrade.Frameworks() {
		if _, ok := c.steps[f]; ok {
			frameworks = append(frameworks, f)
		}
	}
	return frameworks
}
