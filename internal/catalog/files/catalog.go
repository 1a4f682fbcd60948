// Package files loads a step catalog from a directory on disk, for users
// who maintain their own step data instead of the embedded catalog. Each
// framework is one file named after its identifier, in JSON or YAML.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/stepmap/stepmap/internal/catalog"
	"github.com/stepmap/stepmap/pkg/errors"
	"github.com/stepmap/stepmap/pkg/logging"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// Catalog is a step catalog backed by a directory of step files.
type Catalog struct {
	basePath string
	steps    map[upgrade.Framework][]upgrade.Step
	order    []upgrade.Framework
}

// NewCatalog creates an empty files catalog rooted at basePath.
// Call Load before use.
func NewCatalog(basePath string) *Catalog {
	return &Catalog{
		basePath: basePath,
		steps:    make(map[upgrade.Framework][]upgrade.Step),
	}
}

// Load walks the base directory and decodes every recognized step file.
// Files whose name does not resolve to a supported framework, and files
// that fail to parse, are skipped with a logged diagnostic. Load fails only
// when the directory itself cannot be read.
func (c *Catalog) Load() error {
	entries, err := os.ReadDir(c.basePath)
	if err != nil {
		return errors.WrapLoad("files", c.basePath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		framework, ok := upgrade.ParseFramework(strings.TrimSuffix(name, ext))
		if !ok {
			logging.Warn().
				Err(errors.NewUnsupportedFrameworkError(strings.TrimSuffix(name, ext))).
				Str("file", name).
				Msg("Skipping step file for unsupported framework")
			continue
		}

		path := filepath.Join(c.basePath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logging.Warn().
				Err(errors.WrapLoad("files", path, err)).
				Msg("Skipping unreadable step file")
			continue
		}

		var steps []upgrade.Step
		if ext == ".json" {
			steps, err = catalog.DecodeJSON(name, data)
		} else {
			steps, err = catalog.DecodeYAML(name, data)
		}
		if err != nil {
			logging.Warn().
				Err(errors.WrapLoad("files", path, err)).
				Msg("Skipping malformed step file")
			continue
		}

		if _, seen := c.steps[framework]; !seen {
			c.order = append(c.order, framework)
		}
		c.steps[framework] = steps
	}
	return nil
}

// Steps returns the framework's step list, or an empty slice when the
// directory has no file for it.
func (c *Catalog) Steps(framework upgrade.Framework) []upgrade.Step {
	steps, ok := c.steps[framework]
	if !ok {
		return nil
	}
	out := make([]upgrade.Step, len(steps))
	copy(out, steps)
	return out
}

// Frameworks returns the frameworks found in the directory, in file
// discovery order.
func (c *Catalog) Frameworks() []upgrade.Framework {
	out := make([]upgrade.Framework, len(c.order))
	copy(out, c.order)
	return out
}
