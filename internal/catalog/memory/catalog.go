// Package memory provides an in-memory step catalog, used by tests and by
// library callers supplying their own step data.
package memory

import (
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// Catalog is an in-memory step catalog.
type Catalog struct {
	steps map[upgrade.Framework][]upgrade.Step
	order []upgrade.Framework
}

// NewCatalog creates an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{steps: make(map[upgrade.Framework][]upgrade.Step)}
}

// SetSteps replaces the step list for a framework. The slice is copied, so
// later changes by the caller do not leak into the catalog.
func (c *Catalog) SetSteps(framework upgrade.Framework, steps []upgrade.Step) {
	if _, seen := c.steps[framework]; !seen {
		c.order = append(c.order, framework)
	}
	copied := make([]upgrade.Step, len(steps))
	copy(copied, steps)
	c.steps[framework] = copied
}

// Steps returns the framework's step list, or an empty slice for frameworks
// the catalog does not carry.
func (c *Catalog) Steps(framework upgrade.Framework) []upgrade.Step {
	steps, ok := c.steps[framework]
	if !ok {
		return nil
	}
	out := make([]upgrade.Step, len(steps))
	copy(out, steps)
	return out
}

// Frameworks returns the frameworks in insertion order.
func (c *Catalog) Frameworks() []upgrade.Framework {
	out := make([]upgrade.Framework, len(c.order))
	copy(out, c.order)
	return out
}
