// Package stepmap computes consolidated framework upgrade instructions.
// Given a framework and a version window it filters the framework's step
// catalog to the window, merges redundant and overlapping steps, and returns
// a deterministically ordered list ready for display.
package stepmap

import (
	"github.com/rs/zerolog"

	"github.com/stepmap/stepmap/internal/catalog/embedded"
	"github.com/stepmap/stepmap/pkg/consolidate"
	"github.com/stepmap/stepmap/pkg/logging"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// Stepmap computes upgrade plans from a step catalog.
type Stepmap interface {
	// Catalog returns the loaded step catalog.
	Catalog() upgrade.Catalog

	// Steps returns the consolidated upgrade steps for moving a framework
	// from one version to another. An empty result means no upgrade path,
	// which callers surface as an advisory rather than an error.
	Steps(framework upgrade.Framework, from, to float64) []upgrade.Step

	// HasUpgradePath reports whether Steps would return a non-empty list
	// for the same arguments.
	HasUpgradePath(framework upgrade.Framework, from, to float64) bool
}

// stepmap is the internal implementation of the Stepmap interface.
type stepmap struct {
	catalog upgrade.Catalog
	logger  *zerolog.Logger
}

// New creates a new Stepmap instance with the given options. Without
// WithCatalog it loads the embedded catalog; a load failure there degrades
// to an empty catalog with a logged diagnostic instead of failing New.
func New(opts ...Option) (Stepmap, error) {
	sm := &stepmap{
		logger: logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}

	if sm.catalog == nil {
		cat := embedded.NewCatalog()
		if err := cat.Load(); err != nil {
			sm.logger.Warn().Err(err).Msg("Embedded catalog failed to load; continuing with empty catalog")
		}
		sm.catalog = cat
	}

	return sm, nil
}

// Catalog returns the loaded step catalog.
func (s *stepmap) Catalog() upgrade.Catalog {
	return s.catalog
}

// Steps runs the consolidation pipeline for the framework and window.
func (s *stepmap) Steps(framework upgrade.Framework, from, to float64) []upgrade.Step {
	return consolidate.Consolidate(s.catalog.Steps(framework), from, to)
}

// HasUpgradePath reports whether the window has any applicable steps.
func (s *stepmap) HasUpgradePath(framework upgrade.Framework, from, to float64) bool {
	return len(s.Steps(framework, from, to)) > 0
}
