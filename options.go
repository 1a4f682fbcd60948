package stepmap

import (
	"github.com/rs/zerolog"

	"github.com/stepmap/stepmap/pkg/errors"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// Option is a function that configures a Stepmap instance.
type Option func(*stepmap) error

// WithCatalog configures the step catalog to use instead of the embedded one.
func WithCatalog(catalog upgrade.Catalog) Option {
	return func(s *stepmap) error {
		if catalog == nil {
			return errors.NewValidationError("catalog", nil, "catalog must not be nil")
		}
		s.catalog = catalog
		return nil
	}
}

// WithLogger configures the logger used for load-boundary diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *stepmap) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger must not be nil")
		}
		s.logger = logger
		return nil
	}
}
