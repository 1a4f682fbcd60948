package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/stepmap/stepmap"
	"github.com/stepmap/stepmap/internal/catalog/files"
)

// newClient builds a stepmap client from the configured catalog source.
// With --catalog (or the catalog config key) set, steps are loaded from
// that directory; otherwise the embedded catalog is used.
func newClient() (stepmap.Stepmap, error) {
	dir := flagCatalog
	if dir == "" {
		dir = viper.GetString("catalog")
	}

	if dir == "" {
		return stepmap.New()
	}

	cat := files.NewCatalog(dir)
	if err := cat.Load(); err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", dir, err)
	}
	return stepmap.New(stepmap.WithCatalog(cat))
}
