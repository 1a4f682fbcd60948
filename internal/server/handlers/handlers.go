// Package handlers provides HTTP request handlers for the stepmap API.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/stepmap/stepmap"
	"github.com/stepmap/stepmap/internal/server/cache"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	client stepmap.Stepmap
	cache  *cache.Cache
	logger *zerolog.Logger
}

// New creates a new Handlers instance.
func New(client stepmap.Stepmap, cache *cache.Cache, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		client: client,
		cache:  cache,
		logger: logger,
	}
}
