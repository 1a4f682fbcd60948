// Package server provides the HTTP server implementation for the stepmap API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/stepmap/stepmap"
	"github.com/stepmap/stepmap/internal/server/cache"
	"github.com/stepmap/stepmap/pkg/constants"
	"github.com/stepmap/stepmap/pkg/logging"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	client    stepmap.Stepmap
	cache     *cache.Cache
	logger    *zerolog.Logger
	config    Config
	httpSrv   *http.Server
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(client stepmap.Stepmap, cfg Config, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.DefaultCacheTTL
	}

	return &Server{
		client:    client,
		cache:     cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// ListenAndServe starts the HTTP server and blocks until the context is
// canceled or the listener fails. Shutdown is graceful with a bounded wait.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Str("prefix", s.config.PathPrefix).Msg("HTTP server listening")
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Uptime returns how long the server has been running.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}
