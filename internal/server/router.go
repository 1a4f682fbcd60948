package server

import (
	"net/http"
	"strings"

	"github.com/stepmap/stepmap/internal/server/handlers"
	"github.com/stepmap/stepmap/internal/server/metrics"
	"github.com/stepmap/stepmap/internal/server/middleware"
	"github.com/stepmap/stepmap/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.client, s.cache, s.logger)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Frameworks endpoints
	mux.Handle(prefix+"/frameworks", metrics.Instrument("frameworks",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				response.MethodNotAllowed(w, r.Method)
				return
			}
			h.HandleListFrameworks(w, r)
		})))

	mux.Handle(prefix+"/frameworks/", metrics.Instrument("steps",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := splitPath(strings.TrimPrefix(r.URL.Path, prefix+"/frameworks/"))

			if len(parts) == 2 && parts[1] == "steps" {
				if r.Method != http.MethodGet {
					response.MethodNotAllowed(w, r.Method)
					return
				}
				h.HandleSteps(w, r, parts[0])
				return
			}

			response.NotFound(w, "Not found", "")
		})))

	// Metrics endpoint (optional)
	if s.config.MetricsEnabled {
		mux.Handle("/metrics", metrics.Handler())
	}
}

// applyMiddleware wraps the handler with the middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Request ID, logging, and recovery (always enabled)
	handler = middleware.RequestID(handler)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
