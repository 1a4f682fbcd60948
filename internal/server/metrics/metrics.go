// Package metrics exposes Prometheus instrumentation for the stepmap
// HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestsTotal counts HTTP requests by path and status class.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stepmap_http_requests_total",
		Help: "Total HTTP requests by path and status",
	}, []string{"path", "status"})

	// requestDuration tracks request latency by path.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stepmap_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~2s
	}, []string{"path"})

	// planCacheHits counts plan cache hits and misses.
	planCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stepmap_plan_cache_total",
		Help: "Plan cache lookups by result",
	}, []string{"result"})

	// planSteps tracks the number of steps returned per plan.
	planSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "stepmap_plan_steps",
		Help:    "Number of consolidated steps returned per plan",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePlan records the size of a consolidated plan response.
func ObservePlan(stepCount int) {
	planSteps.Observe(float64(stepCount))
}

// CacheHit records a plan cache hit.
func CacheHit() {
	planCacheHits.WithLabelValues("hit").Inc()
}

// CacheMiss records a plan cache miss.
func CacheMiss() {
	planCacheHits.WithLabelValues("miss").Inc()
}

// Instrument wraps a handler to record request counts and latency.
func Instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		requestsTotal.WithLabelValues(path, strconv.Itoa(wrapped.status)).Inc()
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
