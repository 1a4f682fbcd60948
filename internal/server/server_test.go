package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepmap/stepmap"
	"github.com/stepmap/stepmap/internal/catalog/memory"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

func testServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	cat := memory.NewCatalog()
	cat.SetSteps(upgrade.FrameworkAngular, []upgrade.Step{
		{
			Instruction: "Update Angular to 15",
			From:        14,
			To:          15,
			Type:        upgrade.StepTypePackageUpdate,
		},
	})

	client, err := stepmap.New(stepmap.WithCatalog(cat))
	require.NoError(t, err)

	logger := zerolog.Nop()
	return New(client, cfg, &logger)
}

func TestServerRoutes(t *testing.T) {
	srv := testServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"prefixed health", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"ready", http.MethodGet, "/api/v1/ready", http.StatusOK},
		{"frameworks", http.MethodGet, "/api/v1/frameworks", http.StatusOK},
		{"frameworks wrong method", http.MethodPost, "/api/v1/frameworks", http.StatusMethodNotAllowed},
		{"steps", http.MethodGet, "/api/v1/frameworks/angular/steps?from=14&to=15", http.StatusOK},
		{"steps missing params", http.MethodGet, "/api/v1/frameworks/angular/steps", http.StatusBadRequest},
		{"steps wrong method", http.MethodPost, "/api/v1/frameworks/angular/steps?from=14&to=15", http.StatusMethodNotAllowed},
		{"unknown subresource", http.MethodGet, "/api/v1/frameworks/angular/nope", http.StatusNotFound},
		{"favicon", http.MethodGet, "/favicon.ico", http.StatusNoContent},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestServerStepsEnvelope(t *testing.T) {
	srv := testServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/api/v1/frameworks/angular/steps?from=14&to=15")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var envelope struct {
		Data struct {
			Steps   []upgrade.Step `json:"steps"`
			HasPath bool           `json:"hasPath"`
			Warning string         `json:"warning"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.True(t, envelope.Data.HasPath)
	assert.Empty(t, envelope.Data.Warning)
	require.Len(t, envelope.Data.Steps, 1)
	assert.Equal(t, "Update Angular to 15", envelope.Data.Steps[0].Instruction)

	// Request ID header is set on every response
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServerCORS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CORSEnabled = true
	srv := testServer(t, cfg)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.PathPrefix)
	assert.True(t, cfg.MetricsEnabled)
	assert.NotZero(t, cfg.CacheTTL)
}
