package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepmap/stepmap"
	"github.com/stepmap/stepmap/internal/catalog/memory"
	"github.com/stepmap/stepmap/internal/server/cache"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

func testHandlers(t *testing.T) *Handlers {
	t.Helper()

	cat := memory.NewCatalog()
	cat.SetSteps(upgrade.FrameworkNextJS, []upgrade.Step{
		{
			Instruction: "Update Next.js to 13",
			From:        12,
			To:          13,
			Type:        upgrade.StepTypePackageUpdate,
		},
		{
			Instruction: "Update Next.js to 14",
			From:        13,
			To:          14,
			Type:        upgrade.StepTypePackageUpdate,
		},
		{
			Instruction:  "Enable the app router",
			From:         13,
			To:           13.4,
			Type:         upgrade.StepTypeConfiguration,
			AffectedFile: "next.config.js",
		},
	})

	client, err := stepmap.New(stepmap.WithCatalog(cat))
	require.NoError(t, err)

	logger := zerolog.Nop()
	return New(client, cache.New(time.Minute, time.Minute), &logger)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestHandleHealth(t *testing.T) {
	h := testHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "healthy", data["status"])
}

func TestHandleReady(t *testing.T) {
	h := testHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "ready", data["status"])
}

func TestHandleListFrameworks(t *testing.T) {
	h := testHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleListFrameworks(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frameworks", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)

	frameworks, ok := data["frameworks"].([]any)
	require.True(t, ok)
	require.Len(t, frameworks, 1)

	first := frameworks[0].(map[string]any)
	assert.Equal(t, "nextjs", first["id"])
	assert.Equal(t, "Next.js", first["name"])
	assert.Equal(t, float64(3), first["stepCount"])
}

func TestHandleSteps(t *testing.T) {
	t.Run("consolidated plan", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/nextjs/steps?from=12&to=14", nil)
		rec := httptest.NewRecorder()
		h.HandleSteps(rec, req, "nextjs")

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)

		assert.Equal(t, true, data["hasPath"])
		assert.NotContains(t, data, "warning")

		steps, ok := data["steps"].([]any)
		require.True(t, ok)
		// Both package updates merge into one; the configuration step survives.
		require.Len(t, steps, 2)
		merged := steps[0].(map[string]any)
		assert.Equal(t, "Update Next.js to 14", merged["instruction"])
	})

	t.Run("no path yields warning", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/nextjs/steps?from=20&to=21", nil)
		rec := httptest.NewRecorder()
		h.HandleSteps(rec, req, "nextjs")

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)

		assert.Equal(t, false, data["hasPath"])
		assert.Contains(t, data["warning"], "No upgrade path found")
		steps, ok := data["steps"].([]any)
		require.True(t, ok)
		assert.Empty(t, steps)
	})

	t.Run("unknown framework is advisory", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/vue/steps?from=2&to=3", nil)
		rec := httptest.NewRecorder()
		h.HandleSteps(rec, req, "vue")

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, false, data["hasPath"])
		assert.Contains(t, data["warning"], "No upgrade path found")
	})

	t.Run("missing from", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/nextjs/steps?to=14", nil)
		rec := httptest.NewRecorder()
		h.HandleSteps(rec, req, "nextjs")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric to", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/nextjs/steps?from=12&to=latest", nil)
		rec := httptest.NewRecorder()
		h.HandleSteps(rec, req, "nextjs")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cached response", func(t *testing.T) {
		h := testHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/frameworks/nextjs/steps?from=12&to=14", nil)

		first := httptest.NewRecorder()
		h.HandleSteps(first, req, "nextjs")
		second := httptest.NewRecorder()
		h.HandleSteps(second, req, "nextjs")

		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, 1, h.cache.ItemCount())
	})
}
