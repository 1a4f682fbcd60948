package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/stepmap/stepmap/internal/server/cache"
	"github.com/stepmap/stepmap/internal/server/metrics"
	"github.com/stepmap/stepmap/internal/server/response"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// planResult is the wire representation of a consolidated upgrade plan.
type planResult struct {
	Steps   []upgrade.Step `json:"steps"`
	HasPath bool           `json:"hasPath"`
	Warning string         `json:"warning,omitempty"`
}

// HandleSteps handles GET /api/v1/frameworks/{id}/steps.
// @Summary Upgrade steps
// @Description Consolidated upgrade steps for a framework and version window
// @Tags frameworks
// @Accept json
// @Produce json
// @Param id path string true "Framework ID (nextjs, angular)"
// @Param from query number true "Current version"
// @Param to query number true "Target version"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/frameworks/{id}/steps [get].
func (h *Handlers) HandleSteps(w http.ResponseWriter, r *http.Request, frameworkID string) {
	from, err := parseVersionParam(r, "from")
	if err != nil {
		response.BadRequest(w, "Invalid 'from' parameter", err.Error())
		return
	}
	to, err := parseVersionParam(r, "to")
	if err != nil {
		response.BadRequest(w, "Invalid 'to' parameter", err.Error())
		return
	}

	// Unsupported frameworks fall through: an empty catalog yields the
	// no-path advisory below rather than a 404.
	framework, _ := upgrade.ParseFramework(frameworkID)

	cacheKey := cache.PlanKey(string(framework), from, to)
	if cached, found := h.cache.Get(cacheKey); found {
		metrics.CacheHit()
		response.OK(w, cached)
		return
	}
	metrics.CacheMiss()

	steps := h.client.Steps(framework, from, to)
	if steps == nil {
		steps = []upgrade.Step{}
	}
	result := planResult{
		Steps:   steps,
		HasPath: len(steps) > 0,
	}
	// No applicable steps is an advisory, not an error. This covers both
	// an empty window and an unrecognized framework.
	if !result.HasPath {
		result.Warning = fmt.Sprintf(
			"No upgrade path found for %s from version %s to %s",
			framework.Name(), formatVersion(from), formatVersion(to),
		)
	}

	metrics.ObservePlan(len(steps))
	h.cache.Set(cacheKey, result)

	response.OK(w, result)
}

// parseVersionParam parses a required numeric query parameter.
func parseVersionParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("query parameter %q is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be numeric: got %q", name, raw)
	}
	return v, nil
}

// formatVersion renders versions the way they appear in instructions
// (13 rather than 13.0, 13.4 kept as-is).
func formatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
