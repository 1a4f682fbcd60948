package handlers

import (
	"net/http"

	"github.com/stepmap/stepmap/internal/server/response"
)

// frameworkInfo is the wire representation of a supported framework.
type frameworkInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StepCount int    `json:"stepCount"`
}

// HandleListFrameworks handles GET /api/v1/frameworks.
// @Summary List frameworks
// @Description List supported frameworks with their catalog sizes
// @Tags frameworks
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/frameworks [get].
func (h *Handlers) HandleListFrameworks(w http.ResponseWriter, _ *http.Request) {
	cacheKey := "frameworks"
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	cat := h.client.Catalog()

	infos := make([]frameworkInfo, 0, len(cat.Frameworks()))
	for _, fw := range cat.Frameworks() {
		infos = append(infos, frameworkInfo{
			ID:        string(fw),
			Name:      fw.Name(),
			StepCount: len(cat.Steps(fw)),
		})
	}

	result := map[string]any{
		"frameworks": infos,
		"count":      len(infos),
	}

	h.cache.Set(cacheKey, result)

	response.OK(w, result)
}
