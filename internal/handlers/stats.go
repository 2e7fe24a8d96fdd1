package handlers

import (
	"net/http"

	"biopubs-ai/internal/service"
)

// StatsHandler handles HTTP requests for corpus statistics.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// ServeHTTP handles GET /api/stats.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.stats.GetStats(ctx)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to compute corpus stats")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
