package handlers

import (
	"net/http"
	"strconv"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/retrieval"
)

// SearchHandler handles HTTP requests for semantic search.
type SearchHandler struct {
	searcher retrieval.Searcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searcher retrieval.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// ServeHTTP handles GET /api/search?q=…&limit=…&year=…&user=….
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	query := r.URL.Query()
	req := retrieval.SearchRequest{
		Query:  query.Get("q"),
		UserID: query.Get("user"),
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			logger.WarnContext(ctx, "invalid limit parameter", "limit", raw)
			writeError(ctx, w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		req.Limit = limit
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			logger.WarnContext(ctx, "invalid year parameter", "year", raw)
			writeError(ctx, w, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		req.Year = year
	}

	resp, err := h.searcher.Search(ctx, req)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to process search request")
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
