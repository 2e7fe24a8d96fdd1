package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/service"
)

// CardsHandler handles HTTP requests for study-card generation.
type CardsHandler struct {
	cards *service.CardService
}

// NewCardsHandler creates a new CardsHandler.
func NewCardsHandler(cards *service.CardService) *CardsHandler {
	return &CardsHandler{cards: cards}
}

// ServeHTTP handles GET /api/cards/{id}?count=….
func (h *CardsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.WarnContext(ctx, "invalid count parameter", "count", raw)
			writeError(ctx, w, http.StatusBadRequest, "Invalid count parameter")
			return
		}
		count = parsed
	}

	result, err := h.cards.GenerateCards(ctx, id, count)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to generate study cards")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
