package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/service"
)

// SummarizeHandler handles HTTP requests for publication and ad-hoc text
// summaries.
type SummarizeHandler struct {
	summarizer *service.SummarizerService
	markdown   goldmark.Markdown
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(summarizer *service.SummarizerService) *SummarizeHandler {
	return &SummarizeHandler{
		summarizer: summarizer,
		markdown:   goldmark.New(),
	}
}

// SummarizeTextRequest represents the HTTP request payload for ad-hoc text
// summaries.
type SummarizeTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// SummaryResponse represents the HTTP response payload for summaries.
type SummaryResponse struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Style   string `json:"style"`
	// SummaryHTML is the markdown summary rendered to HTML, present only
	// when the client asked for format=html.
	SummaryHTML string `json:"summary_html,omitempty"`
}

// SummarizePublication handles GET /api/summarize/{id}.
func (h *SummarizeHandler) SummarizePublication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	query := r.URL.Query()
	style := query.Get("style")
	force := query.Get("force") == "true"

	result, err := h.summarizer.SummarizePublication(ctx, id, style, force)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to summarize publication")
		return
	}

	h.respond(w, r, result)
}

// SummarizeText handles POST /api/summarize.
func (h *SummarizeHandler) SummarizeText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SummarizeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.summarizer.SummarizeText(ctx, req.Title, req.Text, req.Style)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to summarize text")
		return
	}

	h.respond(w, r, result)
}

func (h *SummarizeHandler) respond(w http.ResponseWriter, r *http.Request, result service.SummaryResult) {
	ctx := r.Context()

	resp := SummaryResponse{
		ID:      result.ID,
		Title:   result.Title,
		Summary: result.Summary,
		Style:   result.Style,
	}

	if r.URL.Query().Get("format") == "html" {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(result.Summary), &buf); err != nil {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to render summary as html", "error", err)
		} else {
			resp.SummaryHTML = buf.String()
		}
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
