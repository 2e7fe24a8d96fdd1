// Package http assembles the chi router and request middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"biopubs-ai/internal/handlers"
	"biopubs-ai/internal/rag"
	"biopubs-ai/internal/retrieval"
	"biopubs-ai/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Searcher   retrieval.Searcher
	ChatEngine rag.Engine
	Summarizer *service.SummarizerService
	Cards      *service.CardService
	Stats      *service.StatsService
	DB         handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	searchHandler := handlers.NewSearchHandler(deps.Searcher)
	chatHandler := handlers.NewChatHandler(deps.ChatEngine)
	summarizeHandler := handlers.NewSummarizeHandler(deps.Summarizer)
	cardsHandler := handlers.NewCardsHandler(deps.Cards)
	statsHandler := handlers.NewStatsHandler(deps.Stats)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/search", searchHandler)
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Get("/summarize/{id}", summarizeHandler.SummarizePublication)
		r.Post("/summarize", summarizeHandler.SummarizeText)
		r.Method(http.MethodGet, "/cards/{id}", cardsHandler)
		r.Method(http.MethodGet, "/stats", statsHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
