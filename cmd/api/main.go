package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"biopubs-ai/internal/backfill"
	"biopubs-ai/internal/config"
	"biopubs-ai/internal/http"
	"biopubs-ai/internal/llm"
	"biopubs-ai/internal/rag"
	"biopubs-ai/internal/retrieval"
	"biopubs-ai/internal/scraper"
	"biopubs-ai/internal/service"
	"biopubs-ai/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	pubRepo := storage.NewPublicationRepo(db)

	// External collaborators
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.ProviderTimeout)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.ProviderTimeout)
	fetcher := scraper.NewFetcher(cfg.ProviderTimeout)

	// Core services
	scheduler := backfill.NewScheduler(pubRepo, embedder, cfg.EmbedChunkSize, cfg.ProviderTimeout)
	retrievalService := retrieval.NewService(pubRepo, embedder, scheduler)
	chatEngine := rag.NewAssembler(retrievalService, pubRepo, fetcher, llmClient, llmClient, cfg.ChatTopK)
	summarizer := service.NewSummarizerService(pubRepo, fetcher, llmClient)
	cards := service.NewCardService(pubRepo, fetcher, llmClient)
	stats := service.NewStatsService(pubRepo)
	slog.Info("Services initialized", "chunk_size", cfg.EmbedChunkSize, "chat_top_k", cfg.ChatTopK)

	// Create router with dependencies
	deps := &http.Deps{
		Searcher:   retrievalService,
		ChatEngine: chatEngine,
		Summarizer: summarizer,
		Cards:      cards,
		Stats:      stats,
		DB:         db,
	}
	router := http.NewRouter(deps)

	// Backfill missing embeddings in the background after the router is ready
	go func() {
		backfillCtx := context.Background()
		slog.Info("Starting background embedding backfill")
		embedded, err := scheduler.Run(backfillCtx)
		if err != nil {
			slog.Error("Backfill completed with errors", "error", err)
		} else {
			slog.Info("Backfill completed", "embedded", embedded)
		}
	}()

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
