// Package rag implements the retrieval-augmented chat path: retrieve
// relevant publications, assemble a context block from their summaries and
// condition a generated answer on it.
package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks biopubs-ai/internal/rag Engine,Fetcher,Summarizer,Generator

import (
	"context"
	"fmt"
	"strings"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/llm"
	"biopubs-ai/internal/retrieval"
	"biopubs-ai/internal/service"
	"biopubs-ai/internal/storage"
)

// DefaultTopK is the number of publications retrieved for context when the
// request does not specify one.
const DefaultTopK = 3

const systemPreamble = "You are a space biology assistant. Use the following context from NASA bioscience publications to answer questions."

// Engine answers retrieval-augmented chat requests.
type Engine interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// Fetcher retrieves best-effort article body text. It never fails; an empty
// string means no body could be fetched.
type Fetcher interface {
	FetchArticleText(ctx context.Context, url string) string
}

// Summarizer produces a short summary of a publication.
type Summarizer interface {
	Summarize(ctx context.Context, title, body string, asExpert bool) (string, error)
}

// Generator produces the final chat answer from a message sequence.
type Generator interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message) (string, error)
}

// Assembler implements Engine.
type Assembler struct {
	retriever  retrieval.Searcher
	store      storage.PublicationStore
	fetcher    Fetcher
	summarizer Summarizer
	generator  Generator
	topK       int
}

// NewAssembler creates a new Assembler. A non-positive defaultTopK falls
// back to DefaultTopK.
func NewAssembler(
	retriever retrieval.Searcher,
	store storage.PublicationStore,
	fetcher Fetcher,
	summarizer Summarizer,
	generator Generator,
	defaultTopK int,
) *Assembler {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &Assembler{
		retriever:  retriever,
		store:      store,
		fetcher:    fetcher,
		summarizer: summarizer,
		generator:  generator,
		topK:       defaultTopK,
	}
}

// Chat retrieves the publications most similar to the latest user message,
// ensures each has a cached summary, and generates an answer conditioned on
// a context block built from those summaries.
//
// Per-publication summary failures degrade gracefully: the entry is omitted
// from the context block and the rest of the request proceeds. A failure of
// the final generation call is fatal.
func (a *Assembler) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Messages) == 0 {
		return ChatResponse{}, &service.ValidationError{Field: "messages", Message: "cannot be empty"}
	}
	query, ok := latestUserMessage(req.Messages)
	if !ok {
		return ChatResponse{}, &service.ValidationError{Field: "messages", Message: "no user message found"}
	}

	topK := req.TopK
	if topK <= 0 {
		topK = a.topK
	}

	searchResp, err := a.retriever.Search(ctx, retrieval.SearchRequest{
		Query: query,
		Limit: topK,
	})
	if err != nil {
		return ChatResponse{}, fmt.Errorf("failed to retrieve context publications: %w", err)
	}

	logger.InfoContext(ctx, "chat retrieval completed",
		"query", query,
		"top_k", topK,
		"retrieved", len(searchResp.Results),
	)

	sources := make([]Source, 0, len(searchResp.Results))
	var contextParts []string
	for _, match := range searchResp.Results {
		sources = append(sources, Source{ID: match.ID, Title: match.Title, Link: match.Link})

		summary, ok := a.ensureSummary(ctx, match.ID)
		if !ok {
			continue
		}
		contextParts = append(contextParts, fmt.Sprintf("Title: %s\nSummary: %s", match.Title, summary))
	}

	systemMessage := llm.Message{
		Role:    "system",
		Content: fmt.Sprintf("%s\n\n%s", systemPreamble, strings.Join(contextParts, "\n\n")),
	}
	finalMessages := append([]llm.Message{systemMessage}, req.Messages...)

	answer, err := a.generator.ChatWithMessages(ctx, finalMessages)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err)
		return ChatResponse{}, fmt.Errorf("failed to generate answer: %w: %w", service.ErrUpstream, err)
	}

	return ChatResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}

// ensureSummary returns the publication's cached summary, computing and
// persisting it on first need. Failures are tolerated; ok is false when no
// summary could be produced.
func (a *Assembler) ensureSummary(ctx context.Context, id string) (string, bool) {
	logger := contextutil.LoggerFromContext(ctx)

	pub, err := a.store.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to load retrieved publication", "id", id, "error", err)
		return "", false
	}
	if pub.Summary != "" {
		return pub.Summary, true
	}

	body := a.fetcher.FetchArticleText(ctx, pub.Link)
	summary, err := a.summarizer.Summarize(ctx, pub.Title, body, true)
	if err != nil {
		logger.WarnContext(ctx, "failed to summarize publication", "id", id, "error", err)
		return "", false
	}

	if err := a.store.SetSummary(ctx, pub.ID, summary); err != nil {
		// The summary is still usable for this request even if caching failed.
		logger.WarnContext(ctx, "failed to persist summary", "id", id, "error", err)
	}
	return summary, true
}

// latestUserMessage returns the content of the most recent user-authored
// message, scanning from the end of the conversation.
func latestUserMessage(messages []llm.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content, true
		}
	}
	return "", false
}
