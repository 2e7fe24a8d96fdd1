// Package retrieval implements the ranked semantic search path over the
// publication corpus.
package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks biopubs-ai/internal/retrieval Searcher,Embedder,Backfiller

import (
	"context"
	"fmt"
	"strings"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/service"
	"biopubs-ai/internal/similarity"
	"biopubs-ai/internal/storage"
)

const (
	// DefaultLimit is the result count used when the request does not ask
	// for one.
	DefaultLimit = 10
	// MaxLimit caps the result count of a single search.
	MaxLimit = 50
)

// SearchRequest represents a semantic search request.
type SearchRequest struct {
	// Query is the free-text query. Required, non-empty after trimming.
	Query string
	// Year filters candidates by publication year. Zero means no filter.
	Year int
	// UserID filters candidates by owning user. Empty means no filter.
	UserID string
	// Limit is the maximum result count, clamped to [1, MaxLimit].
	// Zero selects DefaultLimit.
	Limit int
}

// SearchResponse represents ranked search results.
type SearchResponse struct {
	Query   string             `json:"query"`
	Count   int                `json:"count"`
	Results []similarity.Match `json:"results"`
}

// Searcher answers ranked semantic search queries.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
}

// Embedder converts text into an embedding vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// Backfiller fills missing embeddings on the given records in place.
type Backfiller interface {
	BackfillPublications(ctx context.Context, pubs []*storage.Publication) int
}

// Service implements Searcher over the publication store.
type Service struct {
	store      storage.PublicationStore
	embedder   Embedder
	backfiller Backfiller
}

// NewService creates a new retrieval Service.
func NewService(store storage.PublicationStore, embedder Embedder, backfiller Backfiller) *Service {
	return &Service{
		store:      store,
		embedder:   embedder,
		backfiller: backfiller,
	}
}

// Search embeds the query, lazily backfills candidate embeddings and returns
// the top results by cosine similarity against each publication's title
// embedding.
//
// An empty candidate set short-circuits before the query is embedded, so an
// empty corpus costs no provider calls. A query embedding failure is fatal
// to the request; missing candidate embeddings merely exclude those
// candidates after an inline backfill attempt.
func (s *Service) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return SearchResponse{}, &service.ValidationError{Field: "q", Message: "cannot be empty"}
	}
	limit := clampLimit(req.Limit)

	pubs, err := s.store.List(ctx, storage.Filter{Year: req.Year, UserID: req.UserID})
	if err != nil {
		return SearchResponse{}, fmt.Errorf("failed to list candidates: %w", err)
	}
	if len(pubs) == 0 {
		logger.InfoContext(ctx, "search on empty candidate set", "query", query)
		return SearchResponse{Query: query, Results: []similarity.Match{}}, nil
	}

	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed query", "error", err)
		return SearchResponse{}, fmt.Errorf("failed to embed query: %w: %w", service.ErrUpstream, err)
	}

	var missing []*storage.Publication
	for _, pub := range pubs {
		if !pub.HasEmbedding() {
			missing = append(missing, pub)
		}
	}
	if len(missing) > 0 {
		logger.InfoContext(ctx, "backfilling candidate embeddings inline", "missing", len(missing))
		s.backfiller.BackfillPublications(ctx, missing)
	}

	candidates := make([]similarity.Candidate, 0, len(pubs))
	for _, pub := range pubs {
		candidates = append(candidates, similarity.Candidate{
			ID:        pub.ID,
			Title:     pub.Title,
			Link:      pub.Link,
			Embedding: pub.Embedding,
		})
	}

	k := limit
	if k > len(candidates) {
		k = len(candidates)
	}
	results := similarity.TopK(queryVec, candidates, k)

	logger.InfoContext(ctx, "search completed",
		"query", query,
		"candidates", len(candidates),
		"results", len(results),
	)
	return SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}

// clampLimit normalizes the requested result count into [1, MaxLimit].
func clampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
