// Package backfill computes and persists missing title embeddings for
// publications, in bounded-concurrency chunks.
package backfill

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks biopubs-ai/internal/backfill Embedder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/storage"
)

// DefaultChunkSize bounds how many embedding requests are in flight at once.
const DefaultChunkSize = 5

// Embedder converts text into an embedding vector.
// This interface is defined from the scheduler's perspective (consumer-first).
type Embedder interface {
	// EmbedText generates an embedding for the given text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// Scheduler brings every publication's embedding up to date with respect to
// its title, without overwhelming the embedding provider and without letting
// one failure abort the batch.
type Scheduler struct {
	store     storage.PublicationStore
	embedder  Embedder
	chunkSize int
	timeout   time.Duration
}

// NewScheduler creates a new Scheduler. A non-positive chunkSize falls back
// to DefaultChunkSize; a zero timeout disables the per-call deadline.
func NewScheduler(store storage.PublicationStore, embedder Embedder, chunkSize int, timeout time.Duration) *Scheduler {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Scheduler{
		store:     store,
		embedder:  embedder,
		chunkSize: chunkSize,
		timeout:   timeout,
	}
}

// Run backfills embeddings for every publication currently missing one.
//
// It is idempotent: a second run with no intervening data change selects
// nothing and makes zero provider calls. Returns the number of publications
// successfully embedded.
func (s *Scheduler) Run(ctx context.Context) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	pubs, err := s.store.List(ctx, storage.Filter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list publications: %w", err)
	}

	var missing []*storage.Publication
	for _, pub := range pubs {
		if !pub.HasEmbedding() {
			missing = append(missing, pub)
		}
	}

	logger.InfoContext(ctx, "embedding backfill selected",
		"total", len(pubs),
		"missing", len(missing),
	)
	if len(missing) == 0 {
		return 0, nil
	}

	embedded := s.BackfillPublications(ctx, missing)
	logger.InfoContext(ctx, "embedding backfill finished",
		"embedded", embedded,
		"remaining", len(missing)-embedded,
	)
	return embedded, nil
}

// BackfillPublications embeds the given publications in chunks: one
// concurrent provider call per publication within a chunk, with a barrier
// between chunks capping in-flight provider load at the chunk size.
//
// A per-publication failure is logged and skipped so the publication stays
// eligible for a future run; it never aborts siblings or later chunks.
// Successfully computed vectors are persisted immediately and written back
// into the passed records in place. Returns the number embedded.
func (s *Scheduler) BackfillPublications(ctx context.Context, pubs []*storage.Publication) int {
	var embedded int
	for start := 0; start < len(pubs); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(pubs) {
			end = len(pubs)
		}
		chunk := pubs[start:end]

		results := make([]bool, len(chunk))
		var wg sync.WaitGroup
		for i, pub := range chunk {
			wg.Add(1)
			go func(i int, pub *storage.Publication) {
				defer wg.Done()
				results[i] = s.embedOne(ctx, pub)
			}(i, pub)
		}
		wg.Wait()

		for _, ok := range results {
			if ok {
				embedded++
			}
		}
	}
	return embedded
}

// embedOne computes and persists the embedding for a single publication.
// Failures are tolerated: the publication is left without an embedding.
func (s *Scheduler) embedOne(ctx context.Context, pub *storage.Publication) bool {
	logger := contextutil.LoggerFromContext(ctx)

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vec, err := s.embedder.EmbedText(callCtx, pub.Title)
	if err != nil {
		logger.WarnContext(ctx, "failed to embed publication", "id", pub.ID, "error", err)
		return false
	}
	if len(vec) == 0 {
		logger.WarnContext(ctx, "empty embedding returned for publication", "id", pub.ID)
		return false
	}

	if err := s.store.SetEmbedding(ctx, pub.ID, vec); err != nil {
		logger.WarnContext(ctx, "failed to persist embedding", "id", pub.ID, "error", err)
		return false
	}
	pub.Embedding = vec
	return true
}
