// Package service holds application services behind the HTTP surface and
// the shared error taxonomy they report with.
package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks biopubs-ai/internal/service SummaryClient,ArticleFetcher,CardClient

import (
	"context"
	"fmt"
	"strings"

	"biopubs-ai/internal/contextutil"
	"biopubs-ai/internal/storage"
)

// Summary styles accepted by the summarizer endpoints.
const (
	StyleExpert  = "expert"
	StyleStudent = "student"
)

// SummaryClient produces a short summary of a publication.
type SummaryClient interface {
	Summarize(ctx context.Context, title, body string, asExpert bool) (string, error)
}

// ArticleFetcher retrieves best-effort article body text. It never fails;
// an empty string means no body could be fetched.
type ArticleFetcher interface {
	FetchArticleText(ctx context.Context, url string) string
}

// SummaryResult is the outcome of a summarization request.
type SummaryResult struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Style   string `json:"style"`
}

// SummarizerService generates publication summaries, caching per-publication
// results on the stored record.
type SummarizerService struct {
	store   storage.PublicationStore
	fetcher ArticleFetcher
	client  SummaryClient
}

// NewSummarizerService creates a new SummarizerService.
func NewSummarizerService(store storage.PublicationStore, fetcher ArticleFetcher, client SummaryClient) *SummarizerService {
	return &SummarizerService{
		store:   store,
		fetcher: fetcher,
		client:  client,
	}
}

// SummarizePublication returns a summary for a stored publication. Cached
// summaries are served without a provider call unless force is set; freshly
// generated summaries are written back to the record.
//
// Only expert-style summaries participate in the cache. Student-style
// requests always generate and never overwrite the cached expert summary.
func (s *SummarizerService) SummarizePublication(ctx context.Context, id, style string, force bool) (SummaryResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return SummaryResult{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	asExpert := style != StyleStudent

	pub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return SummaryResult{}, WrapError(err, "failed to load publication")
	}

	if asExpert && !force && pub.Summary != "" {
		return SummaryResult{
			ID:      pub.ID,
			Title:   pub.Title,
			Summary: pub.Summary,
			Style:   styleName(asExpert),
		}, nil
	}

	body := s.fetcher.FetchArticleText(ctx, pub.Link)
	summary, err := s.client.Summarize(ctx, pub.Title, body, asExpert)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("failed to summarize publication: %w: %w", ErrUpstream, err)
	}

	if asExpert {
		if err := s.store.SetSummary(ctx, pub.ID, summary); err != nil {
			logger.WarnContext(ctx, "failed to persist summary", "id", pub.ID, "error", err)
		}
	}

	return SummaryResult{
		ID:      pub.ID,
		Title:   pub.Title,
		Summary: summary,
		Style:   styleName(asExpert),
	}, nil
}

// SummarizeText summarizes caller-provided text without touching storage.
func (s *SummarizerService) SummarizeText(ctx context.Context, title, text, style string) (SummaryResult, error) {
	if strings.TrimSpace(title) == "" {
		return SummaryResult{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	asExpert := style != StyleStudent

	summary, err := s.client.Summarize(ctx, title, text, asExpert)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("failed to summarize text: %w: %w", ErrUpstream, err)
	}

	return SummaryResult{
		Title:   title,
		Summary: summary,
		Style:   styleName(asExpert),
	}, nil
}

func styleName(asExpert bool) string {
	if asExpert {
		return StyleExpert
	}
	return StyleStudent
}
