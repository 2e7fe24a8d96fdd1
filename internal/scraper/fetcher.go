// Package scraper fetches article pages and extracts their primary content
// block for summarization.
package scraper

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"biopubs-ai/internal/contextutil"
)

const (
	defaultUserAgent = "biopubs-ai/1.0"
	// maxParagraphs caps how much of a full article body is used when no
	// abstract section is present.
	maxParagraphs = 10
)

// Fetcher retrieves best-effort article body text over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a new Fetcher. Every request is bounded by the given timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// FetchArticleText fetches the article at url and extracts its abstract, or
// the first few paragraphs when no abstract element is present.
//
// It is strictly best-effort: any failure (network, status, parse) is logged
// and yields an empty string, never an error. Callers treat an empty body as
// "summarize from the title alone".
func (f *Fetcher) FetchArticleText(ctx context.Context, url string) string {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.WarnContext(ctx, "failed to build article request", "url", url, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch article", "url", url, "error", err)
		return ""
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WarnContext(ctx, "article fetch returned bad status", "url", url, "status", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logger.WarnContext(ctx, "failed to parse article HTML", "url", url, "error", err)
		return ""
	}

	if abstract := strings.TrimSpace(doc.Find("#abstract").Text()); abstract != "" {
		return abstract
	}

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})
	return strings.Join(paragraphs, " ")
}
