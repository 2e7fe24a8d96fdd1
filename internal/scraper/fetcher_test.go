package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetcher_FetchArticleText_Abstract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<div id="abstract">  Bone density declines in microgravity.  </div>
			<p>Unrelated paragraph.</p>
		</body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	got := f.FetchArticleText(context.Background(), server.URL)
	if got != "Bone density declines in microgravity." {
		t.Errorf("FetchArticleText() = %q, want trimmed abstract", got)
	}
}

func TestFetcher_FetchArticleText_ParagraphFallback(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		sb.WriteString("<p>para</p>")
	}
	sb.WriteString("</body></html>")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sb.String()))
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	got := f.FetchArticleText(context.Background(), server.URL)

	if count := strings.Count(got, "para"); count != maxParagraphs {
		t.Errorf("FetchArticleText() used %d paragraphs, want %d", count, maxParagraphs)
	}
}

func TestFetcher_FetchArticleText_NeverFails(t *testing.T) {
	badStatus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer badStatus.Close()

	f := NewFetcher(time.Second)
	tests := []struct {
		name string
		url  string
	}{
		{name: "bad status", url: badStatus.URL},
		{name: "unreachable host", url: "http://127.0.0.1:1"},
		{name: "malformed url", url: "://not-a-url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FetchArticleText(context.Background(), tt.url); got != "" {
				t.Errorf("FetchArticleText() = %q, want empty string", got)
			}
		})
	}
}
