package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"biopubs-ai/internal/service"
	service_mocks "biopubs-ai/internal/service/mocks"
	"biopubs-ai/internal/storage"
	storage_mocks "biopubs-ai/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

type summarizeMocks struct {
	store   *storage_mocks.MockPublicationStore
	fetcher *service_mocks.MockArticleFetcher
	client  *service_mocks.MockSummaryClient
}

// newSummarizeRouter mounts the handler behind a chi router so {id} URL
// params resolve like in production.
func newSummarizeRouter(t *testing.T) (http.Handler, summarizeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := summarizeMocks{
		store:   storage_mocks.NewMockPublicationStore(ctrl),
		fetcher: service_mocks.NewMockArticleFetcher(ctrl),
		client:  service_mocks.NewMockSummaryClient(ctrl),
	}
	handler := NewSummarizeHandler(service.NewSummarizerService(m.store, m.fetcher, m.client))

	r := chi.NewRouter()
	r.Get("/api/summarize/{id}", handler.SummarizePublication)
	r.Post("/api/summarize", handler.SummarizeText)
	return r, m
}

func TestSummarizeHandler_SummarizePublication(t *testing.T) {
	t.Run("cached summary", func(t *testing.T) {
		router, m := newSummarizeRouter(t)

		m.store.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(&storage.Publication{ID: "p1", Title: "t", Summary: "- cached"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summarize/p1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", w.Code)
		}
		var resp SummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Summary != "- cached" || resp.SummaryHTML != "" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("html format renders markdown", func(t *testing.T) {
		router, m := newSummarizeRouter(t)

		m.store.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(&storage.Publication{ID: "p1", Title: "t", Summary: "- first point"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summarize/p1?format=html", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", w.Code)
		}
		var resp SummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if !strings.Contains(resp.SummaryHTML, "<li>") {
			t.Errorf("summary_html = %q, want rendered list", resp.SummaryHTML)
		}
	})

	t.Run("force regenerates", func(t *testing.T) {
		router, m := newSummarizeRouter(t)

		m.store.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(&storage.Publication{ID: "p1", Title: "t", Link: "l", Summary: "stale"}, nil)
		m.fetcher.EXPECT().FetchArticleText(gomock.Any(), "l").Return("body")
		m.client.EXPECT().Summarize(gomock.Any(), "t", "body", true).Return("fresh", nil)
		m.store.EXPECT().SetSummary(gomock.Any(), "p1", "fresh").Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summarize/p1?force=true", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", w.Code)
		}
	})

	t.Run("unknown publication", func(t *testing.T) {
		router, m := newSummarizeRouter(t)

		m.store.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summarize/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %v, want 404", w.Code)
		}
	})
}

func TestSummarizeHandler_SummarizeText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newSummarizeRouter(t)

		m.client.EXPECT().
			Summarize(gomock.Any(), "A Title", "some text", false).
			Return("summary", nil)

		body := mustMarshal(t, SummarizeTextRequest{Title: "A Title", Text: "some text", Style: "student"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/summarize", bytes.NewReader(body)))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", w.Code)
		}
		var resp SummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Summary != "summary" || resp.Style != service.StyleStudent {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		router, _ := newSummarizeRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader("not json")))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %v, want 400", w.Code)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		router, _ := newSummarizeRouter(t)

		body := mustMarshal(t, SummarizeTextRequest{Text: "some text"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/summarize", bytes.NewReader(body)))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %v, want 400", w.Code)
		}
	})
}
