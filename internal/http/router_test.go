package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biopubs-ai/internal/rag"
	rag_mocks "biopubs-ai/internal/rag/mocks"
	"biopubs-ai/internal/retrieval"
	retrieval_mocks "biopubs-ai/internal/retrieval/mocks"
	"biopubs-ai/internal/service"
	storage_mocks "biopubs-ai/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *retrieval_mocks.MockSearcher, *rag_mocks.MockEngine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSearcher := retrieval_mocks.NewMockSearcher(ctrl)
	mockEngine := rag_mocks.NewMockEngine(ctrl)
	mockStore := storage_mocks.NewMockPublicationStore(ctrl)
	mockStore.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	router := NewRouter(&Deps{
		Searcher:   mockSearcher,
		ChatEngine: mockEngine,
		Summarizer: service.NewSummarizerService(mockStore, nil, nil),
		Cards:      service.NewCardService(mockStore, nil, nil),
		Stats:      service.NewStatsService(mockStore),
		DB:         okPinger{},
	})
	return router, mockSearcher, mockEngine
}

func TestNewRouter_Routes(t *testing.T) {
	router, mockSearcher, _ := newTestRouter(t)

	mockSearcher.EXPECT().
		Search(gomock.Any(), retrieval.SearchRequest{Query: "bone"}).
		Return(retrieval.SearchResponse{Query: "bone"}, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "search", method: http.MethodGet, path: "/api/search?q=bone", wantStatus: http.StatusOK},
		{name: "stats", method: http.MethodGet, path: "/api/stats", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/api/search?q=bone", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestNewRouter_ChatDelegates(t *testing.T) {
	router, _, mockEngine := newTestRouter(t)

	mockEngine.EXPECT().
		Chat(gomock.Any(), gomock.Any()).
		Return(rag.ChatResponse{Answer: "hi"}, nil)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"messages":[{"role":"user","content":"hello"}]}`)
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/chat", body))

	if w.Code != http.StatusOK {
		t.Errorf("POST /api/chat status = %v, want 200", w.Code)
	}
}
