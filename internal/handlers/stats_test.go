package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biopubs-ai/internal/service"
	"biopubs-ai/internal/storage"
	storage_mocks "biopubs-ai/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatsHandler_ServeHTTP(t *testing.T) {
	t.Run("successful stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := storage_mocks.NewMockPublicationStore(ctrl)
		mockStore.EXPECT().
			List(gomock.Any(), storage.Filter{}).
			Return([]*storage.Publication{
				{ID: "1", Title: "Bone density", Year: 2020},
			}, nil)

		handler := NewStatsHandler(service.NewStatsService(mockStore))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", w.Code)
		}
		var resp service.CorpusStats
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.TotalPublications != 1 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := storage_mocks.NewMockPublicationStore(ctrl)
		mockStore.EXPECT().List(gomock.Any(), storage.Filter{}).Return(nil, errors.New("db closed"))

		handler := NewStatsHandler(service.NewStatsService(mockStore))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %v, want 500", w.Code)
		}
	})
}
