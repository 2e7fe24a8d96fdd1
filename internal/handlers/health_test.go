package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
		wantCheck  string
	}{
		{name: "healthy", pingErr: nil, wantStatus: http.StatusOK, wantState: "healthy", wantCheck: "ok"},
		{name: "database down", pingErr: errors.New("locked"), wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy", wantCheck: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(&fakePinger{err: tt.pingErr})
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.wantStatus)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("status field = %q, want %q", resp.Status, tt.wantState)
			}
			if resp.Checks["database"] != tt.wantCheck {
				t.Errorf("database check = %q, want %q", resp.Checks["database"], tt.wantCheck)
			}
			if resp.Timestamp == "" {
				t.Error("timestamp missing")
			}
		})
	}
}
