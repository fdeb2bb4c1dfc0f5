package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

func TestHealth_OK(t *testing.T) {
	h := NewHealthHandler(&mockRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_StoreFailure(t *testing.T) {
	h := NewHealthHandler(&mockRepo{
		statsFunc: func(context.Context) (*model.RequestStats, error) {
			return nil, errors.New("data dir unreadable")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
