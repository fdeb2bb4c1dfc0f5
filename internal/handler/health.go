package handler

import (
	"net/http"

	"github.com/jeevanantham/portfolio/backend/internal/repository"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports liveness, exercising a request store read so a broken
// data directory shows up here before it shows up in a real submission.
type HealthHandler struct {
	repo repository.ResumeRequestRepository
}

// NewHealthHandler creates a HealthHandler probing the given store.
func NewHealthHandler(repo repository.ResumeRequestRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Stats(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Portfolio API",
	})
}
