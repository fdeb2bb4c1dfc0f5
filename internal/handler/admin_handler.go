package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeevanantham/portfolio/backend/internal/model"
	"github.com/jeevanantham/portfolio/backend/internal/repository"
)

// AdminHandler exposes the stored resume requests to the site owner.
// Access is guarded by a static bearer token; when no token is configured
// the endpoints answer 404 so the surface stays invisible.
type AdminHandler struct {
	repo  repository.ResumeRequestRepository
	token string
}

// NewAdminHandler creates an AdminHandler guarded by the given token.
func NewAdminHandler(repo repository.ResumeRequestRepository, token string) *AdminHandler {
	return &AdminHandler{repo: repo, token: token}
}

// authorize checks the Authorization header and writes the refusal itself.
func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.token == "" {
		http.NotFound(w, r)
		return false
	}
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}

// adminListResponse is the JSON response for GET /api/admin/resume-requests.
type adminListResponse struct {
	Requests []*model.ResumeRequest `json:"requests"`
}

// List handles GET /api/admin/resume-requests, newest first.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	requests, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("admin list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list requests")
		return
	}
	if requests == nil {
		requests = []*model.ResumeRequest{}
	}
	writeJSON(w, http.StatusOK, adminListResponse{Requests: requests})
}

// Stats handles GET /api/admin/resume-requests/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		slog.Error("admin stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
