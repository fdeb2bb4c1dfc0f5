package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeevanantham/portfolio/backend/internal/service"
)

// ResumeRequestHandler handles resume request submissions.
type ResumeRequestHandler struct {
	resumeService service.ResumeRequestService
}

// NewResumeRequestHandler creates a ResumeRequestHandler with the given service.
func NewResumeRequestHandler(resumeService service.ResumeRequestService) *ResumeRequestHandler {
	return &ResumeRequestHandler{resumeService: resumeService}
}

// resumeRequest is the expected JSON body for POST /api/resume-request.
type resumeRequest struct {
	Email string `json:"email"`
}

// Submit handles POST /api/resume-request: validate, rate-check, store,
// dispatch the notification pair, update the stored status, respond.
func (h *ResumeRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Invalid content type")
		return
	}

	var req resumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	email := strings.TrimSpace(req.Email)
	if !isValidEmail(email) {
		writeError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	_, err := h.resumeService.Request(r.Context(), email, clientIP(r))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Message: "Your resume request has been submitted successfully! Please check your email for confirmation.",
		})
	case errors.Is(err, service.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests,
			"You have already requested a resume recently. Please wait 24 hours before requesting again.")
	case errors.Is(err, service.ErrNotificationFailed):
		slog.Error("resume notification failed", "error", err)
		writeError(w, http.StatusInternalServerError,
			"Your request was saved but we couldn't send the confirmation email. Please try again or contact us directly.")
	default:
		slog.Error("resume request failed", "error", err)
		writeError(w, http.StatusInternalServerError,
			"Failed to process resume request. Please try again.")
	}
}
