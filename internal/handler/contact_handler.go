package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jeevanantham/portfolio/backend/internal/model"
	"github.com/jeevanantham/portfolio/backend/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the expected JSON body for POST /api/contact.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// validate checks constraints in field-declaration order and returns the
// first failing constraint's message, or "" when the body is valid.
func (req *contactRequest) validate() string {
	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) < 2 {
		return "Name is required"
	}
	if !isValidEmail(strings.TrimSpace(req.Email)) {
		return "Valid email required"
	}
	if !model.IsValidContactSubject(req.Subject) {
		return "Subject is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Message)) < 10 {
		return "Message should be at least 10 characters"
	}
	return ""
}

// Submit handles POST /api/contact: validate, then send the owner
// notification and submitter confirmation. Nothing is persisted.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Invalid content type")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	contact := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), contact); err != nil {
		slog.Error("contact dispatch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}
