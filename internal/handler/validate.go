package handler

import (
	"mime"
	"net/http"
	"net/mail"
	"strings"
)

// isJSONRequest reports whether the request declares a JSON media type.
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.Contains(ct, "application/json")
	}
	return mediaType == "application/json"
}

// isValidEmail reports whether s is a plain email address. Display-name forms
// ("Name <a@b>") are rejected: the form field must be the bare address.
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// clientIP extracts the best-effort originating address from proxy headers.
// Spoofable, so it is stored for audit only and never used as a control.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
