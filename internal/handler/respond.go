package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// apiResponse is the envelope every endpoint answers with: a success flag
// plus either a short display-ready error or an optional message.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// writeError sends {success:false, error:msg}. msg must be safe to display;
// internal error detail is logged at the call site, never sent to the client.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Success: false, Error: msg})
}
