package service

import (
	"context"
	"errors"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// ErrRateLimited is returned when the email already has a request within the
// trailing 24-hour window. No new record is stored in that case.
var ErrRateLimited = errors.New("resume already requested within the last 24 hours")

// ErrNotificationFailed is returned when the request was stored but the
// notification email pair could not be sent. The stored record has been
// marked failed.
var ErrNotificationFailed = errors.New("notification dispatch failed")

// ResumeRequestService defines the business logic for resume requests.
type ResumeRequestService interface {
	// Request records a resume request for the given email and dispatches the
	// owner/requester notification pair. On success the stored record ends in
	// status "sent"; if dispatch fails it ends in "failed" and the error wraps
	// ErrNotificationFailed. A record is never left at "pending" once Request
	// returns.
	Request(ctx context.Context, email, ipAddress string) (*model.ResumeRequest, error)
}
