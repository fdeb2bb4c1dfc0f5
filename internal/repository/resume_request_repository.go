package repository

import (
	"context"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// ResumeRequestRepository defines the persistence interface for the resume
// request log. It is defined here (in repository) to avoid an import cycle
// with service.
type ResumeRequestRepository interface {
	// Append stores a new request for the given email with status "pending"
	// and returns the stored record. The email is normalized (lowercased and
	// trimmed) before storage.
	Append(ctx context.Context, email, ipAddress string) (*model.ResumeRequest, error)

	// HasRecentRequest reports whether any request for the normalized email
	// was stored within the trailing 24-hour window.
	HasRecentRequest(ctx context.Context, email string) (bool, error)

	// UpdateStatus sets the status of the request with the given id.
	// Unknown ids are a no-op, not an error.
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error

	// List returns all stored requests, newest first.
	List(ctx context.Context) ([]*model.ResumeRequest, error)

	// Stats summarizes the stored requests by status and recency.
	Stats(ctx context.Context) (*model.RequestStats, error)
}
