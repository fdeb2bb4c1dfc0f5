package service

import (
	"context"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit sends the owner notification and the submitter confirmation for
	// a validated contact message. Both emails must succeed; contact messages
	// are not persisted.
	Submit(ctx context.Context, msg *model.ContactMessage) error
}
