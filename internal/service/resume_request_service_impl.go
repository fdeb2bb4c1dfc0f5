package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"github.com/jeevanantham/portfolio/backend/internal/model"
	"github.com/jeevanantham/portfolio/backend/internal/repository"
)

// resumeRequestServiceImpl is the production implementation of ResumeRequestService.
type resumeRequestServiceImpl struct {
	repo   repository.ResumeRequestRepository
	mailer mail.Mailer
	from   string
	owner  string
}

// NewResumeRequestService creates a ResumeRequestService backed by the given
// store and mailer.
func NewResumeRequestService(repo repository.ResumeRequestRepository, mailer mail.Mailer, from, owner string) ResumeRequestService {
	return &resumeRequestServiceImpl{repo: repo, mailer: mailer, from: from, owner: owner}
}

// Request runs the intake pipeline: rate check, append, dispatch, status update.
//
// The rate check and the append are separate reads of the store, so two
// concurrent requests for the same email can both pass the check. Accepted
// limitation at this traffic level.
func (s *resumeRequestServiceImpl) Request(ctx context.Context, email, ipAddress string) (*model.ResumeRequest, error) {
	recent, err := s.repo.HasRecentRequest(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("rate check: %w", err)
	}
	if recent {
		return nil, ErrRateLimited
	}

	req, err := s.repo.Append(ctx, email, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("store request: %w", err)
	}

	sendErr := sendPair(ctx, s.mailer,
		mail.ResumeOwnerMessage(s.from, s.owner, req),
		mail.ResumeConfirmationMessage(s.from, req),
	)
	if sendErr != nil {
		if err := s.repo.UpdateStatus(ctx, req.ID, model.StatusFailed); err != nil {
			slog.Error("failed to mark resume request failed", "id", req.ID, "error", err)
		}
		req.Status = model.StatusFailed
		return req, fmt.Errorf("%w: %w", ErrNotificationFailed, sendErr)
	}

	if err := s.repo.UpdateStatus(ctx, req.ID, model.StatusSent); err != nil {
		// Both emails went out; the request succeeded even if the bookkeeping write failed.
		slog.Error("failed to mark resume request sent", "id", req.ID, "error", err)
	}
	req.Status = model.StatusSent
	return req, nil
}
