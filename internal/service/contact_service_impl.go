package service

import (
	"context"

	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	mailer mail.Mailer
	from   string // address the SMTP account sends as
	owner  string // mailbox that receives owner notifications
}

// NewContactService creates a ContactService sending through the given mailer.
func NewContactService(mailer mail.Mailer, from, owner string) ContactService {
	return &contactServiceImpl{mailer: mailer, from: from, owner: owner}
}

// Submit builds the owner/confirmation pair and sends both concurrently.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	return sendPair(ctx, s.mailer,
		mail.ContactOwnerMessage(s.from, s.owner, msg),
		mail.ContactConfirmationMessage(s.from, msg),
	)
}
