package service

import (
	"context"

	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"golang.org/x/sync/errgroup"
)

// sendPair sends all messages concurrently and waits for every send to
// finish. The dispatch succeeds only if every send succeeds; on failure the
// first error is returned. There is no partial-success handling and no retry.
func sendPair(ctx context.Context, mailer mail.Mailer, msgs ...mail.Message) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, msg := range msgs {
		g.Go(func() error {
			return mailer.Send(ctx, msg)
		})
	}
	return g.Wait()
}
