package service

import (
	"context"
	"sync"

	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockMailer — records sent messages; sends run concurrently, so guard with a mutex
// ---------------------------------------------------------------------------

type mockMailer struct {
	mu       sync.Mutex
	sent     []mail.Message
	sendFunc func(msg mail.Message) error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	if m.sendFunc != nil {
		return m.sendFunc(msg)
	}
	return nil
}

func (m *mockMailer) sentTo(addr string) *mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sent {
		if m.sent[i].To == addr {
			return &m.sent[i]
		}
	}
	return nil
}

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// ---------------------------------------------------------------------------
// mockRepo — ResumeRequestRepository mock
// ---------------------------------------------------------------------------

type mockRepo struct {
	appendFunc           func(ctx context.Context, email, ip string) (*model.ResumeRequest, error)
	hasRecentRequestFunc func(ctx context.Context, email string) (bool, error)
	updateStatusFunc     func(ctx context.Context, id string, status model.RequestStatus) error
	listFunc             func(ctx context.Context) ([]*model.ResumeRequest, error)
	statsFunc            func(ctx context.Context) (*model.RequestStats, error)
}

func (m *mockRepo) Append(ctx context.Context, email, ip string) (*model.ResumeRequest, error) {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, email, ip)
	}
	return &model.ResumeRequest{ID: "req-1", Email: email, Status: model.StatusPending}, nil
}

func (m *mockRepo) HasRecentRequest(ctx context.Context, email string) (bool, error) {
	if m.hasRecentRequestFunc != nil {
		return m.hasRecentRequestFunc(ctx, email)
	}
	return false, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockRepo) List(ctx context.Context) ([]*model.ResumeRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepo) Stats(ctx context.Context) (*model.RequestStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.RequestStats{}, nil
}
