package handler

import (
	"context"
	"sync"

	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactMessage) error
	submitted  []*model.ContactMessage
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	m.submitted = append(m.submitted, msg)
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockResumeService
// ---------------------------------------------------------------------------

type mockResumeService struct {
	requestFunc func(ctx context.Context, email, ip string) (*model.ResumeRequest, error)
	calls       []string // emails passed in
	ips         []string
}

func (m *mockResumeService) Request(ctx context.Context, email, ip string) (*model.ResumeRequest, error) {
	m.calls = append(m.calls, email)
	m.ips = append(m.ips, ip)
	if m.requestFunc != nil {
		return m.requestFunc(ctx, email, ip)
	}
	return &model.ResumeRequest{ID: "req-1", Email: email, Status: model.StatusSent}, nil
}

// ---------------------------------------------------------------------------
// mockRepo — ResumeRequestRepository mock for admin/health handlers
// ---------------------------------------------------------------------------

type mockRepo struct {
	listFunc  func(ctx context.Context) ([]*model.ResumeRequest, error)
	statsFunc func(ctx context.Context) (*model.RequestStats, error)
}

func (m *mockRepo) Append(_ context.Context, email, ip string) (*model.ResumeRequest, error) {
	return &model.ResumeRequest{ID: "req-1", Email: email, IPAddress: ip, Status: model.StatusPending}, nil
}

func (m *mockRepo) HasRecentRequest(context.Context, string) (bool, error) { return false, nil }

func (m *mockRepo) UpdateStatus(context.Context, string, model.RequestStatus) error { return nil }

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

// ---------------------------------------------------------------------------
// mockMailer — for end-to-end flows over the real service and store
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

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
