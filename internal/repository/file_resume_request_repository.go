package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// recentWindow is the trailing window within which a second request from the
// same email is rejected.
const recentWindow = 24 * time.Hour

// FileResumeRequestRepository stores resume requests in a single JSON document
// on the local filesystem. Every mutation reads the whole file, modifies it in
// memory, and writes the whole file back, pretty-printed.
//
// The mutex serializes that read-modify-write within this process. Across
// processes there is no locking: concurrent writers race and the last writer
// wins, which is acceptable at personal-site traffic volume.
type FileResumeRequestRepository struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileResumeRequestRepository creates a repository backed by the JSON file
// at path. The parent directory is created on first write if absent.
func NewFileResumeRequestRepository(path string) *FileResumeRequestRepository {
	return &FileResumeRequestRepository{path: path, now: time.Now}
}

// Ensure FileResumeRequestRepository implements ResumeRequestRepository at compile time.
var _ ResumeRequestRepository = (*FileResumeRequestRepository)(nil)

// Append stores a new pending request and returns the stored record.
func (r *FileResumeRequestRepository) Append(_ context.Context, email, ipAddress string) (*model.ResumeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.read()

	req := &model.ResumeRequest{
		ID:        newRequestID(),
		Email:     NormalizeEmail(email),
		Timestamp: r.now().UTC().Format(time.RFC3339),
		Status:    model.StatusPending,
		IPAddress: ipAddress,
	}
	data.Requests = append(data.Requests, req)

	if err := r.write(data); err != nil {
		return nil, err
	}
	return req, nil
}

// HasRecentRequest reports whether the normalized email already has a request
// newer than 24 hours. The boundary is exclusive: a record exactly 24 hours
// old no longer counts.
func (r *FileResumeRequestRepository) HasRecentRequest(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.read()
	normalized := NormalizeEmail(email)
	cutoff := r.now().Add(-recentWindow)

	for _, req := range data.Requests {
		if req.Email != normalized {
			continue
		}
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			continue
		}
		if ts.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

// UpdateStatus mutates the status of the request with the given id in place.
// Unknown ids are a silent no-op.
func (r *FileResumeRequestRepository) UpdateStatus(_ context.Context, id string, status model.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.read()
	for _, req := range data.Requests {
		if req.ID == id {
			req.Status = status
			return r.write(data)
		}
	}
	return nil
}

// List returns all stored requests, newest first.
func (r *FileResumeRequestRepository) List(_ context.Context) ([]*model.ResumeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.read()
	requests := make([]*model.ResumeRequest, len(data.Requests))
	copy(requests, data.Requests)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Timestamp > requests[j].Timestamp
	})
	return requests, nil
}

// Stats summarizes the stored requests by status and counts today's requests.
func (r *FileResumeRequestRepository) Stats(_ context.Context) (*model.RequestStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.read()
	stats := &model.RequestStats{Total: len(data.Requests)}
	today := r.now().UTC().Format("2006-01-02")

	for _, req := range data.Requests {
		switch req.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusSent:
			stats.Sent++
		case model.StatusFailed:
			stats.Failed++
		}
		if strings.HasPrefix(req.Timestamp, today) {
			stats.Today++
		}
	}
	return stats, nil
}

// read loads the document from disk. A missing or unparsable file is treated
// as an empty store so that a fresh deployment works without seeding.
func (r *FileResumeRequestRepository) read() *model.ResumeRequestsData {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return &model.ResumeRequestsData{Requests: []*model.ResumeRequest{}}
	}
	var data model.ResumeRequestsData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("resume request store unparsable, treating as empty", "path", r.path, "error", err)
		return &model.ResumeRequestsData{Requests: []*model.ResumeRequest{}}
	}
	if data.Requests == nil {
		data.Requests = []*model.ResumeRequest{}
	}
	return &data
}

// write rewrites the whole document, creating the parent directory if needed.
func (r *FileResumeRequestRepository) write(data *model.ResumeRequestsData) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("resume store: mkdir: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("resume store: marshal: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("resume store: write: %w", err)
	}
	return nil
}

// NormalizeEmail lowercases and trims an address so lookups and stored records
// agree on the same key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newRequestID returns a UUIDv7: a time-ordered component plus randomness,
// unique with overwhelming probability at this write volume. Falls back to a
// random UUIDv4 if v7 generation fails.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
