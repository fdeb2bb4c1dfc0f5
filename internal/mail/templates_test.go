package mail

import (
	"strings"
	"testing"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

const hostile = `<script>&"'</script>`

func TestContactOwnerMessage_Addressing(t *testing.T) {
	msg := &model.ContactMessage{
		Name:    "Al",
		Email:   "al@x.com",
		Subject: "General",
		Message: "Hello there, this is a test.",
	}

	m := ContactOwnerMessage("bot@site.com", "owner@site.com", msg)

	if m.To != "owner@site.com" {
		t.Errorf("expected owner recipient, got %q", m.To)
	}
	if m.ReplyTo != "al@x.com" {
		t.Errorf("expected reply-to submitter, got %q", m.ReplyTo)
	}
	if m.Subject != "New contact: General" {
		t.Errorf("unexpected subject %q", m.Subject)
	}
	for _, field := range []string{"Al", "al@x.com", "General", "Hello there, this is a test."} {
		if !strings.Contains(m.Text, field) {
			t.Errorf("text body missing field %q", field)
		}
		if !strings.Contains(m.HTML, field) {
			t.Errorf("html body missing field %q", field)
		}
	}
}

func TestContactOwnerMessage_EscapesHTMLKeepsTextRaw(t *testing.T) {
	msg := &model.ContactMessage{
		Name:    hostile,
		Email:   "al@x.com",
		Subject: "General",
		Message: "Hello there, this is a test.",
	}

	m := ContactOwnerMessage("bot@site.com", "owner@site.com", msg)

	if strings.Contains(m.HTML, hostile) {
		t.Error("html body contains unescaped user input")
	}
	if !strings.Contains(m.HTML, "&lt;script&gt;&amp;&quot;&#039;&lt;/script&gt;") {
		t.Error("html body missing escaped user input")
	}
	if !strings.Contains(m.Text, hostile) {
		t.Error("text body should carry the raw value")
	}
}

func TestContactConfirmationMessage(t *testing.T) {
	msg := &model.ContactMessage{
		Name:    "Al",
		Email:   "al@x.com",
		Subject: "General",
		Message: "Hello there, this is a test.",
	}

	m := ContactConfirmationMessage("bot@site.com", msg)

	if m.To != "al@x.com" {
		t.Errorf("expected submitter recipient, got %q", m.To)
	}
	if m.ReplyTo != "" {
		t.Errorf("confirmation should not set reply-to, got %q", m.ReplyTo)
	}
	if m.Subject != "Thanks for reaching out!" {
		t.Errorf("unexpected subject %q", m.Subject)
	}
	if !strings.Contains(m.Text, "Thanks, Al!") {
		t.Errorf("text body missing greeting: %q", m.Text)
	}
}

func TestResumeOwnerMessage_IncludesRequestFields(t *testing.T) {
	req := &model.ResumeRequest{
		ID:        "req-123",
		Email:     "new@x.com",
		Timestamp: "2025-06-01T12:00:00Z",
		Status:    model.StatusPending,
		IPAddress: "203.0.113.7",
	}

	m := ResumeOwnerMessage("bot@site.com", "owner@site.com", req)

	if m.To != "owner@site.com" || m.ReplyTo != "new@x.com" {
		t.Errorf("bad addressing: to=%q replyTo=%q", m.To, m.ReplyTo)
	}
	for _, field := range []string{"new@x.com", "req-123", "2025-06-01T12:00:00Z", "203.0.113.7"} {
		if !strings.Contains(m.HTML, field) {
			t.Errorf("html body missing %q", field)
		}
		if !strings.Contains(m.Text, field) {
			t.Errorf("text body missing %q", field)
		}
	}
}

func TestResumeOwnerMessage_OmitsMissingIP(t *testing.T) {
	req := &model.ResumeRequest{
		ID:        "req-123",
		Email:     "new@x.com",
		Timestamp: "2025-06-01T12:00:00Z",
	}

	m := ResumeOwnerMessage("bot@site.com", "owner@site.com", req)

	if strings.Contains(m.HTML, "IP Address") {
		t.Error("html body should omit the IP row when no address was captured")
	}
}

func TestResumeConfirmationMessage(t *testing.T) {
	req := &model.ResumeRequest{ID: "req-123", Email: "new@x.com"}

	m := ResumeConfirmationMessage("bot@site.com", req)

	if m.To != "new@x.com" {
		t.Errorf("expected requester recipient, got %q", m.To)
	}
	if m.Subject != "Resume Request Received - Under Review" {
		t.Errorf("unexpected subject %q", m.Subject)
	}
	if !strings.Contains(m.Text, "within 24 hours") {
		t.Error("text body should set the 24-hour expectation")
	}
	if !strings.Contains(m.Text, "manually verify") {
		t.Error("text body should mention manual verification")
	}
}

func TestEscapeHTML(t *testing.T) {
	got := escapeHTML(`a&b<c>d"e'f`)
	want := "a&amp;b&lt;c&gt;d&quot;e&#039;f"
	if got != want {
		t.Errorf("escapeHTML: got %q, want %q", got, want)
	}
}
