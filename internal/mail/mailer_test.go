package mail

import (
	"context"
	"errors"
	"testing"
)

func TestSMTPMailer_MissingCredentials(t *testing.T) {
	m := NewSMTPMailer("smtp.gmail.com", 465, "", "")

	err := m.Send(context.Background(), Message{To: "a@x.com", Subject: "hi", Text: "hi"})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestSMTPMailer_MissingPasswordOnly(t *testing.T) {
	m := NewSMTPMailer("smtp.gmail.com", 465, "user@gmail.com", "")

	err := m.Send(context.Background(), Message{To: "a@x.com"})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestNewGmailMailer_PasswordFallback(t *testing.T) {
	t.Setenv("GMAIL_USER", "user@gmail.com")
	t.Setenv("GMAIL_APP_PASSWORD", "")
	t.Setenv("GMAIL_PASS", "legacy-secret")

	m := NewGmailMailer()
	if m.pass != "legacy-secret" {
		t.Errorf("expected GMAIL_PASS fallback, got %q", m.pass)
	}

	t.Setenv("GMAIL_APP_PASSWORD", "app-secret")
	m = NewGmailMailer()
	if m.pass != "app-secret" {
		t.Errorf("expected GMAIL_APP_PASSWORD to win, got %q", m.pass)
	}
}
