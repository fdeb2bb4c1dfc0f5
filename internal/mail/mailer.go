package mail

import (
	"context"
	"errors"
	"fmt"
	"os"

	gomail "gopkg.in/gomail.v2"
)

// ErrMissingCredentials signals that the SMTP account is not configured.
// It is a configuration error, distinct from a failed send.
var ErrMissingCredentials = errors.New("missing Gmail SMTP credentials: set GMAIL_USER and GMAIL_APP_PASSWORD in env")

// Message is one outbound email. Text carries the raw (unescaped) body;
// HTML carries the rendered body with all user input escaped.
type Message struct {
	From     string
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Mailer hands a message to an outbound transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends messages over implicit-TLS SMTP.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
}

// NewSMTPMailer creates a mailer for the given SMTP account. Credentials are
// checked at send time, not here, so an unconfigured deployment still boots.
func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass}
}

// NewGmailMailer creates an SMTPMailer for smtp.gmail.com:465 using the
// GMAIL_USER and GMAIL_APP_PASSWORD (or legacy GMAIL_PASS) env variables.
func NewGmailMailer() *SMTPMailer {
	pass := os.Getenv("GMAIL_APP_PASSWORD")
	if pass == "" {
		pass = os.Getenv("GMAIL_PASS")
	}
	return NewSMTPMailer("smtp.gmail.com", 465, os.Getenv("GMAIL_USER"), pass)
}

// Ensure SMTPMailer implements Mailer at compile time.
var _ Mailer = (*SMTPMailer)(nil)

// User returns the account address messages are sent from.
func (m *SMTPMailer) User() string { return m.user }

// Send delivers one message. It fails fast with ErrMissingCredentials before
// dialing if the account is not configured. gomail has no context support, so
// ctx is not consulted once the dial starts.
func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	if m.user == "" || m.pass == "" {
		return ErrMissingCredentials
	}

	gm := gomail.NewMessage()
	if msg.FromName != "" {
		gm.SetHeader("From", gm.FormatAddress(msg.From, msg.FromName))
	} else {
		gm.SetHeader("From", msg.From)
	}
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	dialer.SSL = true

	if err := dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}
