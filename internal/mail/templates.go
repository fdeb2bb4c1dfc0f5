package mail

import (
	"fmt"
	"strings"

	"github.com/jeevanantham/portfolio/backend/internal/model"
)

// OwnerName is the display name used on messages sent to submitters.
const OwnerName = "Jeevanantham Mahalingam"

// htmlEscaper escapes the five characters that matter for markup injection.
// Applied to every user-supplied value interpolated into an HTML body.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// ContactOwnerMessage builds the owner notification for a contact submission.
// Reply-To is the submitter so the owner can answer directly.
func ContactOwnerMessage(from, owner string, msg *model.ContactMessage) Message {
	text := fmt.Sprintf(
		"New contact submission\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)

	rows := fieldRow("Name", msg.Name) +
		fieldRow("Email", msg.Email) +
		fieldRow("Subject", msg.Subject) +
		fieldRow("Message", msg.Message)
	html := emailShell("New contact",
		"Portfolio contact submission",
		"You received a new message via the website form.",
		rows,
		"Tip: reply directly to this email to respond to the sender.")

	return Message{
		From:     from,
		FromName: "Portfolio Contact",
		To:       owner,
		ReplyTo:  msg.Email,
		Subject:  "New contact: " + msg.Subject,
		Text:     text,
		HTML:     html,
	}
}

// ContactConfirmationMessage builds the receipt confirmation for the submitter.
func ContactConfirmationMessage(from string, msg *model.ContactMessage) Message {
	text := fmt.Sprintf(
		"Thanks, %s! We received your message and will get back to you shortly.",
		msg.Name,
	)
	html := emailShell("Message received",
		fmt.Sprintf("Thanks, %s! We received your message.", escapeHTML(msg.Name)),
		"I'll get back to you shortly. In the meantime, feel free to reply to this email with any additional details.",
		"",
		"Sent from my portfolio website")

	return Message{
		From:     from,
		FromName: OwnerName,
		To:       msg.Email,
		Subject:  "Thanks for reaching out!",
		Text:     text,
		HTML:     html,
	}
}

// ResumeOwnerMessage builds the owner notification for a resume request.
func ResumeOwnerMessage(from, owner string, req *model.ResumeRequest) Message {
	text := fmt.Sprintf(
		"New resume request received\n\nEmail: %s\nRequest ID: %s\nTimestamp: %s\nIP: %s\n\n"+
			"Please verify this email and send your resume manually within 24 hours.",
		req.Email, req.ID, req.Timestamp, req.IPAddress,
	)

	rows := fieldRow("Email", req.Email) +
		fieldRow("Request ID", req.ID) +
		fieldRow("Timestamp", req.Timestamp)
	if req.IPAddress != "" {
		rows += fieldRow("IP Address", req.IPAddress)
	}
	html := emailShell("Resume request",
		"New Resume Request",
		"Someone has requested your resume through the portfolio website.",
		rows,
		"Action required: verify this email address and send your resume manually within 24 hours. Reply directly to this email to respond to the requester.")

	return Message{
		From:     from,
		FromName: "Portfolio Resume Request",
		To:       owner,
		ReplyTo:  req.Email,
		Subject:  "New resume request from " + req.Email,
		Text:     text,
		HTML:     html,
	}
}

// ResumeConfirmationMessage builds the receipt confirmation for the requester.
func ResumeConfirmationMessage(from string, req *model.ResumeRequest) Message {
	text := "Resume Request Received!\n\n" +
		"Thank you for your interest in my work.\n\n" +
		"What happens next:\n" +
		"- Your request is currently under review\n" +
		"- I will manually verify your email address\n" +
		"- You will receive my resume within 24 hours\n" +
		"- Please be patient while I process your request\n\n" +
		"If you have any questions, feel free to reply to this email.\n\n" +
		"Best regards,\n" + OwnerName

	steps := `<ul style="margin:0; padding-left:20px; color:#cbd5e1; line-height:1.6;">
<li>Your request is currently <strong>under review</strong></li>
<li>I will <strong>manually verify</strong> your email address</li>
<li>You will receive my resume within <strong>24 hours</strong></li>
<li>Please be patient while I process your request</li>
</ul>`
	html := emailShell("Request submitted",
		"Resume Request Received!",
		"Thank you for your interest in my work.",
		steps,
		"Best regards, "+OwnerName)

	return Message{
		From:     from,
		FromName: OwnerName,
		To:       req.Email,
		Subject:  "Resume Request Received - Under Review",
		Text:     text,
		HTML:     html,
	}
}

// fieldRow renders one label/value row of the owner notification table.
// The value is escaped here, so callers pass raw input.
func fieldRow(label, value string) string {
	return fmt.Sprintf(`<tr>
<td style="width:140px; background:#0f172a; color:#94a3b8; padding:10px 12px;">%s</td>
<td style="background:#0b1220; color:#e2e8f0; padding:10px 12px; white-space:pre-wrap;">%s</td>
</tr>`, label, escapeHTML(value))
}

// emailShell wraps pre-escaped body fragments in the shared dark layout used
// by all four notification emails. heading and lead must already be escaped
// or constant; rows is raw HTML built by fieldRow or a constant fragment.
func emailShell(badge, heading, lead, rows, footer string) string {
	var body strings.Builder
	fmt.Fprintf(&body, `<div style="display:inline-block; padding:10px 14px; border-radius:9999px; background:linear-gradient(90deg,#2563eb,#7c3aed); color:#fff; font-weight:600;">%s</div>`, badge)
	fmt.Fprintf(&body, `<h1 style="margin:16px 0 4px; font-size:22px; color:#fff;">%s</h1>`, heading)
	fmt.Fprintf(&body, `<p style="margin:0 0 16px; color:#cbd5e1; font-size:14px;">%s</p>`, lead)
	if rows != "" {
		fmt.Fprintf(&body, `<table width="100%%" cellpadding="0" cellspacing="0" style="border-collapse:separate; border-spacing:0 8px; text-align:left;">%s</table>`, rows)
	}
	fmt.Fprintf(&body, `<p style="margin:20px 0 0; color:#94a3b8; font-size:12px;">%s</p>`, footer)

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta name="viewport" content="width=device-width, initial-scale=1" />
<meta charset="utf-8" />
</head>
<body style="margin:0; padding:0; background:#0b1220; color:#e2e8f0; font-family: Inter, ui-sans-serif, system-ui;">
<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="padding:32px 0;">
<tr><td align="center">
<table width="640" cellpadding="0" cellspacing="0" style="max-width:640px; background:rgba(255,255,255,0.04); border:1px solid rgba(255,255,255,0.08); border-radius:16px;">
<tr><td style="padding:24px; text-align:center;">
%s
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, body.String())
}
