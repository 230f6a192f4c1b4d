// Package mailer delivers transactional mail such as activation links and
// contact-form submissions.
package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends a single plain-text message
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP relay
type SMTPMailer struct {
	addr     string
	from     string
	username string
	password string
}

// NewSMTPMailer creates a new SMTPMailer. addr is host:port; username may
// be empty for an unauthenticated relay.
func NewSMTPMailer(addr, from, username, password string) *SMTPMailer {
	return &SMTPMailer{
		addr:     addr,
		from:     from,
		username: username,
		password: password,
	}
}

// Send delivers the message to a single recipient
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		host := m.addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.username, m.password, host)
	}

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes messages to the process log instead of delivering them.
// Used when no SMTP relay is configured.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	log.Printf("mail (not delivered): to=%s subject=%q body=%q", to, subject, body)
	return nil
}
