// Package notify sends absence notifications to registered participants.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"veriface/pkg/email"
)

const (
	subject = "Conference attendance"
	body    = "We could not verify your attendance at the conference site. If you believe this is an error, please check in with the registration desk."
)

// sendFunc matches smtp.SendMail so tests can capture outgoing mail
// without a live server.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer delivers absence notices over SMTP.
type Mailer struct {
	addr   string
	sender string
	send   sendFunc
	logger *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used by the mailer.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mailer) {
		m.logger = logger
	}
}

// withSendFunc overrides the SMTP send function. Used by tests.
func withSendFunc(send sendFunc) Option {
	return func(m *Mailer) {
		m.send = send
	}
}

func New(addr, sender string, opts ...Option) (*Mailer, error) {
	if addr == "" {
		return nil, fmt.Errorf("smtp address is required")
	}
	if sender == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	m := &Mailer{
		addr:   addr,
		sender: sender,
		send:   smtp.SendMail,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Notify sends a single absence notice to the given address.
func (m *Mailer) Notify(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("recipient email is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.sender, email)
	if err := m.send(m.addr, nil, m.sender, []string{email}, msg); err != nil {
		return fmt.Errorf("send absence notice: %w", err)
	}

	m.logger.InfoContext(ctx, "absence notice sent", slog.String("recipient", email))
	return nil
}

func buildMessage(from, to string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", email.DisplayName(to))
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
