package mailer

import (
	"context"
	"fmt"

	"github.com/healthyfi/healthyfi-be/internal/config"
	"github.com/wneessen/go-mail"
)

// Sender delivers a single plain-text email. Implemented by SMTP for real
// delivery and by test doubles elsewhere.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTP sends mail through an authenticated, STARTTLS-upgraded relay.
type SMTP struct {
	client *mail.Client
	from   string
}

// NewSMTP builds a relay client from configuration. The connection is
// dialed per send, not held open.
func NewSMTP(cfg *config.Config) (*SMTP, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure mail client: %w", err)
	}
	return &SMTP{client: client, from: cfg.MailFrom}, nil
}

// Send composes and delivers one message in a single synchronous attempt.
func (s *SMTP) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return s.client.DialAndSendWithContext(ctx, msg)
}
