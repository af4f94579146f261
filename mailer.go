package mailbridge

import (
	"context"
	"errors"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromEmail string `env:"MAILER_FROM_EMAIL"`
	FromName  string `env:"MAILER_FROM_NAME"`
}

// Mailer is a thin front over a Sender that validates messages and
// applies the configured default sender address.
type Mailer struct {
	sender Sender
	config Config
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config) *Mailer {
	return &Mailer{
		sender: sender,
		config: cfg,
	}
}

// Send validates the email, fills in the default From address when none
// is set, and delegates delivery to the underlying Sender.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}

	if email.From.Email == "" {
		if m.config.FromEmail == "" {
			return ErrNoSender
		}
		// Copy before mutating so the caller's value stays untouched.
		withFrom := *email
		withFrom.From = Address{Name: m.config.FromName, Email: m.config.FromEmail}
		email = &withFrom
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}
