package domain

import "context"

type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single message. Implementations are best-effort;
// the checkout flow never fails because of a mailer error.
type Mailer interface {
	Send(ctx context.Context, email Email) error
	Configured() bool
}
