package mail

import "context"

// Mailer delivers a single email. Implementations: SMTPMailer for real
// delivery, LogMailer for demo mode, MemoryMailer for tests.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
