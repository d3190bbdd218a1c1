package mail

import (
	"context"
	"log/slog"
)

// LogMailer logs the email instead of sending it. Demo mode only: it logs
// recipient addresses and full message contents, which includes the OTP.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.logger.Info("demo email delivery",
		"to", to,
		"subject", subject,
		"body", htmlBody,
	)
	return nil
}
