package email

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes emails to the log instead of sending them. Used in
// development when no SendGrid key is configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	m.log.Info().
		Str("to", toEmail).
		Str("name", toName).
		Str("reset_url", resetURL).
		Msg("password reset email (not sent)")
	return nil
}
