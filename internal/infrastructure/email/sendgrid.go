package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends transactional email through SendGrid.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       zerolog.Logger
}

func NewSendGridMailer(apiKey, fromEmail, fromName string, log zerolog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// SendPasswordReset emails a reset link valid for a short window.
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	subject := "Reset your password"
	plain := fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your password. "+
			"Open the link below to choose a new one:\n\n%s\n\n"+
			"The link expires in 30 minutes. If you did not request a reset, ignore this email.",
		toName, resetURL,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received a request to reset your password. "+
			"<a href=%q>Choose a new password</a>.</p>"+
			"<p>The link expires in 30 minutes. If you did not request a reset, ignore this email.</p>",
		toName, resetURL,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send password reset email: sendgrid status %d", resp.StatusCode)
	}

	m.log.Info().Str("to", toEmail).Msg("password reset email sent")
	return nil
}
