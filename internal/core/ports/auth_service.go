package ports

import (
	"context"
	"time"

	"github.com/jobhunter/platform/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DisplayName string
	Role        string
}

// AuthService implements registration, login and the password-reset flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login returns a signed access token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Refresh issues a fresh token for the already-authenticated user.
	Refresh(ctx context.Context, userID string) (string, *domain.User, error)
	// ForgotPassword issues a reset token and emails it. It succeeds even when
	// the email is unknown so callers cannot probe for accounts.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetTokenStore holds short-lived password-reset tokens.
type ResetTokenStore interface {
	// Save stores token → userID with the given TTL.
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the userID for token and deletes it; a missing token
	// yields domain.ErrResetTokenInvalid.
	Consume(ctx context.Context, token string) (string, error)
}

// Mailer sends transactional email.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}
