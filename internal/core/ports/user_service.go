package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update; nil fields are unchanged.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
}

// ListUsersResult is returned by the admin user listing.
type ListUsersResult struct {
	Items []*domain.User
	Page  Page
}

// UserService defines account operations beyond authentication.
type UserService interface {
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateMe(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// List pages through accounts, optionally filtered by role. Admin only;
	// the handler layer enforces the role.
	List(ctx context.Context, role string, page, size int) (*ListUsersResult, error)
	Deactivate(ctx context.Context, id string) error
}
