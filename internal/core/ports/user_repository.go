package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// List returns a page of users and the total count. Role is an optional filter.
	List(ctx context.Context, role string, page, size int) ([]*domain.User, int64, error)
	Delete(ctx context.Context, id string) error
}
