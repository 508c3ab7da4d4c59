package client

import (
	"context"
	"net/http"
)

const familyUsers = "users"

// UsersClient reads and mutates accounts.
type UsersClient struct {
	c *Client
}

// UpdateProfileInput is a partial profile update; nil fields stay unchanged.
type UpdateProfileInput struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

// Me returns the authenticated user's profile.
func (u *UsersClient) Me(ctx context.Context) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodGet, "/users/me", nil, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe edits the authenticated user's profile and invalidates cached
// user lists.
func (u *UsersClient) UpdateMe(ctx context.Context, input UpdateProfileInput) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodPut, "/users/me", nil, nil, input, &user); err != nil {
		return nil, err
	}
	u.c.cache.invalidate(familyUsers)
	return &user, nil
}

// Get fetches a user by ID. Admins may fetch anyone, others only themselves.
func (u *UsersClient) Get(ctx context.Context, id string) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List pages through accounts, optionally filtered by role. Admin only.
func (u *UsersClient) List(ctx context.Context, role string, page, size int) (*UserList, error) {
	query := pagingQuery(page, size)
	if role != "" {
		query.Set("role", role)
	}
	key := cacheKey(familyUsers, query)
	if cached, ok := u.c.cache.get(key); ok {
		return cached.(*UserList), nil
	}

	var list UserList
	if err := u.c.do(ctx, http.MethodGet, "/users", query, nil, nil, &list); err != nil {
		return nil, err
	}
	u.c.cache.put(key, &list)
	return &list, nil
}

// Deactivate disables an account and invalidates cached user lists. Admin
// only.
func (u *UsersClient) Deactivate(ctx context.Context, id string) error {
	if err := u.c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil, nil); err != nil {
		return err
	}
	u.c.cache.invalidate(familyUsers)
	return nil
}
