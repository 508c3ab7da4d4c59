package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInactiveUser = errors.New("inactive user")
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")
var ErrWeakPassword = errors.New("password must be at least 8 characters")

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployer || role == RoleJobSeeker
}

// User models a registered account. Employers post jobs, job seekers apply,
// admins see platform-wide analytics.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	DisplayName  string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Name returns the display name, falling back to "First Last".
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.FirstName + " " + u.LastName
}
