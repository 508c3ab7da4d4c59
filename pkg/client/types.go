// Package client is the Go SDK for the JobHunter API. It wraps a persisted
// session, an authenticated HTTP layer and per-resource data clients with
// cached list reads.
package client

import "time"

// Roles a session can carry.
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
)

// User is the account payload returned by the API.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Name returns the display name, falling back to "First Last".
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.FirstName + " " + u.LastName
}

// Job is a listing as served by the API.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	CompanyName      string    `json:"company_name,omitempty"`
	Department       string    `json:"department,omitempty"`
	JobType          string    `json:"job_type"`
	ExperienceLevel  string    `json:"experience_level,omitempty"`
	SalaryMin        float64   `json:"salary_min,omitempty"`
	SalaryMax        float64   `json:"salary_max,omitempty"`
	RequiredSkills   []string  `json:"required_skills"`
	Benefits         []string  `json:"benefits"`
	RemoteWork       bool      `json:"remote_work"`
	VisaSponsorship  bool      `json:"visa_sponsorship"`
	IsFeatured       bool      `json:"is_featured"`
	IsActive         bool      `json:"is_active"`
	EmployerID       string    `json:"employer_id"`
	ApplicationCount int       `json:"application_count"`
	ViewCount        int       `json:"view_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// Application links the authenticated seeker to a listing.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	ApplicantID    string    `json:"applicant_id"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	ResumeURL      string    `json:"resume_url,omitempty"`
	ExpectedSalary float64   `json:"expected_salary,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Skill is a taxonomy entry.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Benefit is a taxonomy entry.
type Benefit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Page is the pagination summary attached to list results. Zero values are
// safe: an empty response decodes to {0, 0, 0, 0}.
type Page struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// JobList is a page of listings.
type JobList struct {
	Items []Job `json:"items"`
	Page
}

// UserList is a page of accounts.
type UserList struct {
	Items []User `json:"items"`
	Page
}
