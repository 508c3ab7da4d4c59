package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new listing.
type CreateJobInput struct {
	Title           string
	Description     string
	Location        string
	CompanyName     string
	Department      string
	JobType         string
	ExperienceLevel string
	SalaryMin       float64
	SalaryMax       float64
	RequiredSkills  []string
	Benefits        []string
	RemoteWork      bool
	VisaSponsorship bool
	EmployerID      string
}

// UpdateJobInput carries a partial update; nil fields are left unchanged.
type UpdateJobInput struct {
	Title           *string
	Description     *string
	Location        *string
	Department      *string
	JobType         *string
	ExperienceLevel *string
	SalaryMin       *float64
	SalaryMax       *float64
	RequiredSkills  []string
	Benefits        []string
	RemoteWork      *bool
	VisaSponsorship *bool
	IsActive        *bool
}

// Page is the pagination summary attached to list results.
type Page struct {
	Total int64
	Page  int
	Size  int
	Pages int
}

// ListJobsResult is returned by List and Search.
type ListJobsResult struct {
	Items []*domain.Job
	Page  Page
}

// JobService defines use-case operations for job listings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	// Get returns the listing and records a view.
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Update modifies a listing; only the owning employer may do so.
	Update(ctx context.Context, id, actorID string, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id, actorID string) error
	List(ctx context.Context, page, size int) (*ListJobsResult, error)
	Featured(ctx context.Context, limit int) ([]*domain.Job, error)
	Search(ctx context.Context, filter SearchJobsFilter) (*ListJobsResult, error)
}
