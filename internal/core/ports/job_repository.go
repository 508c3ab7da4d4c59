package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// SearchJobsFilter carries all query parameters for searching listings.
// Zero values mean "no filter".
type SearchJobsFilter struct {
	Query           string // partial match on title, description or company name
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryMin       float64
	SalaryMax       float64
	RemoteWork      *bool
	VisaSponsorship *bool
	Page            int // 1-based
	Size            int // capped at 100 by the service
}

// JobRepository defines persistence operations for job listings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
	// List returns a page of active listings newest-first and the total count.
	List(ctx context.Context, page, size int) ([]*domain.Job, int64, error)
	// ListByEmployer returns all listings owned by employerID, newest-first.
	ListByEmployer(ctx context.Context, employerID string, activeOnly bool) ([]*domain.Job, error)
	Featured(ctx context.Context, limit int) ([]*domain.Job, error)
	Search(ctx context.Context, filter SearchJobsFilter) ([]*domain.Job, int64, error)
	// IncrementViews bumps the view counter without touching updated_at.
	IncrementViews(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
}
