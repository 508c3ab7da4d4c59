package ports

import (
	"context"

	"github.com/jobhunter/platform/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// FindByJobAndApplicant detects duplicate applications.
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	Update(ctx context.Context, a *domain.Application) error
	// CountByStatus aggregates the applicant's applications per status.
	CountByStatus(ctx context.Context, applicantID string) (map[domain.ApplicationStatus]int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// ApplyInput carries the data submitted with a job application.
type ApplyInput struct {
	JobID          string
	ApplicantID    string
	CoverLetter    string
	ResumeURL      string
	ExpectedSalary float64
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	// Get returns an application visible to the given actor: the applicant
	// themselves, the employer owning the job, or an admin.
	Get(ctx context.Context, id, actorID, actorRole string) (*domain.Application, error)
	MyApplications(ctx context.Context, applicantID string) ([]*domain.Application, error)
	// ForJob lists applications on a listing; restricted to the job's owner.
	ForJob(ctx context.Context, jobID, actorID, actorRole string) ([]*domain.Application, error)
	// UpdateStatus applies a status transition; the applicant may only
	// withdraw, the employer may move through the review pipeline.
	UpdateStatus(ctx context.Context, id, actorID, actorRole string, next domain.ApplicationStatus, notes string) (*domain.Application, error)
}
