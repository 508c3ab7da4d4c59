package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

// ApplicationService implements the application pipeline between job seekers
// and employers.
type ApplicationService struct {
	apps   ports.ApplicationRepository
	jobs   ports.JobRepository
	logger zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, logger: logger}
}

func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, domain.ErrJobNotFound
	}

	existing, err := s.apps.FindByJobAndApplicant(ctx, input.JobID, input.ApplicantID)
	if err != nil && !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:          input.JobID,
		ApplicantID:    input.ApplicantID,
		CoverLetter:    input.CoverLetter,
		ResumeURL:      input.ResumeURL,
		ExpectedSalary: input.ExpectedSalary,
		Status:         domain.StatusPending,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", created.ID).Str("job_id", input.JobID).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) Get(ctx context.Context, id, actorID, actorRole string) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, app, actorID, actorRole); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) MyApplications(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	return s.apps.ListByApplicant(ctx, applicantID)
}

func (s *ApplicationService) ForJob(ctx context.Context, jobID, actorID, actorRole string) ([]*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if actorRole != domain.RoleAdmin && job.EmployerID != actorID {
		return nil, domain.ErrForbidden
	}
	return s.apps.ListByJob(ctx, jobID)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id, actorID, actorRole string, next domain.ApplicationStatus, notes string) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Applicants may only withdraw their own application; employers drive the
	// rest of the pipeline on jobs they own.
	switch {
	case actorRole == domain.RoleJobSeeker:
		if app.ApplicantID != actorID || next != domain.StatusWithdrawn {
			return nil, domain.ErrForbidden
		}
	case actorRole == domain.RoleEmployer:
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if job.EmployerID != actorID {
			return nil, domain.ErrForbidden
		}
	case actorRole == domain.RoleAdmin:
		// unrestricted
	default:
		return nil, domain.ErrForbidden
	}

	if !app.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	app.Status = next
	app.StatusHistory = append(app.StatusHistory, domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: now,
		Notes:     notes,
	})
	app.UpdatedAt = now

	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", app.ID).Str("status", string(next)).Msg("application status updated")
	return app, nil
}

func (s *ApplicationService) authorize(ctx context.Context, app *domain.Application, actorID, actorRole string) error {
	if actorRole == domain.RoleAdmin || app.ApplicantID == actorID {
		return nil
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if job.EmployerID != actorID {
		return domain.ErrForbidden
	}
	return nil
}
