package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// JobService implements use-case operations for job listings.
type JobService struct {
	repo     ports.JobRepository
	views    ViewRecorder
	featured FeaturedCache
	logger   zerolog.Logger
}

// ViewRecorder asynchronously records listing views. The read path must not
// block on the counter write.
type ViewRecorder interface {
	Record(jobID string)
}

// FeaturedCache holds the featured-listings result between reads. A cache
// failure must degrade to a miss, never an error.
type FeaturedCache interface {
	Get(ctx context.Context, limit int) ([]*domain.Job, bool)
	Set(ctx context.Context, limit int, jobs []*domain.Job)
	Invalidate(ctx context.Context)
}

func NewJobService(repo ports.JobRepository, views ViewRecorder, featured FeaturedCache, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, views: views, featured: featured, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	now := time.Now().UTC()
	job := &domain.Job{
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		CompanyName:     input.CompanyName,
		Department:      input.Department,
		JobType:         domain.JobType(input.JobType),
		ExperienceLevel: domain.ExperienceLevel(input.ExperienceLevel),
		SalaryMin:       input.SalaryMin,
		SalaryMax:       input.SalaryMax,
		RequiredSkills:  input.RequiredSkills,
		Benefits:        input.Benefits,
		RemoteWork:      input.RemoteWork,
		VisaSponsorship: input.VisaSponsorship,
		IsActive:        true,
		EmployerID:      input.EmployerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("job_id", created.ID).Str("employer_id", input.EmployerID).Msg("job posted")
	return created, nil
}

func (s *JobService) invalidateFeatured(ctx context.Context) {
	if s.featured != nil {
		s.featured.Invalidate(ctx)
	}
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.views != nil {
		s.views.Record(job.ID)
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id, actorID string, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != actorID {
		return nil, domain.ErrForbidden
	}

	applyJobUpdate(job, input)
	job.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id, actorID string) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job.EmployerID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

func (s *JobService) List(ctx context.Context, page, size int) (*ports.ListJobsResult, error) {
	page, size = clampPage(page, size)

	items, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.ListJobsResult{Items: items, Page: makePage(total, page, size)}, nil
}

func (s *JobService) Featured(ctx context.Context, limit int) ([]*domain.Job, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if s.featured != nil {
		if jobs, ok := s.featured.Get(ctx, limit); ok {
			return jobs, nil
		}
	}

	jobs, err := s.repo.Featured(ctx, limit)
	if err != nil {
		return nil, err
	}
	if s.featured != nil {
		s.featured.Set(ctx, limit, jobs)
	}
	return jobs, nil
}

func (s *JobService) Search(ctx context.Context, filter ports.SearchJobsFilter) (*ports.ListJobsResult, error) {
	filter.Page, filter.Size = clampPage(filter.Page, filter.Size)

	items, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListJobsResult{Items: items, Page: makePage(total, filter.Page, filter.Size)}, nil
}

func applyJobUpdate(job *domain.Job, in ports.UpdateJobInput) {
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Department != nil {
		job.Department = *in.Department
	}
	if in.JobType != nil {
		job.JobType = domain.JobType(*in.JobType)
	}
	if in.ExperienceLevel != nil {
		job.ExperienceLevel = domain.ExperienceLevel(*in.ExperienceLevel)
	}
	if in.SalaryMin != nil {
		job.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		job.SalaryMax = *in.SalaryMax
	}
	if in.RequiredSkills != nil {
		job.RequiredSkills = in.RequiredSkills
	}
	if in.Benefits != nil {
		job.Benefits = in.Benefits
	}
	if in.RemoteWork != nil {
		job.RemoteWork = *in.RemoteWork
	}
	if in.VisaSponsorship != nil {
		job.VisaSponsorship = *in.VisaSponsorship
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func makePage(total int64, page, size int) ports.Page {
	pages := int((total + int64(size) - 1) / int64(size))
	return ports.Page{Total: total, Page: page, Size: size, Pages: pages}
}
