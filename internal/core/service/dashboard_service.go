package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

const (
	recentWindow  = 7 * 24 * time.Hour
	recentEntries = 5
)

// DashboardService computes the per-role dashboard aggregations.
type DashboardService struct {
	users  ports.UserRepository
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewDashboardService(users ports.UserRepository, jobs ports.JobRepository, apps ports.ApplicationRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, jobs: jobs, apps: apps, logger: logger}
}

func (s *DashboardService) Employer(ctx context.Context, employerID string) (*ports.EmployerDashboard, error) {
	jobs, err := s.jobs.ListByEmployer(ctx, employerID, false)
	if err != nil {
		return nil, err
	}

	dash := &ports.EmployerDashboard{
		TotalJobs:          int64(len(jobs)),
		RecentApplications: []ports.DashboardEntry{},
	}

	cutoff := time.Now().UTC().Add(-recentWindow)
	candidates := make(map[string]struct{})
	var all []*domain.Application

	for _, job := range jobs {
		if job.IsActive {
			dash.ActiveJobs++
		}
		apps, err := s.apps.ListByJob(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		for _, app := range apps {
			dash.TotalApplications++
			candidates[app.ApplicantID] = struct{}{}
			if app.CreatedAt.After(cutoff) {
				dash.NewApplications++
			}
		}
		all = append(all, apps...)
	}
	dash.TotalCandidates = int64(len(candidates))

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	titles := jobTitles(jobs)
	for _, app := range all {
		if len(dash.RecentApplications) == recentEntries {
			break
		}
		dash.RecentApplications = append(dash.RecentApplications, ports.DashboardEntry{
			ID:     app.ID,
			Title:  titles[app.JobID],
			Status: string(app.Status),
			Date:   app.CreatedAt.Format(time.RFC3339),
		})
	}

	return dash, nil
}

func (s *DashboardService) Seeker(ctx context.Context, applicantID string) (*ports.SeekerDashboard, error) {
	byStatus, err := s.apps.CountByStatus(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	dash := &ports.SeekerDashboard{
		ByStatus:       make(map[string]int64, len(byStatus)),
		RecentActivity: []ports.DashboardEntry{},
	}
	for status, n := range byStatus {
		dash.ByStatus[string(status)] = n
		dash.TotalApplications += n
	}

	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].UpdatedAt.After(apps[j].UpdatedAt) })
	for _, app := range apps {
		if len(dash.RecentActivity) == recentEntries {
			break
		}
		entry := ports.DashboardEntry{
			ID:     app.ID,
			Status: string(app.Status),
			Date:   app.UpdatedAt.Format(time.RFC3339),
		}
		if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
			entry.Title = job.Title
			entry.Subtitle = job.CompanyName
		}
		dash.RecentActivity = append(dash.RecentActivity, entry)
	}

	return dash, nil
}

func (s *DashboardService) Admin(ctx context.Context) (*ports.AdminDashboard, error) {
	dash := &ports.AdminDashboard{}

	var err error
	if _, dash.TotalUsers, err = s.users.List(ctx, "", 1, 1); err != nil {
		return nil, err
	}
	if _, dash.TotalEmployers, err = s.users.List(ctx, domain.RoleEmployer, 1, 1); err != nil {
		return nil, err
	}
	if _, dash.TotalJobSeekers, err = s.users.List(ctx, domain.RoleJobSeeker, 1, 1); err != nil {
		return nil, err
	}
	if dash.TotalJobs, err = s.jobs.CountAll(ctx); err != nil {
		return nil, err
	}
	if dash.TotalApplications, err = s.apps.CountAll(ctx); err != nil {
		return nil, err
	}

	return dash, nil
}

func jobTitles(jobs []*domain.Job) map[string]string {
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}
	return titles
}
