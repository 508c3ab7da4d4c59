package ports

import "context"

// EmployerDashboard aggregates an employer's hiring activity.
type EmployerDashboard struct {
	TotalJobs          int64            `json:"total_jobs"`
	ActiveJobs         int64            `json:"active_jobs"`
	TotalApplications  int64            `json:"total_applications"`
	NewApplications    int64            `json:"new_applications"`
	TotalCandidates    int64            `json:"total_candidates"`
	RecentApplications []DashboardEntry `json:"recent_applications"`
}

// SeekerDashboard aggregates a job seeker's activity.
type SeekerDashboard struct {
	TotalApplications int64            `json:"total_applications"`
	ByStatus          map[string]int64 `json:"by_status"`
	RecentActivity    []DashboardEntry `json:"recent_activity"`
}

// AdminDashboard aggregates platform-wide totals.
type AdminDashboard struct {
	TotalUsers        int64 `json:"total_users"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalJobSeekers   int64 `json:"total_job_seekers"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

// DashboardEntry is a single row in a dashboard activity feed.
type DashboardEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// DashboardService computes the per-role dashboard aggregations.
type DashboardService interface {
	Employer(ctx context.Context, employerID string) (*EmployerDashboard, error)
	Seeker(ctx context.Context, applicantID string) (*SeekerDashboard, error)
	Admin(ctx context.Context) (*AdminDashboard, error)
}
