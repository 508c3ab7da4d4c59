package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const familyJobs = "jobs"

// JobsClient reads and mutates job listings. List reads are cached until the
// next mutation through this client.
type JobsClient struct {
	c *Client
}

// SearchFilter narrows a job search. Zero values mean "no filter".
type SearchFilter struct {
	Query           string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryMin       float64
	SalaryMax       float64
	RemoteWork      *bool
	VisaSponsorship *bool
	Page            int
	Size            int
}

// CreateJobInput is the payload for posting a listing.
type CreateJobInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	CompanyName     string   `json:"company_name,omitempty"`
	Department      string   `json:"department,omitempty"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SalaryMin       float64  `json:"salary_min,omitempty"`
	SalaryMax       float64  `json:"salary_max,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	RemoteWork      bool     `json:"remote_work"`
	VisaSponsorship bool     `json:"visa_sponsorship"`
}

// UpdateJobInput is a partial update; nil fields stay unchanged.
type UpdateJobInput struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Department      *string  `json:"department,omitempty"`
	JobType         *string  `json:"job_type,omitempty"`
	ExperienceLevel *string  `json:"experience_level,omitempty"`
	SalaryMin       *float64 `json:"salary_min,omitempty"`
	SalaryMax       *float64 `json:"salary_max,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	RemoteWork      *bool    `json:"remote_work,omitempty"`
	VisaSponsorship *bool    `json:"visa_sponsorship,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// List returns one page of active listings.
func (j *JobsClient) List(ctx context.Context, page, size int) (*JobList, error) {
	query := pagingQuery(page, size)
	key := cacheKey(familyJobs, query)
	if cached, ok := j.c.cache.get(key); ok {
		return cached.(*JobList), nil
	}

	var list JobList
	if err := j.c.do(ctx, http.MethodGet, "/jobs", query, nil, nil, &list); err != nil {
		return nil, err
	}
	j.c.cache.put(key, &list)
	return &list, nil
}

// Search returns listings matching filter.
func (j *JobsClient) Search(ctx context.Context, filter SearchFilter) (*JobList, error) {
	query := searchQuery(filter)
	key := cacheKey(familyJobs, query)
	if cached, ok := j.c.cache.get(key); ok {
		return cached.(*JobList), nil
	}

	var list JobList
	if err := j.c.do(ctx, http.MethodGet, "/jobs/search", query, nil, nil, &list); err != nil {
		return nil, err
	}
	j.c.cache.put(key, &list)
	return &list, nil
}

// Featured returns up to limit featured listings. Not cached: the set is
// small and curated server-side.
func (j *JobsClient) Featured(ctx context.Context, limit int) ([]Job, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var jobs []Job
	if err := j.c.do(ctx, http.MethodGet, "/jobs/featured", query, nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get fetches one listing by ID.
func (j *JobsClient) Get(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := j.c.do(ctx, http.MethodGet, "/jobs/"+id, nil, nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Create posts a listing and invalidates cached job lists.
func (j *JobsClient) Create(ctx context.Context, input CreateJobInput) (*Job, error) {
	var job Job
	if err := j.c.do(ctx, http.MethodPost, "/jobs", nil, nil, input, &job); err != nil {
		return nil, err
	}
	j.c.cache.invalidate(familyJobs)
	return &job, nil
}

// Update modifies a listing and invalidates cached job lists.
func (j *JobsClient) Update(ctx context.Context, id string, input UpdateJobInput) (*Job, error) {
	var job Job
	if err := j.c.do(ctx, http.MethodPut, "/jobs/"+id, nil, nil, input, &job); err != nil {
		return nil, err
	}
	j.c.cache.invalidate(familyJobs)
	return &job, nil
}

// Delete removes a listing and invalidates cached job lists.
func (j *JobsClient) Delete(ctx context.Context, id string) error {
	if err := j.c.do(ctx, http.MethodDelete, "/jobs/"+id, nil, nil, nil, nil); err != nil {
		return err
	}
	j.c.cache.invalidate(familyJobs)
	return nil
}

func pagingQuery(page, size int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		query.Set("size", strconv.Itoa(size))
	}
	return query
}

func searchQuery(f SearchFilter) url.Values {
	query := pagingQuery(f.Page, f.Size)
	if f.Query != "" {
		query.Set("query", f.Query)
	}
	if f.Location != "" {
		query.Set("location", f.Location)
	}
	if f.JobType != "" {
		query.Set("job_type", f.JobType)
	}
	if f.ExperienceLevel != "" {
		query.Set("experience_level", f.ExperienceLevel)
	}
	if f.SalaryMin > 0 {
		query.Set("salary_min", strconv.FormatFloat(f.SalaryMin, 'f', -1, 64))
	}
	if f.SalaryMax > 0 {
		query.Set("salary_max", strconv.FormatFloat(f.SalaryMax, 'f', -1, 64))
	}
	if f.RemoteWork != nil {
		query.Set("remote_work", strconv.FormatBool(*f.RemoteWork))
	}
	if f.VisaSponsorship != nil {
		query.Set("visa_sponsorship", strconv.FormatBool(*f.VisaSponsorship))
	}
	return query
}
