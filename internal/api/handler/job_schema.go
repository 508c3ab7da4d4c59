package handler

import (
	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

// --- Request types ---

type createJobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	CompanyName     string   `json:"company_name"`
	Department      string   `json:"department"`
	JobType         string   `json:"job_type" validate:"required,oneof=full-time part-time contract internship temporary"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,oneof=entry mid senior lead executive"`
	SalaryMin       float64  `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       float64  `json:"salary_max" validate:"omitempty,gte=0"`
	RequiredSkills  []string `json:"required_skills"`
	Benefits        []string `json:"benefits"`
	RemoteWork      bool     `json:"remote_work"`
	VisaSponsorship bool     `json:"visa_sponsorship"`
}

type updateJobRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Department      *string  `json:"department"`
	JobType         *string  `json:"job_type" validate:"omitempty,oneof=full-time part-time contract internship temporary"`
	ExperienceLevel *string  `json:"experience_level" validate:"omitempty,oneof=entry mid senior lead executive"`
	SalaryMin       *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64 `json:"salary_max" validate:"omitempty,gte=0"`
	RequiredSkills  []string `json:"required_skills"`
	Benefits        []string `json:"benefits"`
	RemoteWork      *bool    `json:"remote_work"`
	VisaSponsorship *bool    `json:"visa_sponsorship"`
	IsActive        *bool    `json:"is_active"`
}

type searchJobsQuery struct {
	Query           string  `query:"query"`
	Location        string  `query:"location"`
	JobType         string  `query:"job_type" validate:"omitempty,oneof=full-time part-time contract internship temporary"`
	ExperienceLevel string  `query:"experience_level" validate:"omitempty,oneof=entry mid senior lead executive"`
	SalaryMin       float64 `query:"salary_min"`
	SalaryMax       float64 `query:"salary_max"`
	RemoteWork      *bool   `query:"remote_work"`
	VisaSponsorship *bool   `query:"visa_sponsorship"`
	Page            int     `query:"page"`
	Size            int     `query:"size"`
}

// --- Response types ---

// paginatedJobsResponse is the envelope for paged listings.
type paginatedJobsResponse struct {
	Items []*domain.Job `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Pages int           `json:"pages"`
}

type jobOptionsResponse struct {
	JobTypes         []domain.JobType         `json:"job_types"`
	ExperienceLevels []domain.ExperienceLevel `json:"experience_levels"`
	SalaryRanges     []domain.SalaryRange     `json:"salary_ranges"`
}

// --- Mapping ---

func toCreateJobInput(req createJobRequest, employerID string) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		CompanyName:     req.CompanyName,
		Department:      req.Department,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		RequiredSkills:  req.RequiredSkills,
		Benefits:        req.Benefits,
		RemoteWork:      req.RemoteWork,
		VisaSponsorship: req.VisaSponsorship,
		EmployerID:      employerID,
	}
}

func toUpdateJobInput(req updateJobRequest) ports.UpdateJobInput {
	return ports.UpdateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Department:      req.Department,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		RequiredSkills:  req.RequiredSkills,
		Benefits:        req.Benefits,
		RemoteWork:      req.RemoteWork,
		VisaSponsorship: req.VisaSponsorship,
		IsActive:        req.IsActive,
	}
}

func toSearchFilter(q searchJobsQuery) ports.SearchJobsFilter {
	return ports.SearchJobsFilter{
		Query:           q.Query,
		Location:        q.Location,
		JobType:         q.JobType,
		ExperienceLevel: q.ExperienceLevel,
		SalaryMin:       q.SalaryMin,
		SalaryMax:       q.SalaryMax,
		RemoteWork:      q.RemoteWork,
		VisaSponsorship: q.VisaSponsorship,
		Page:            q.Page,
		Size:            q.Size,
	}
}

func toPaginatedJobs(result *ports.ListJobsResult) paginatedJobsResponse {
	return paginatedJobsResponse{
		Items: result.Items,
		Total: result.Page.Total,
		Page:  result.Page.Page,
		Size:  result.Page.Size,
		Pages: result.Page.Pages,
	}
}
