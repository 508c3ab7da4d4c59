package domain

import (
	"errors"
	"time"
)

// JobType enumerates the employment arrangements a listing can offer.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

// ExperienceLevel enumerates seniority bands used by search filters.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

// JobTypes lists all job types in display order.
func JobTypes() []JobType {
	return []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeTemporary}
}

// ExperienceLevels lists all seniority bands in display order.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelLead, LevelExecutive}
}

// SalaryRange is a labelled salary band offered as a search filter.
type SalaryRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"`
}

// SalaryRanges lists the predefined salary bands.
func SalaryRanges() []SalaryRange {
	return []SalaryRange{
		{Label: "Under $50k", Min: 0, Max: 50000},
		{Label: "$50k – $100k", Min: 50000, Max: 100000},
		{Label: "$100k – $150k", Min: 100000, Max: 150000},
		{Label: "$150k – $200k", Min: 150000, Max: 200000},
		{Label: "$200k and above", Min: 200000},
	}
}

var ErrJobNotFound = errors.New("job not found")
var ErrForbidden = errors.New("not enough permissions")

// Job is the core listing aggregate.
type Job struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	Title           string          `json:"title" bson:"title"`
	Description     string          `json:"description" bson:"description"`
	Location        string          `json:"location" bson:"location"`
	CompanyName     string          `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Department      string          `json:"department,omitempty" bson:"department,omitempty"`
	JobType         JobType         `json:"job_type" bson:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" bson:"experience_level,omitempty"`
	SalaryMin       float64         `json:"salary_min,omitempty" bson:"salary_min,omitempty"`
	SalaryMax       float64         `json:"salary_max,omitempty" bson:"salary_max,omitempty"`
	RequiredSkills  []string        `json:"required_skills" bson:"required_skills"`
	Benefits        []string        `json:"benefits" bson:"benefits"`
	RemoteWork      bool            `json:"remote_work" bson:"remote_work"`
	VisaSponsorship bool            `json:"visa_sponsorship" bson:"visa_sponsorship"`
	IsFeatured      bool            `json:"is_featured" bson:"is_featured"`
	IsActive        bool            `json:"is_active" bson:"is_active"`
	EmployerID      string          `json:"employer_id" bson:"employer_id"`
	ApplicationCount int            `json:"application_count" bson:"application_count"`
	ViewCount       int             `json:"view_count" bson:"view_count"`
	ExpiresAt       time.Time       `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}
