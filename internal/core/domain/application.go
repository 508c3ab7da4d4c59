package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusPending      ApplicationStatus = "pending"
	StatusReviewing    ApplicationStatus = "reviewing"
	StatusShortlisted  ApplicationStatus = "shortlisted"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusAccepted     ApplicationStatus = "accepted"
	StatusRejected     ApplicationStatus = "rejected"
	StatusWithdrawn    ApplicationStatus = "withdrawn"
)

// validTransitions defines the allowed state machine transitions. Rejection is
// reachable from every active state; withdrawal is the applicant's own exit.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:      {StatusReviewing, StatusRejected, StatusWithdrawn},
	StatusReviewing:    {StatusShortlisted, StatusRejected, StatusWithdrawn},
	StatusShortlisted:  {StatusInterviewing, StatusRejected, StatusWithdrawn},
	StatusInterviewing: {StatusOffered, StatusRejected, StatusWithdrawn},
	StatusOffered:      {StatusAccepted, StatusRejected, StatusWithdrawn},
}

var ErrInvalidTransition = errors.New("invalid application status transition")
var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied to this job")

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusHistoryEntry records a single status change on an application.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status" bson:"status"`
	Timestamp time.Time         `json:"timestamp" bson:"timestamp"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Application links a job seeker to a job listing.
type Application struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	JobID          string               `json:"job_id" bson:"job_id"`
	ApplicantID    string               `json:"applicant_id" bson:"applicant_id"`
	CoverLetter    string               `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	ResumeURL      string               `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
	ExpectedSalary float64              `json:"expected_salary,omitempty" bson:"expected_salary,omitempty"`
	Status         ApplicationStatus    `json:"status" bson:"status"`
	StatusHistory  []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	CreatedAt      time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at" bson:"updated_at"`
}
