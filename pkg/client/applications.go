package client

import (
	"context"
	"net/http"
	"net/url"
)

const familyApplications = "applications"

// ApplicationsClient reads and mutates job applications.
type ApplicationsClient struct {
	c *Client
}

// ApplyInput is the payload for submitting an application.
type ApplyInput struct {
	JobID          string  `json:"job_id"`
	CoverLetter    string  `json:"cover_letter,omitempty"`
	ResumeURL      string  `json:"resume_url,omitempty"`
	ExpectedSalary float64 `json:"expected_salary,omitempty"`
}

// Apply submits an application and invalidates cached application lists.
func (a *ApplicationsClient) Apply(ctx context.Context, input ApplyInput) (*Application, error) {
	var app Application
	if err := a.c.do(ctx, http.MethodPost, "/applications", nil, nil, input, &app); err != nil {
		return nil, err
	}
	a.c.cache.invalidate(familyApplications)
	return &app, nil
}

// Mine lists the authenticated seeker's applications.
func (a *ApplicationsClient) Mine(ctx context.Context) ([]Application, error) {
	key := cacheKey(familyApplications, url.Values{"scope": []string{"me"}})
	if cached, ok := a.c.cache.get(key); ok {
		return cached.([]Application), nil
	}

	var apps []Application
	if err := a.c.do(ctx, http.MethodGet, "/applications/me", nil, nil, nil, &apps); err != nil {
		return nil, err
	}
	a.c.cache.put(key, apps)
	return apps, nil
}

// ForJob lists applications on one listing. Restricted to the job's owner.
func (a *ApplicationsClient) ForJob(ctx context.Context, jobID string) ([]Application, error) {
	key := cacheKey(familyApplications, url.Values{"job": []string{jobID}})
	if cached, ok := a.c.cache.get(key); ok {
		return cached.([]Application), nil
	}

	var apps []Application
	if err := a.c.do(ctx, http.MethodGet, "/jobs/"+jobID+"/applications", nil, nil, nil, &apps); err != nil {
		return nil, err
	}
	a.c.cache.put(key, apps)
	return apps, nil
}

// Get fetches one application by ID.
func (a *ApplicationsClient) Get(ctx context.Context, id string) (*Application, error) {
	var app Application
	if err := a.c.do(ctx, http.MethodGet, "/applications/"+id, nil, nil, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus moves an application through the pipeline and invalidates
// cached application lists.
func (a *ApplicationsClient) UpdateStatus(ctx context.Context, id, status, notes string) (*Application, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}

	var app Application
	if err := a.c.do(ctx, http.MethodPut, "/applications/"+id+"/status", nil, nil, body, &app); err != nil {
		return nil, err
	}
	a.c.cache.invalidate(familyApplications)
	return &app, nil
}

// Withdraw is the seeker's own exit from the pipeline.
func (a *ApplicationsClient) Withdraw(ctx context.Context, id string) (*Application, error) {
	return a.UpdateStatus(ctx, id, "withdrawn", "")
}
