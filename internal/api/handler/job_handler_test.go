package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

type stubJobService struct {
	createFn   func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error)
	getFn      func(ctx context.Context, id string) (*domain.Job, error)
	updateFn   func(ctx context.Context, id, actorID string, input ports.UpdateJobInput) (*domain.Job, error)
	deleteFn   func(ctx context.Context, id, actorID string) error
	listFn     func(ctx context.Context, page, size int) (*ports.ListJobsResult, error)
	featuredFn func(ctx context.Context, limit int) ([]*domain.Job, error)
	searchFn   func(ctx context.Context, filter ports.SearchJobsFilter) (*ports.ListJobsResult, error)
}

func (s *stubJobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, input)
}

func (s *stubJobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobService) Update(ctx context.Context, id, actorID string, input ports.UpdateJobInput) (*domain.Job, error) {
	return s.updateFn(ctx, id, actorID, input)
}

func (s *stubJobService) Delete(ctx context.Context, id, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func (s *stubJobService) List(ctx context.Context, page, size int) (*ports.ListJobsResult, error) {
	return s.listFn(ctx, page, size)
}

func (s *stubJobService) Featured(ctx context.Context, limit int) ([]*domain.Job, error) {
	return s.featuredFn(ctx, limit)
}

func (s *stubJobService) Search(ctx context.Context, filter ports.SearchJobsFilter) (*ports.ListJobsResult, error) {
	return s.searchFn(ctx, filter)
}

func TestJobHandler_List_PaginationEnvelope(t *testing.T) {
	stub := &stubJobService{
		listFn: func(ctx context.Context, page, size int) (*ports.ListJobsResult, error) {
			if page != 2 || size != 5 {
				t.Fatalf("unexpected paging: page=%d size=%d", page, size)
			}
			return &ports.ListJobsResult{
				Items: []*domain.Job{{ID: "job_1", Title: "Go Engineer"}},
				Page:  ports.Page{Total: 11, Page: 2, Size: 5, Pages: 3},
			}, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/jobs?page=2&size=5", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(11) || resp["page"] != float64(2) || resp["pages"] != float64(3) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected items: %+v", resp["items"])
	}
}

func TestJobHandler_Search_PassesFilters(t *testing.T) {
	stub := &stubJobService{
		searchFn: func(ctx context.Context, filter ports.SearchJobsFilter) (*ports.ListJobsResult, error) {
			if filter.Query != "golang" || filter.Location != "Berlin" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if filter.RemoteWork == nil || !*filter.RemoteWork {
				t.Fatalf("remote_work filter not parsed")
			}
			return &ports.ListJobsResult{Items: []*domain.Job{}, Page: ports.Page{Page: 1, Size: 10}}, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodGet,
		"/api/v1/jobs/search?query=golang&location=Berlin&remote_work=true", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	stub := &stubJobService{
		getFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/jobs/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobHandler_Create_Success(t *testing.T) {
	stub := &stubJobService{
		createFn: func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
			if input.EmployerID != "user_1" || input.JobType != "full-time" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Job{ID: "job_1", Title: input.Title, JobType: domain.JobTypeFullTime, EmployerID: input.EmployerID}, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/jobs",
		`{"title":"Go Engineer","description":"Build services","location":"Berlin","job_type":"full-time"}`)
	c.Set("user_id", "user_1")
	c.Set("role", "employer")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestJobHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubJobService{
		createFn: func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/jobs",
		`{"title":"Go Engineer","description":"Build services","location":"Berlin","job_type":"full-time"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJobHandler_Create_InvalidJobType(t *testing.T) {
	stub := &stubJobService{
		createFn: func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/jobs",
		`{"title":"Go Engineer","description":"Build services","location":"Berlin","job_type":"gig"}`)
	c.Set("user_id", "user_1")
	c.Set("role", "employer")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestJobHandler_Update_Forbidden(t *testing.T) {
	stub := &stubJobService{
		updateFn: func(ctx context.Context, id, actorID string, input ports.UpdateJobInput) (*domain.Job, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/jobs/job_1", `{"title":"New title"}`)
	c.SetParamNames("id")
	c.SetParamValues("job_1")
	c.Set("user_id", "intruder")
	c.Set("role", "employer")

	err := h.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobHandler_Delete_Success(t *testing.T) {
	stub := &stubJobService{
		deleteFn: func(ctx context.Context, id, actorID string) error {
			if id != "job_1" || actorID != "user_1" {
				t.Fatalf("unexpected args: %s %s", id, actorID)
			}
			return nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/jobs/job_1", "")
	c.SetParamNames("id")
	c.SetParamValues("job_1")
	c.Set("user_id", "user_1")
	c.Set("role", "employer")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Job deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestJobHandler_Options_Vocabularies(t *testing.T) {
	h := NewJobHandler(&stubJobService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/jobs/options", "")

	if err := h.Options(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	types, ok := resp["job_types"].([]any)
	if !ok || len(types) != 5 {
		t.Fatalf("unexpected job_types: %+v", resp["job_types"])
	}
	levels, ok := resp["experience_levels"].([]any)
	if !ok || len(levels) != 5 {
		t.Fatalf("unexpected experience_levels: %+v", resp["experience_levels"])
	}
}
