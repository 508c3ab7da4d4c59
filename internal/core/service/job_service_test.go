package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
	views  map[string]int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job), views: make(map[string]int)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	copy := cloneJob(job)
	copy.ID = fmt.Sprintf("job_%d", r.nextID)
	r.jobs[copy.ID] = cloneJob(copy)
	return cloneJob(copy), nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return cloneJob(j), nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrJobNotFound
	}
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) sorted() []*domain.Job {
	var out []*domain.Job
	for _, j := range r.jobs {
		out = append(out, cloneJob(j))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *stubJobRepo) List(_ context.Context, page, size int) ([]*domain.Job, int64, error) {
	var active []*domain.Job
	for _, j := range r.sorted() {
		if j.IsActive {
			active = append(active, j)
		}
	}
	total := int64(len(active))
	start := (page - 1) * size
	if start >= len(active) {
		return []*domain.Job{}, total, nil
	}
	end := start + size
	if end > len(active) {
		end = len(active)
	}
	return active[start:end], total, nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID string, activeOnly bool) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.sorted() {
		if j.EmployerID == employerID && (!activeOnly || j.IsActive) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Featured(_ context.Context, limit int) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.sorted() {
		if j.IsFeatured && j.IsActive && len(out) < limit {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Search(_ context.Context, filter ports.SearchJobsFilter) ([]*domain.Job, int64, error) {
	var out []*domain.Job
	for _, j := range r.sorted() {
		if !j.IsActive {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Location != "" && !strings.EqualFold(j.Location, filter.Location) {
			continue
		}
		if filter.JobType != "" && string(j.JobType) != filter.JobType {
			continue
		}
		if filter.RemoteWork != nil && j.RemoteWork != *filter.RemoteWork {
			continue
		}
		out = append(out, j)
	}
	return out, int64(len(out)), nil
}

func (r *stubJobRepo) IncrementViews(_ context.Context, id string) error {
	r.views[id]++
	return nil
}

func (r *stubJobRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

type stubViewRecorder struct {
	recorded []string
}

func (v *stubViewRecorder) Record(jobID string) {
	v.recorded = append(v.recorded, jobID)
}

func seedJob(t *testing.T, svc *JobService, employerID, title string) *domain.Job {
	t.Helper()
	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:       title,
		Description: "desc",
		Location:    "Berlin",
		JobType:     string(domain.JobTypeFullTime),
		EmployerID:  employerID,
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestJobService_CreateAndGet(t *testing.T) {
	views := &stubViewRecorder{}
	svc := NewJobService(newStubJobRepo(), views, nil, zerolog.Nop())

	job := seedJob(t, svc, "emp_1", "Backend Engineer")
	if !job.IsActive {
		t.Fatalf("new job should be active")
	}

	got, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Backend Engineer" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if len(views.recorded) != 1 || views.recorded[0] != job.ID {
		t.Fatalf("view not recorded: %+v", views.recorded)
	}
}

func TestJobService_Update_OwnerOnly(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, nil, zerolog.Nop())
	job := seedJob(t, svc, "emp_1", "Backend Engineer")

	title := "Senior Backend Engineer"
	if _, err := svc.Update(context.Background(), job.ID, "emp_2", ports.UpdateJobInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), job.ID, "emp_1", ports.UpdateJobInput{Title: &title})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title not updated: %q", updated.Title)
	}
}

func TestJobService_Delete_OwnerOnly(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, nil, zerolog.Nop())
	job := seedJob(t, svc, "emp_1", "Backend Engineer")

	if err := svc.Delete(context.Background(), job.ID, "emp_2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID, "emp_1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound after delete, got %v", err)
	}
}

func TestJobService_List_Pagination(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, nil, zerolog.Nop())
	for i := 0; i < 25; i++ {
		seedJob(t, svc, "emp_1", fmt.Sprintf("Job %d", i))
	}

	result, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page.Total != 25 || result.Page.Pages != 3 {
		t.Fatalf("unexpected pagination: %+v", result.Page)
	}
	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}

	// Out-of-range pages come back empty, not as an error.
	result, err = svc.List(context.Background(), 99, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 0 || result.Page.Total != 25 {
		t.Fatalf("expected empty page with total intact, got %d items", len(result.Items))
	}
}

func TestJobService_List_ClampsSize(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, nil, zerolog.Nop())
	seedJob(t, svc, "emp_1", "Only Job")

	result, err := svc.List(context.Background(), 0, 1000)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page.Page != 1 || result.Page.Size != maxPageSize {
		t.Fatalf("expected clamped page 1 size %d, got %+v", maxPageSize, result.Page)
	}
}

func TestJobService_Search_Filters(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, nil, nil, zerolog.Nop())

	seedJob(t, svc, "emp_1", "Go Developer")
	seedJob(t, svc, "emp_1", "Data Scientist")

	result, err := svc.Search(context.Background(), ports.SearchJobsFilter{Query: "go"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Title != "Go Developer" {
		t.Fatalf("unexpected search result: %+v", result.Items)
	}
}

type stubFeaturedCache struct {
	entries     map[int][]*domain.Job
	invalidated int
}

func newStubFeaturedCache() *stubFeaturedCache {
	return &stubFeaturedCache{entries: make(map[int][]*domain.Job)}
}

func (c *stubFeaturedCache) Get(_ context.Context, limit int) ([]*domain.Job, bool) {
	jobs, ok := c.entries[limit]
	return jobs, ok
}

func (c *stubFeaturedCache) Set(_ context.Context, limit int, jobs []*domain.Job) {
	c.entries[limit] = jobs
}

func (c *stubFeaturedCache) Invalidate(_ context.Context) {
	c.invalidated++
	c.entries = make(map[int][]*domain.Job)
}

func TestJobService_Featured_UsesCache(t *testing.T) {
	repo := newStubJobRepo()
	cache := newStubFeaturedCache()
	svc := NewJobService(repo, nil, cache, zerolog.Nop())

	job := seedJob(t, svc, "emp_1", "Featured Role")
	job.IsFeatured = true
	if err := repo.Update(context.Background(), job); err != nil {
		t.Fatalf("mark featured: %v", err)
	}
	cache.Invalidate(context.Background())

	first, err := svc.Featured(context.Background(), 6)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected one featured job, got %d", len(first))
	}
	if _, ok := cache.entries[6]; !ok {
		t.Fatalf("result should be cached after the first read")
	}

	// A second read is served from the cache even if the repo changes.
	if err := repo.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := svc.Featured(context.Background(), 6)
	if err != nil {
		t.Fatalf("featured from cache: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached result, got %d jobs", len(second))
	}
}

func TestJobService_Create_InvalidatesFeaturedCache(t *testing.T) {
	cache := newStubFeaturedCache()
	svc := NewJobService(newStubJobRepo(), nil, cache, zerolog.Nop())

	before := cache.invalidated
	seedJob(t, svc, "emp_1", "New Role")
	if cache.invalidated != before+1 {
		t.Fatalf("create must invalidate the featured cache")
	}
}
