package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobhunter/platform/internal/api/metrics"
	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

// JobHandler handles HTTP requests for job listings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/v1/jobs.
//
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        page  query     int  false  "Page number"  default(1)
// @Param        size  query     int  false  "Page size"    default(10)
// @Success      200   {object}  paginatedJobsResponse
// @Router       /api/v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPaginatedJobs(result))
}

// Search handles GET /api/v1/jobs/search.
//
// @Summary      Search jobs with filters
// @Tags         jobs
// @Produce      json
// @Param        query             query     string   false  "Partial match on title, description or company"
// @Param        location          query     string   false  "Location filter"
// @Param        job_type          query     string   false  "Job type filter"
// @Param        experience_level  query     string   false  "Experience level filter"
// @Param        salary_min        query     number   false  "Minimum salary"
// @Param        salary_max        query     number   false  "Maximum salary"
// @Param        remote_work       query     boolean  false  "Remote jobs only"
// @Param        visa_sponsorship  query     boolean  false  "Visa sponsorship only"
// @Param        page              query     int      false  "Page number"
// @Param        size              query     int      false  "Page size"
// @Success      200               {object}  paginatedJobsResponse
// @Router       /api/v1/jobs/search [get]
func (h *JobHandler) Search(c echo.Context) error {
	var q searchJobsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Search(c.Request().Context(), toSearchFilter(q))
	if err != nil {
		return err
	}

	metrics.JobSearchesTotal.Inc()
	return c.JSON(http.StatusOK, toPaginatedJobs(result))
}

// Featured handles GET /api/v1/jobs/featured.
//
// @Summary      List featured jobs
// @Tags         jobs
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries"  default(10)
// @Success      200    {array}   domain.Job
// @Router       /api/v1/jobs/featured [get]
func (h *JobHandler) Featured(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	jobs, err := h.service.Featured(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobs)
}

// Options handles GET /api/v1/jobs/options. It serves the static vocabularies
// search forms are built from.
//
// @Summary      List job filter options
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  jobOptionsResponse
// @Router       /api/v1/jobs/options [get]
func (h *JobHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, jobOptionsResponse{
		JobTypes:         domain.JobTypes(),
		ExperienceLevels: domain.ExperienceLevels(),
		SalaryRanges:     domain.SalaryRanges(),
	})
}

// Get handles GET /api/v1/jobs/:id.
//
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Create handles POST /api/v1/jobs.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), toCreateJobInput(req, userID))
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.JobType)).Inc()
	return c.JSON(http.StatusCreated, job)
}

// Update handles PUT /api/v1/jobs/:id.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, toUpdateJobInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/v1/jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}
