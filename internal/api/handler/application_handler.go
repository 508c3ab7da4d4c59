package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhunter/platform/internal/api/metrics"
	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	JobID          string  `json:"job_id" validate:"required"`
	CoverLetter    string  `json:"cover_letter"`
	ResumeURL      string  `json:"resume_url" validate:"omitempty,url"`
	ExpectedSalary float64 `json:"expected_salary" validate:"omitempty,gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted interviewing offered accepted rejected withdrawn"`
	Notes  string `json:"notes"`
}

// Apply handles POST /api/v1/applications.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:          req.JobID,
		ApplicantID:    userID,
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
		ExpectedSalary: req.ExpectedSalary,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// Mine handles GET /api/v1/applications/me.
//
// @Summary      List the authenticated user's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/applications/me [get]
func (h *ApplicationHandler) Mine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.MyApplications(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apps)
}

// ForJob handles GET /api/v1/jobs/:id/applications.
//
// @Summary      List applications on a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {array}   domain.Application
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/jobs/{id}/applications [get]
func (h *ApplicationHandler) ForJob(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ForJob(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/v1/applications/:id.
//
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	app, err := h.service.Get(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PUT /api/v1/applications/:id/status.
//
// @Summary      Move an application through the hiring pipeline
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next := domain.ApplicationStatus(req.Status)
	app, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), userID, role, next, req.Notes)
	if err != nil {
		return err
	}

	n := len(app.StatusHistory)
	if n >= 2 {
		metrics.ApplicationTransitionsTotal.WithLabelValues(
			string(app.StatusHistory[n-2].Status), string(app.Status),
		).Inc()
	}
	return c.JSON(http.StatusOK, app)
}
