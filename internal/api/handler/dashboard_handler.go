package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhunter/platform/internal/core/ports"
)

// DashboardHandler serves the per-role dashboard aggregations.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Employer handles GET /api/v1/dashboard/employer.
//
// @Summary      Employer hiring dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.EmployerDashboard
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/dashboard/employer [get]
func (h *DashboardHandler) Employer(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dash, err := h.service.Employer(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dash)
}

// Seeker handles GET /api/v1/dashboard/seeker.
//
// @Summary      Job seeker activity dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SeekerDashboard
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/dashboard/seeker [get]
func (h *DashboardHandler) Seeker(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dash, err := h.service.Seeker(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dash)
}

// Admin handles GET /api/v1/dashboard/admin.
//
// @Summary      Platform-wide admin dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminDashboard
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	dash, err := h.service.Admin(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dash)
}
