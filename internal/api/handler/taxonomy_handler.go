package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

// skillError and benefitError attach the resource name to duplicate-name
// failures; the shared sentinel cannot tell the two vocabularies apart.
func skillError(err error) error {
	if errors.Is(err, domain.ErrTaxonomyNameTaken) {
		return echo.NewHTTPError(http.StatusBadRequest, "A skill with this name already exists.")
	}
	return err
}

func benefitError(err error) error {
	if errors.Is(err, domain.ErrTaxonomyNameTaken) {
		return echo.NewHTTPError(http.StatusBadRequest, "A benefit with this name already exists.")
	}
	return err
}

// TaxonomyHandler handles the skill and benefit vocabulary endpoints.
type TaxonomyHandler struct {
	service ports.TaxonomyService
}

func NewTaxonomyHandler(service ports.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

type taxonomyRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

// ListSkills handles GET /api/v1/skills.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   domain.Skill
// @Router       /api/v1/skills [get]
func (h *TaxonomyHandler) ListSkills(c echo.Context) error {
	skills, err := h.service.ListSkills(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// CreateSkill handles POST /api/v1/skills.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taxonomyRequest  true  "Skill details"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/skills [post]
func (h *TaxonomyHandler) CreateSkill(c echo.Context) error {
	var req taxonomyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.CreateSkill(c.Request().Context(), req.Name, req.Category)
	if err != nil {
		return skillError(err)
	}

	return c.JSON(http.StatusCreated, skill)
}

// GetSkill handles GET /api/v1/skills/:id.
//
// @Summary      Get a skill by ID
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/skills/{id} [get]
func (h *TaxonomyHandler) GetSkill(c echo.Context) error {
	skill, err := h.service.GetSkill(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// UpdateSkill handles PUT /api/v1/skills/:id.
//
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Skill ID"
// @Param        body  body      taxonomyRequest  true  "Skill details"
// @Success      200   {object}  domain.Skill
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/skills/{id} [put]
func (h *TaxonomyHandler) UpdateSkill(c echo.Context) error {
	var req taxonomyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.UpdateSkill(c.Request().Context(), c.Param("id"), req.Name, req.Category)
	if err != nil {
		return skillError(err)
	}

	return c.JSON(http.StatusOK, skill)
}

// DeleteSkill handles DELETE /api/v1/skills/:id.
//
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/skills/{id} [delete]
func (h *TaxonomyHandler) DeleteSkill(c echo.Context) error {
	if err := h.service.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Skill deleted"})
}

// ListBenefits handles GET /api/v1/benefits.
//
// @Summary      List benefits
// @Tags         benefits
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   domain.Benefit
// @Router       /api/v1/benefits [get]
func (h *TaxonomyHandler) ListBenefits(c echo.Context) error {
	benefits, err := h.service.ListBenefits(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, benefits)
}

// CreateBenefit handles POST /api/v1/benefits.
//
// @Summary      Create a benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taxonomyRequest  true  "Benefit details"
// @Success      201   {object}  domain.Benefit
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/benefits [post]
func (h *TaxonomyHandler) CreateBenefit(c echo.Context) error {
	var req taxonomyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	benefit, err := h.service.CreateBenefit(c.Request().Context(), req.Name, req.Category)
	if err != nil {
		return benefitError(err)
	}

	return c.JSON(http.StatusCreated, benefit)
}

// GetBenefit handles GET /api/v1/benefits/:id.
//
// @Summary      Get a benefit by ID
// @Tags         benefits
// @Produce      json
// @Param        id   path      string  true  "Benefit ID"
// @Success      200  {object}  domain.Benefit
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/benefits/{id} [get]
func (h *TaxonomyHandler) GetBenefit(c echo.Context) error {
	benefit, err := h.service.GetBenefit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, benefit)
}

// UpdateBenefit handles PUT /api/v1/benefits/:id.
//
// @Summary      Update a benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Benefit ID"
// @Param        body  body      taxonomyRequest  true  "Benefit details"
// @Success      200   {object}  domain.Benefit
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/benefits/{id} [put]
func (h *TaxonomyHandler) UpdateBenefit(c echo.Context) error {
	var req taxonomyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	benefit, err := h.service.UpdateBenefit(c.Request().Context(), c.Param("id"), req.Name, req.Category)
	if err != nil {
		return benefitError(err)
	}

	return c.JSON(http.StatusOK, benefit)
}

// DeleteBenefit handles DELETE /api/v1/benefits/:id.
//
// @Summary      Delete a benefit
// @Tags         benefits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Benefit ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/benefits/{id} [delete]
func (h *TaxonomyHandler) DeleteBenefit(c echo.Context) error {
	if err := h.service.DeleteBenefit(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Benefit deleted"})
}
