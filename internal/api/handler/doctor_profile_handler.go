package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// DoctorProfileHandler handles HTTP requests for doctor profiles.
type DoctorProfileHandler struct {
	service ports.DoctorProfileService
}

func NewDoctorProfileHandler(service ports.DoctorProfileService) *DoctorProfileHandler {
	return &DoctorProfileHandler{service: service}
}

type createDoctorProfileRequest struct {
	AccountID      string `json:"account_id" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Phone          string `json:"phone,omitempty"`
	DepartmentID   string `json:"department_id,omitempty"`
}

type updateDoctorProfileRequest struct {
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DepartmentID   string `json:"department_id,omitempty"`
}

// List returns all doctor profiles.
//
// @Summary      List doctor profiles
// @Tags         doctor-profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.DoctorProfile
// @Router       /doctor-profiles [get]
func (h *DoctorProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Get returns a single doctor profile by id.
//
// @Summary      Get a doctor profile
// @Tags         doctor-profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  domain.DoctorProfile
// @Failure      404  {object}  map[string]string
// @Router       /doctor-profiles/{id} [get]
func (h *DoctorProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Create adds a doctor profile for a staff account.
//
// @Summary      Create a doctor profile
// @Tags         doctor-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDoctorProfileRequest  true  "Profile details"
// @Success      201   {object}  domain.DoctorProfile
// @Failure      404   {object}  map[string]string
// @Router       /doctor-profiles [post]
func (h *DoctorProfileHandler) Create(c echo.Context) error {
	var req createDoctorProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Create(c.Request().Context(), ports.CreateDoctorProfileInput{
		AccountID:      req.AccountID,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		DepartmentID:   req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// Update applies a partial update to a doctor profile.
//
// @Summary      Update a doctor profile
// @Tags         doctor-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Profile id"
// @Param        body  body      updateDoctorProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.DoctorProfile
// @Failure      404   {object}  map[string]string
// @Router       /doctor-profiles/{id} [put]
func (h *DoctorProfileHandler) Update(c echo.Context) error {
	var req updateDoctorProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDoctorProfileInput{
		Specialization: req.Specialization,
		Phone:          req.Phone,
		DepartmentID:   req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete removes a doctor profile.
//
// @Summary      Delete a doctor profile
// @Tags         doctor-profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile id"
// @Success      204  {object}  nil
// @Failure      404  {object}  map[string]string
// @Router       /doctor-profiles/{id} [delete]
func (h *DoctorProfileHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
