package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	PatientID string    `json:"patient_id" validate:"required"`
	DoctorID  string    `json:"doctor_id" validate:"required"`
	Date      time.Time `json:"appointment_date" validate:"required"`
	Status    string    `json:"status,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
	Notes     string    `json:"notes,omitempty"`
}

type updateAppointmentRequest struct {
	Date   *time.Time `json:"appointment_date,omitempty"`
	Status string     `json:"status,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
	Notes  string     `json:"notes,omitempty"`
}

// List returns all appointments. An optional patient_id query parameter
// narrows the result to a single patient's bookings.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id  query    string  false  "Filter by patient id"
// @Success      200  {array}  domain.Appointment
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if patientID := c.QueryParam("patient_id"); patientID != "" {
		appointments, err := h.service.ListByPatient(ctx, patientID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, appointments)
	}

	appointments, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get returns a single appointment by id.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Create books an appointment.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appointment)
}

// Update reschedules or transitions an appointment.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appointment, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAppointmentInput{
		Date:   req.Date,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete cancels and removes an appointment.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      204  {object}  nil
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
