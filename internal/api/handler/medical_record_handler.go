package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// MedicalRecordHandler handles HTTP requests for medical records.
type MedicalRecordHandler struct {
	service ports.MedicalRecordService
}

func NewMedicalRecordHandler(service ports.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

type createMedicalRecordRequest struct {
	PatientID   string   `json:"patient_id" validate:"required"`
	DoctorID    string   `json:"doctor_id" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Attachments []string `json:"attachments,omitempty"`
}

type updateMedicalRecordRequest struct {
	Description string   `json:"description,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// List returns all medical records. An optional patient_id query parameter
// narrows the result to a single patient's history.
//
// @Summary      List medical records
// @Tags         medical-records
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id  query    string  false  "Filter by patient id"
// @Success      200  {array}  domain.MedicalRecord
// @Router       /medical-records [get]
func (h *MedicalRecordHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if patientID := c.QueryParam("patient_id"); patientID != "" {
		records, err := h.service.ListByPatient(ctx, patientID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, records)
	}

	records, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get returns a single medical record by id.
//
// @Summary      Get a medical record
// @Tags         medical-records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  domain.MedicalRecord
// @Failure      404  {object}  map[string]string
// @Router       /medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(c echo.Context) error {
	record, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Create documents a consultation outcome.
//
// @Summary      Create a medical record
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMedicalRecordRequest  true  "Record details"
// @Success      201   {object}  domain.MedicalRecord
// @Failure      404   {object}  map[string]string
// @Router       /medical-records [post]
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	var req createMedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateMedicalRecordInput{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Description: req.Description,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update amends a medical record.
//
// @Summary      Update a medical record
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Record id"
// @Param        body  body      updateMedicalRecordRequest  true  "Fields to update"
// @Success      200   {object}  domain.MedicalRecord
// @Failure      404   {object}  map[string]string
// @Router       /medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(c echo.Context) error {
	var req updateMedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMedicalRecordInput{
		Description: req.Description,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete removes a medical record.
//
// @Summary      Delete a medical record
// @Tags         medical-records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      204  {object}  nil
// @Failure      404  {object}  map[string]string
// @Router       /medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
