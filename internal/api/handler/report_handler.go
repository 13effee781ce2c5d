package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// ReportHandler produces the operational summary for dashboards.
type ReportHandler struct {
	patients     ports.PatientService
	appointments ports.AppointmentService
	payments     ports.PaymentService
}

func NewReportHandler(patients ports.PatientService, appointments ports.AppointmentService, payments ports.PaymentService) *ReportHandler {
	return &ReportHandler{patients: patients, appointments: appointments, payments: payments}
}

type appointmentSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type paymentSummary struct {
	Total         int                `json:"total"`
	Paid          int                `json:"paid"`
	Pending       int                `json:"pending"`
	Failed        int                `json:"failed"`
	PaidAmounts   map[string]float64 `json:"paid_amounts"`
	UnpaidAmounts map[string]float64 `json:"unpaid_amounts"`
}

type summaryResponse struct {
	Patients     int                `json:"patients"`
	Appointments appointmentSummary `json:"appointments"`
	Payments     paymentSummary     `json:"payments"`
}

// Summary aggregates patient, appointment and payment counts. Amounts are
// grouped per currency; nothing is converted.
//
// @Summary      Operational summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      403  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	patients, err := h.patients.List(ctx)
	if err != nil {
		return err
	}
	appointments, err := h.appointments.List(ctx)
	if err != nil {
		return err
	}
	payments, err := h.payments.List(ctx)
	if err != nil {
		return err
	}

	resp := summaryResponse{
		Patients: len(patients),
		Payments: paymentSummary{
			PaidAmounts:   make(map[string]float64),
			UnpaidAmounts: make(map[string]float64),
		},
	}

	resp.Appointments.Total = len(appointments)
	for _, a := range appointments {
		switch a.Status {
		case domain.AppointmentPending:
			resp.Appointments.Pending++
		case domain.AppointmentCompleted:
			resp.Appointments.Completed++
		case domain.AppointmentCancelled:
			resp.Appointments.Cancelled++
		}
	}

	resp.Payments.Total = len(payments)
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentPaid:
			resp.Payments.Paid++
			resp.Payments.PaidAmounts[p.Currency] += p.Amount
		case domain.PaymentPending:
			resp.Payments.Pending++
			resp.Payments.UnpaidAmounts[p.Currency] += p.Amount
		case domain.PaymentFailed:
			resp.Payments.Failed++
		}
	}

	return c.JSON(http.StatusOK, resp)
}
