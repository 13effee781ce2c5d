package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidAppointmentStatus = errors.New("invalid appointment status")

// ValidAppointmentStatus reports whether s is a known status.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment links a patient to a doctor profile at a point in time.
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	PatientID string            `json:"patient_id" bson:"patient_id"`
	DoctorID  string            `json:"doctor_id" bson:"doctor_id"`
	Date      time.Time         `json:"appointment_date" bson:"appointment_date"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}
