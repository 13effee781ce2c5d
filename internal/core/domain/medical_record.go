package domain

import (
	"errors"
	"time"
)

var ErrMedicalRecordNotFound = errors.New("medical record not found")

// MedicalRecord documents a consultation outcome for a patient.
type MedicalRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PatientID   string    `json:"patient_id" bson:"patient_id"`
	DoctorID    string    `json:"doctor_id" bson:"doctor_id"`
	Description string    `json:"description" bson:"description"`
	Attachments []string  `json:"attachments,omitempty" bson:"attachments,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
