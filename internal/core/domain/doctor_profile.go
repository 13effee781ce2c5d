package domain

import (
	"errors"
	"time"
)

var ErrDoctorProfileNotFound = errors.New("doctor profile not found")

// DoctorProfile extends a STAFF account with clinical details.
type DoctorProfile struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	AccountID      string    `json:"account_id" bson:"account_id"`
	Specialization string    `json:"specialization" bson:"specialization"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	DepartmentID   string    `json:"department_id,omitempty" bson:"department_id,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
