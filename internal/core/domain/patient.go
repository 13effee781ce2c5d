package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")
var ErrDuplicatePatient = errors.New("patient already exists")

// Patient is the clinical record linked to a PATIENT account.
type Patient struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	AccountID   string    `json:"account_id,omitempty" bson:"account_id,omitempty"`
	FirstName   string    `json:"first_name" bson:"first_name"`
	LastName    string    `json:"last_name" bson:"last_name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodType   string    `json:"blood_type,omitempty" bson:"blood_type,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
