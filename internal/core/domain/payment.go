package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvalidPaymentStatus = errors.New("invalid payment status")

// ValidPaymentStatus reports whether s is a known status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// Payment records a charge against a patient.
type Payment struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	PatientID string        `json:"patient_id" bson:"patient_id"`
	Amount    float64       `json:"amount" bson:"amount"`
	Currency  string        `json:"currency" bson:"currency"`
	Status    PaymentStatus `json:"status" bson:"status"`
	Reference string        `json:"reference,omitempty" bson:"reference,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
