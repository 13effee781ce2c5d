package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// PatientRepository defines persistence for patient records.
type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Patient, error)
}

// CreatePatientInput carries a new patient record.
type CreatePatientInput struct {
	AccountID   string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth string
	Gender      string
	BloodType   string
	Address     string
}

// UpdatePatientInput carries a partial update; empty fields are unchanged.
type UpdatePatientInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth string
	Gender      string
	BloodType   string
	Address     string
}

type PatientService interface {
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	Create(ctx context.Context, in CreatePatientInput) (*domain.Patient, error)
	Update(ctx context.Context, id string, in UpdatePatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id string) error
}
