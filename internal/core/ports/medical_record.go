package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// MedicalRecordRepository defines persistence for medical records.
type MedicalRecordRepository interface {
	FindByID(ctx context.Context, id string) (*domain.MedicalRecord, error)
	Create(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error)
	Update(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error)
}

type CreateMedicalRecordInput struct {
	PatientID   string
	DoctorID    string
	Description string
	Attachments []string
}

type UpdateMedicalRecordInput struct {
	Description string
	Attachments []string
}

type MedicalRecordService interface {
	List(ctx context.Context) ([]domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error)
	Get(ctx context.Context, id string) (*domain.MedicalRecord, error)
	Create(ctx context.Context, in CreateMedicalRecordInput) (*domain.MedicalRecord, error)
	Update(ctx context.Context, id string, in UpdateMedicalRecordInput) (*domain.MedicalRecord, error)
	Delete(ctx context.Context, id string) error
}
