package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// DoctorProfileRepository defines persistence for doctor profiles.
type DoctorProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.DoctorProfile, error)
	Create(ctx context.Context, profile *domain.DoctorProfile) (*domain.DoctorProfile, error)
	Update(ctx context.Context, profile *domain.DoctorProfile) (*domain.DoctorProfile, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.DoctorProfile, error)
}

type CreateDoctorProfileInput struct {
	AccountID      string
	Specialization string
	Phone          string
	DepartmentID   string
}

type UpdateDoctorProfileInput struct {
	Specialization string
	Phone          string
	DepartmentID   string
}

type DoctorProfileService interface {
	List(ctx context.Context) ([]domain.DoctorProfile, error)
	Get(ctx context.Context, id string) (*domain.DoctorProfile, error)
	Create(ctx context.Context, in CreateDoctorProfileInput) (*domain.DoctorProfile, error)
	Update(ctx context.Context, id string, in UpdateDoctorProfileInput) (*domain.DoctorProfile, error)
	Delete(ctx context.Context, id string) error
}
