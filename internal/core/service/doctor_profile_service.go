package service

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// DoctorProfileService implements CRUD over doctor profiles.
type DoctorProfileService struct {
	repo        ports.DoctorProfileRepository
	departments ports.DepartmentRepository
}

func NewDoctorProfileService(repo ports.DoctorProfileRepository, departments ports.DepartmentRepository) *DoctorProfileService {
	return &DoctorProfileService{repo: repo, departments: departments}
}

func (s *DoctorProfileService) List(ctx context.Context) ([]domain.DoctorProfile, error) {
	return s.repo.List(ctx)
}

func (s *DoctorProfileService) Get(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DoctorProfileService) Create(ctx context.Context, in ports.CreateDoctorProfileInput) (*domain.DoctorProfile, error) {
	if in.DepartmentID != "" {
		if _, err := s.departments.FindByID(ctx, in.DepartmentID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.DoctorProfile{
		AccountID:      in.AccountID,
		Specialization: in.Specialization,
		Phone:          in.Phone,
		DepartmentID:   in.DepartmentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (s *DoctorProfileService) Update(ctx context.Context, id string, in ports.UpdateDoctorProfileInput) (*domain.DoctorProfile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Specialization != "" {
		profile.Specialization = in.Specialization
	}
	if in.Phone != "" {
		profile.Phone = in.Phone
	}
	if in.DepartmentID != "" {
		if _, err := s.departments.FindByID(ctx, in.DepartmentID); err != nil {
			return nil, err
		}
		profile.DepartmentID = in.DepartmentID
	}
	profile.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, profile)
}

func (s *DoctorProfileService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
