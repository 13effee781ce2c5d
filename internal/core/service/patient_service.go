package service

import (
	"context"
	"strings"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// PatientService implements CRUD over patient records.
type PatientService struct {
	repo ports.PatientRepository
}

func NewPatientService(repo ports.PatientRepository) *PatientService {
	return &PatientService{repo: repo}
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) Create(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Patient{
		AccountID:   in.AccountID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		BloodType:   in.BloodType,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *PatientService) Update(ctx context.Context, id string, in ports.UpdatePatientInput) (*domain.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		patient.FirstName = in.FirstName
	}
	if in.LastName != "" {
		patient.LastName = in.LastName
	}
	if in.Email != "" {
		patient.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Phone != "" {
		patient.Phone = in.Phone
	}
	if in.DateOfBirth != "" {
		patient.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != "" {
		patient.Gender = in.Gender
	}
	if in.BloodType != "" {
		patient.BloodType = in.BloodType
	}
	if in.Address != "" {
		patient.Address = in.Address
	}
	patient.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
