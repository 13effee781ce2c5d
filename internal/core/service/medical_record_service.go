package service

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// MedicalRecordService implements CRUD over medical records.
type MedicalRecordService struct {
	repo     ports.MedicalRecordRepository
	patients ports.PatientRepository
}

func NewMedicalRecordService(repo ports.MedicalRecordRepository, patients ports.PatientRepository) *MedicalRecordService {
	return &MedicalRecordService{repo: repo, patients: patients}
}

func (s *MedicalRecordService) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *MedicalRecordService) ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *MedicalRecordService) Get(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MedicalRecordService) Create(ctx context.Context, in ports.CreateMedicalRecordInput) (*domain.MedicalRecord, error) {
	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.MedicalRecord{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		Description: in.Description,
		Attachments: in.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *MedicalRecordService) Update(ctx context.Context, id string, in ports.UpdateMedicalRecordInput) (*domain.MedicalRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Description != "" {
		record.Description = in.Description
	}
	if in.Attachments != nil {
		record.Attachments = in.Attachments
	}
	record.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, record)
}

func (s *MedicalRecordService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
