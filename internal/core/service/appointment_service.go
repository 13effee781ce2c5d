package service

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// AppointmentService implements CRUD over appointments. New appointments
// default to pending; both referenced records must exist.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	patients ports.PatientRepository
	doctors  ports.DoctorProfileRepository
}

func NewAppointmentService(repo ports.AppointmentRepository, patients ports.PatientRepository, doctors ports.DoctorProfileRepository) *AppointmentService {
	return &AppointmentService{repo: repo, patients: patients, doctors: doctors}
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	status := domain.AppointmentStatus(in.Status)
	if in.Status == "" {
		status = domain.AppointmentPending
	}
	if !domain.ValidAppointmentStatus(status) {
		return nil, domain.ErrInvalidAppointmentStatus
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date.UTC(),
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *AppointmentService) Update(ctx context.Context, id string, in ports.UpdateAppointmentInput) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		appointment.Date = in.Date.UTC()
	}
	if in.Status != "" {
		status := domain.AppointmentStatus(in.Status)
		if !domain.ValidAppointmentStatus(status) {
			return nil, domain.ErrInvalidAppointmentStatus
		}
		appointment.Status = status
	}
	if in.Notes != "" {
		appointment.Notes = in.Notes
	}
	appointment.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
