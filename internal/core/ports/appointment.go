package ports

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
}

type CreateAppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      time.Time
	Status    string
	Notes     string
}

// UpdateAppointmentInput carries a partial update. A nil Date leaves the
// scheduled time unchanged.
type UpdateAppointmentInput struct {
	Date   *time.Time
	Status string
	Notes  string
}

type AppointmentService interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, id string, in UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
