package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	nextID   int
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient)}
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	if p, ok := r.patients[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	r.nextID++
	clone := *p
	clone.ID = "pat-" + strconv.Itoa(r.nextID)
	r.patients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	clone := *p
	r.patients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id string) error {
	delete(r.patients, id)
	return nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

type stubDoctorRepo struct {
	profiles map[string]*domain.DoctorProfile
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id string) (*domain.DoctorProfile, error) {
	if d, ok := r.profiles[id]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, domain.ErrDoctorProfileNotFound
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.DoctorProfile) (*domain.DoctorProfile, error) {
	clone := *d
	r.profiles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.DoctorProfile) (*domain.DoctorProfile, error) {
	clone := *d
	r.profiles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id string) error {
	delete(r.profiles, id)
	return nil
}

func (r *stubDoctorRepo) List(_ context.Context) ([]domain.DoctorProfile, error) {
	out := make([]domain.DoctorProfile, 0, len(r.profiles))
	for _, d := range r.profiles {
		out = append(out, *d)
	}
	return out, nil
}

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	nextID       int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	clone := *a
	clone.ID = "apt-" + strconv.Itoa(r.nextID)
	r.appointments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	clone := *a
	r.appointments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	delete(r.appointments, id)
	return nil
}

func (r *stubAppointmentRepo) List(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func newTestAppointmentService(t *testing.T) (*AppointmentService, string, string) {
	t.Helper()
	patients := newStubPatientRepo()
	doctors := &stubDoctorRepo{profiles: map[string]*domain.DoctorProfile{
		"doc-1": {ID: "doc-1", AccountID: "acc-9", Specialization: "cardiology"},
	}}
	patient, err := patients.Create(context.Background(), &domain.Patient{FirstName: "Jo", LastName: "Ng", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return NewAppointmentService(newStubAppointmentRepo(), patients, doctors), patient.ID, "doc-1"
}

func TestAppointmentService_Create_DefaultsToPending(t *testing.T) {
	svc, patientID, doctorID := newTestAppointmentService(t)

	apt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if apt.Status != domain.AppointmentPending {
		t.Fatalf("expected pending, got %s", apt.Status)
	}
}

func TestAppointmentService_Create_UnknownPatient(t *testing.T) {
	svc, _, doctorID := newTestAppointmentService(t)

	if _, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID: "missing",
		DoctorID:  doctorID,
		Date:      time.Now(),
	}); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestAppointmentService_Update_RejectsUnknownStatus(t *testing.T) {
	svc, patientID, doctorID := newTestAppointmentService(t)

	apt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Now(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), apt.ID, ports.UpdateAppointmentInput{Status: "rescheduled"}); err != domain.ErrInvalidAppointmentStatus {
		t.Fatalf("expected ErrInvalidAppointmentStatus, got %v", err)
	}
}

func TestAppointmentService_Update_Completes(t *testing.T) {
	svc, patientID, doctorID := newTestAppointmentService(t)

	apt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Now(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), apt.ID, ports.UpdateAppointmentInput{Status: "completed", Notes: "all clear"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.AppointmentCompleted || updated.Notes != "all clear" {
		t.Fatalf("unexpected appointment: %+v", updated)
	}
}
