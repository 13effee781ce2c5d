package service

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// PaymentService implements CRUD over payments.
type PaymentService struct {
	repo     ports.PaymentRepository
	patients ports.PatientRepository
}

func NewPaymentService(repo ports.PaymentRepository, patients ports.PatientRepository) *PaymentService {
	return &PaymentService{repo: repo, patients: patients}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) Create(ctx context.Context, in ports.CreatePaymentInput) (*domain.Payment, error) {
	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, err
	}

	status := domain.PaymentStatus(in.Status)
	if in.Status == "" {
		status = domain.PaymentPending
	}
	if !domain.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidPaymentStatus
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Payment{
		PatientID: in.PatientID,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Status:    status,
		Reference: in.Reference,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *PaymentService) Update(ctx context.Context, id string, in ports.UpdatePaymentInput) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		status := domain.PaymentStatus(in.Status)
		if !domain.ValidPaymentStatus(status) {
			return nil, domain.ErrInvalidPaymentStatus
		}
		payment.Status = status
	}
	if in.Reference != "" {
		payment.Reference = in.Reference
	}
	payment.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, payment)
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
