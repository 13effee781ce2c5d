package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// PaymentRepository defines persistence for payments.
type PaymentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Payment, error)
}

type CreatePaymentInput struct {
	PatientID string
	Amount    float64
	Currency  string
	Status    string
	Reference string
}

type UpdatePaymentInput struct {
	Status    string
	Reference string
}

type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	Create(ctx context.Context, in CreatePaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id string, in UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
