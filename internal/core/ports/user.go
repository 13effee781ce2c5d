package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// CreateUserInput carries an admin-issued account creation. Unlike public
// registration, any canonical role may be assigned.
type CreateUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID string
}

// UpdateUserInput carries a partial account update; empty fields are left
// unchanged. Password, when set, is re-hashed.
type UpdateUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID string
}

// UserService is the admin-facing account management surface.
type UserService interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.Account, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
