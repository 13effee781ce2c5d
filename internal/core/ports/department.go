package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// DepartmentRepository defines persistence for departments.
type DepartmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, department *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, department *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Department, error)
}

type CreateDepartmentInput struct {
	Name        string
	Description string
}

type UpdateDepartmentInput struct {
	Name        string
	Description string
}

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, in CreateDepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, id string, in UpdateDepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
