package service

import (
	"context"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// DepartmentService implements CRUD over departments.
type DepartmentService struct {
	repo ports.DepartmentRepository
}

func NewDepartmentService(repo ports.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, in ports.CreateDepartmentInput) (*domain.Department, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Department{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *DepartmentService) Update(ctx context.Context, id string, in ports.UpdateDepartmentInput) (*domain.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		department.Name = in.Name
	}
	if in.Description != "" {
		department.Description = in.Description
	}
	department.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, department)
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
