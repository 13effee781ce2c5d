package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

type stubDepartmentService struct {
	departments map[string]*domain.Department
}

func (s *stubDepartmentService) List(context.Context) ([]domain.Department, error) {
	out := make([]domain.Department, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (s *stubDepartmentService) Get(_ context.Context, id string) (*domain.Department, error) {
	if d, ok := s.departments[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (s *stubDepartmentService) Create(_ context.Context, in ports.CreateDepartmentInput) (*domain.Department, error) {
	for _, d := range s.departments {
		if d.Name == in.Name {
			return nil, domain.ErrDuplicateDepartment
		}
	}
	d := &domain.Department{ID: "dep_1", Name: in.Name, Description: in.Description}
	s.departments[d.ID] = d
	return d, nil
}

func (s *stubDepartmentService) Update(_ context.Context, id string, in ports.UpdateDepartmentInput) (*domain.Department, error) {
	d, ok := s.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Description != "" {
		d.Description = in.Description
	}
	return d, nil
}

func (s *stubDepartmentService) Delete(_ context.Context, id string) error {
	if _, ok := s.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(s.departments, id)
	return nil
}

func TestDepartmentHandler_Create(t *testing.T) {
	svc := &stubDepartmentService{departments: map[string]*domain.Department{}}
	h := NewDepartmentHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/departments",
		`{"name":"Cardiology","description":"Heart unit"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(svc.departments) != 1 {
		t.Fatalf("expected department to be stored")
	}
}

func TestDepartmentHandler_CreateRequiresName(t *testing.T) {
	h := NewDepartmentHandler(&stubDepartmentService{departments: map[string]*domain.Department{}})

	c, _ := newTestContext(t, http.MethodPost, "/departments", `{"description":"nameless"}`)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDepartmentHandler_CreateDuplicate(t *testing.T) {
	svc := &stubDepartmentService{departments: map[string]*domain.Department{
		"dep_0": {ID: "dep_0", Name: "Cardiology"},
	}}
	h := NewDepartmentHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/departments", `{"name":"Cardiology"}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrDuplicateDepartment) {
		t.Fatalf("expected ErrDuplicateDepartment, got %v", err)
	}
}

func TestDepartmentHandler_GetNotFound(t *testing.T) {
	h := NewDepartmentHandler(&stubDepartmentService{departments: map[string]*domain.Department{}})

	c, _ := newTestContext(t, http.MethodGet, "/departments/dep_missing", "")
	c.SetParamNames("id")
	c.SetParamValues("dep_missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &stubDepartmentService{departments: map[string]*domain.Department{
		"dep_1": {ID: "dep_1", Name: "Cardiology"},
	}}
	h := NewDepartmentHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/departments/dep_1", "")
	c.SetParamNames("id")
	c.SetParamValues("dep_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.departments) != 0 {
		t.Fatalf("expected department removed")
	}
}
