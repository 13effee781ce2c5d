package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

func TestUserService_Create_AllowsAdmin(t *testing.T) {
	svc := NewUserService(newStubAccountRepo(), bcrypt.MinCost)

	account, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if account.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", account.Role)
	}
}

func TestUserService_Create_RejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newStubAccountRepo(), bcrypt.MinCost)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "X",
		Email:    "x@example.com",
		Password: "secret123",
		Role:     "superuser",
	}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	account, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Staffer",
		Email:    "staffer@example.com",
		Password: "oldpass",
		Role:     "STAFF",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), account.ID, ports.UpdateUserInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("expected hash of the new password")
	}
}

func TestUserService_Update_PatientCannotGainDepartment(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	account, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Pat",
		Email:    "pat@example.com",
		Password: "secret123",
		Role:     "PATIENT",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), account.ID, ports.UpdateUserInput{DepartmentID: "dep-1"}); err != domain.ErrDepartmentNotAllowed {
		t.Fatalf("expected ErrDepartmentNotAllowed, got %v", err)
	}
}
