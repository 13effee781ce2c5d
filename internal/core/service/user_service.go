package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// UserService is the admin-facing account management service. It is the only
// path that may assign the ADMIN role.
type UserService struct {
	accounts ports.AccountRepository
	cost     int
}

func NewUserService(accounts ports.AccountRepository, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{accounts: accounts, cost: bcryptCost}
}

func (s *UserService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.Account, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := domain.NormalizeRole(in.Role)
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if role == domain.RolePatient && in.DepartmentID != "" {
		return nil, domain.ErrDepartmentNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account, err := s.accounts.Create(ctx, &domain.Account{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         role,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		account.Name = in.Name
	}
	if in.Email != "" {
		account.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Role != "" {
		role := domain.NormalizeRole(in.Role)
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidRole
		}
		account.Role = role
	}
	if in.DepartmentID != "" {
		account.DepartmentID = in.DepartmentID
	}
	if account.Role == domain.RolePatient && account.DepartmentID != "" {
		return nil, domain.ErrDepartmentNotAllowed
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}
	account.UpdatedAt = time.Now().UTC()

	return s.accounts.Update(ctx, account)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}
