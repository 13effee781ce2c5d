package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// AccountRepository defines persistence for identity records. Lookup by email
// is case-insensitive; implementations normalize to lowercase.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Account, error)
}

// SessionStore persists issued bearer tokens server-side, keyed by token
// hash. A zero TTL at construction means sessions never expire.
type SessionStore interface {
	Put(ctx context.Context, tokenHash string, session domain.Session) error
	Get(ctx context.Context, tokenHash string) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         string // PATIENT (default) or STAFF; never ADMIN
	DepartmentID string
}

// AuthService issues, resolves and revokes sessions.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Resolve(ctx context.Context, token string) (*domain.Claims, error)
	Revoke(ctx context.Context, token string) error
	Account(ctx context.Context, accountID string) (*domain.Account, error)
}
