package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

const tokenBytes = 48 // 96 hex chars on the wire

// AuthService implements registration, login, session resolution and
// revocation. Tokens are opaque random values; only their SHA-256 hash ever
// reaches the session store, so a leaked store cannot be replayed.
type AuthService struct {
	accounts ports.AccountRepository
	sessions ports.SessionStore
	audit    ports.AuditRecorder
	cost     int
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, audit ports.AuditRecorder, bcryptCost int) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{accounts: accounts, sessions: sessions, audit: audit, cost: bcryptCost}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Account, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	role := domain.NormalizeRole(in.Role)
	if in.Role == "" {
		role = domain.RolePatient
	}
	// Self-registration never yields an ADMIN account; those are issued
	// through the admin-gated user resource.
	if role == "" || role == domain.RoleAdmin {
		return "", nil, domain.ErrInvalidRole
	}
	if role == domain.RolePatient && in.DepartmentID != "" {
		return "", nil, domain.ErrDepartmentNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return "", nil, err
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
		return "", nil, err
	}

	token, err := s.issue(ctx, account)
	if err != nil {
		return "", nil, err
	}
	s.record(account, "register")
	return token, account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issue(ctx, account)
	if err != nil {
		return "", nil, err
	}
	s.record(account, "login")
	return token, account, nil
}

// Resolve maps a bearer token to its claims. Empty, malformed and unknown
// tokens all fail with ErrUnauthenticated; callers learn nothing about which.
// The session pins only the identity: role and email are read back from the
// credential store on every request, so an admin changing an account's role
// takes effect on its live sessions immediately.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	sess, err := s.sessions.Get(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	account, err := s.accounts.FindByID(ctx, sess.AccountID)
	if err != nil {
		// A deleted account invalidates its sessions.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return &domain.Claims{AccountID: account.ID, Role: account.Role, Email: account.Email}, nil
}

func (s *AuthService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrSessionNotFound
	}
	hash := hashToken(token)
	sess, err := s.sessions.Get(ctx, hash)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, hash); err != nil {
		return err
	}
	s.record(&domain.Account{ID: sess.AccountID, Role: sess.Role}, "logout")
	return nil
}

func (s *AuthService) Account(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// issue generates a fresh token and persists the session keyed by its hash.
// Each issuance is independent; concurrent logins for one account coexist.
func (s *AuthService) issue(ctx context.Context, account *domain.Account) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	err := s.sessions.Put(ctx, hashToken(token), domain.Session{
		AccountID: account.ID,
		Role:      account.Role,
		Email:     account.Email,
		IssuedAt:  time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) record(account *domain.Account, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Submit(domain.AuditEntry{
		ActorID: account.ID,
		Role:    account.Role,
		Action:  action,
		Entity:  "session",
		At:      time.Now().UTC(),
	})
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
