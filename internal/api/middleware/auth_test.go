package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

type stubAuthService struct {
	claims map[string]*domain.Claims
}

func (s *stubAuthService) Resolve(_ context.Context, token string) (*domain.Claims, error) {
	if c, ok := s.claims[token]; ok {
		return c, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (string, *domain.Account, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.Account, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) Revoke(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubAuthService) Account(context.Context, string) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{claims: map[string]*domain.Claims{
		"tok_valid": {AccountID: "acc_1", Role: domain.RoleAdmin, Email: "alice@example.com"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok_valid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(svc)(func(c echo.Context) error {
		called = true
		if c.Get(ContextAccountID) != "acc_1" {
			t.Fatalf("account_id not set")
		}
		if c.Get(ContextRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		if c.Get(ContextEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{claims: map[string]*domain.Claims{
		"abc": {AccountID: "acc_1", Role: domain.RoleStaff},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok_revoked")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
