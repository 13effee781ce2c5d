package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/horizonhospital/hospital-system/internal/api/handler"
	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"patient not found", domain.ErrPatientNotFound, http.StatusNotFound},
		{"account exists", domain.ErrAccountExists, http.StatusConflict},
		{"duplicate department", domain.ErrDuplicateDepartment, http.StatusConflict},
		{"invalid role", domain.ErrInvalidRole, http.StatusUnprocessableEntity},
		{"invalid appointment status", domain.ErrInvalidAppointmentStatus, http.StatusUnprocessableEntity},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_InvalidCredentialsStaysGeneric(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h(domain.ErrInvalidCredentials, c)

	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("expected the generic credentials message, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "email") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("message must not reveal which credential failed")
	}
}

func TestHTTPErrorHandler_ValidationErrors(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h(&handler.ValidationError{Fields: map[string]string{"email": "must be a valid email"}}, c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"errors"`) {
		t.Fatalf("expected errors map, got %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h(errDatabaseDown, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection string") {
		t.Fatalf("internal details must not leak")
	}
}

var errDatabaseDown = &opaqueErr{"dial tcp: connection string refused"}

type opaqueErr struct{ msg string }

func (e *opaqueErr) Error() string { return e.msg }
