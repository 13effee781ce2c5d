package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/api/metrics"
	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	ContextAccountID = "account_id"
	ContextRole      = "role"
	ContextEmail     = "email"
)

// Auth resolves the bearer token against the session store and injects the
// caller's identity into context. Every failure mode returns the same 401;
// callers cannot distinguish a missing header from a revoked token.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return deny(c)
			}

			claims, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				return deny(c)
			}

			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextEmail, claims.Email)

			return next(c)
		}
	}
}

func deny(c echo.Context) error {
	metrics.AccessDeniedTotal.WithLabelValues("anonymous", c.Path()).Inc()
	return domain.ErrUnauthenticated
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" for any other shape.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
