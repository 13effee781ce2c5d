package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/api/metrics"
	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth; a request
// with no resolved role fails closed with 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		// Unknown spellings normalize to ""; never let that match an
		// absent role.
		if n := domain.NormalizeRole(r); n != "" {
			allowed[n] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				if role == "" {
					role = "anonymous"
				}
				metrics.AccessDeniedTotal.WithLabelValues(role, c.Path()).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
