package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/api/middleware"
	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware. An empty
// account ID or role means the middleware did not run for this route; fail
// with 401 rather than proceeding with a partial identity.
func ctxClaims(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get(middleware.ContextAccountID).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	if accountID == "" || role == "" {
		return "", "", domain.ErrUnauthenticated
	}
	return accountID, role, nil
}
