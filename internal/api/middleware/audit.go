package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

var methodActions = map[string]string{
	http.MethodPost:   "create",
	http.MethodPut:    "update",
	http.MethodPatch:  "update",
	http.MethodDelete: "delete",
}

// Audit submits an audit entry for every successful mutating request made by
// an authenticated caller. It must run after Auth; reads and failed requests
// are not recorded.
func Audit(recorder ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}

			action, ok := methodActions[c.Request().Method]
			if !ok || c.Response().Status >= 400 {
				return nil
			}

			actorID, _ := c.Get(ContextAccountID).(string)
			if actorID == "" {
				return nil
			}
			role, _ := c.Get(ContextRole).(string)

			recorder.Submit(domain.AuditEntry{
				ActorID:  actorID,
				Role:     role,
				Action:   action,
				Entity:   entityFromPath(c.Path()),
				EntityID: c.Param("id"),
				At:       time.Now().UTC(),
			})
			return nil
		}
	}
}

// entityFromPath derives the audited entity from the route pattern, e.g.
// "/patients/:id" becomes "patients".
func entityFromPath(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
