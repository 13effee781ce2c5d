package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

// AuditHandler serves the admin-facing view over the audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type listAuditRequest struct {
	ActorID string `query:"actor_id" validate:"required"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// List returns an actor's recorded actions, newest first.
//
// @Summary      List audit entries for an actor
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        actor_id  query    string  true   "Actor account id"
// @Param        limit     query    int     false  "Page size (default 50, max 200)"
// @Success      200  {array}   domain.AuditEntry
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]map[string]string
// @Router       /audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	var req listAuditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entries, err := h.service.ListByActor(c.Request().Context(), req.ActorID, req.Limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
