package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the audit
// log. Entries with no actor are dropped: every audited action happens inside
// an authenticated session.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) error {
	if entry.ActorID == "" || entry.Action == "" {
		s.log.Debug().Str("action", entry.Action).Msg("audit entry without actor dropped")
		return nil
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().
		Str("actor_id", entry.ActorID).
		Str("action", entry.Action).
		Str("entity", entry.Entity).
		Msg("audit entry recorded")

	return nil
}

const defaultTrailLimit = 50

// ListByActor returns an actor's most recent entries, newest first. A
// non-positive limit falls back to the default page size.
func (s *auditService) ListByActor(ctx context.Context, actorID string, limit int) ([]domain.AuditEntry, error) {
	if actorID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultTrailLimit
	}
	entries, err := s.repo.ListByActor(ctx, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit trail: %w", err)
	}
	return entries, nil
}
