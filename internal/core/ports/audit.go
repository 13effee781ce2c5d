package ports

import (
	"context"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

// AuditRepository appends audit entries to durable storage.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	ListByActor(ctx context.Context, actorID string, limit int) ([]domain.AuditEntry, error)
}

// AuditService records audit events and serves the admin-facing trail view.
// Implementations must be safe for concurrent use; the dispatcher fans events
// across worker goroutines.
type AuditService interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	ListByActor(ctx context.Context, actorID string, limit int) ([]domain.AuditEntry, error)
}

// AuditRecorder is the producer-side surface handed to services that emit
// audit events. The dispatcher implements it without blocking callers.
type AuditRecorder interface {
	Submit(entry domain.AuditEntry)
}
