package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

type stubAuditRepo struct {
	entries []domain.AuditEntry
}

func (r *stubAuditRepo) Append(_ context.Context, entry domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) ListByActor(_ context.Context, actorID string, limit int) ([]domain.AuditEntry, error) {
	var out []domain.AuditEntry
	for _, e := range r.entries {
		if e.ActorID == actorID {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestAuditService_RecordPersists(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	entry := domain.AuditEntry{
		ActorID: "acc_1",
		Role:    domain.RoleAdmin,
		Action:  "create",
		Entity:  "patients",
		At:      time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), entry); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].ActorID != "acc_1" {
		t.Fatalf("wrong actor persisted: %+v", repo.entries[0])
	}
}

func TestAuditService_ListByActorAppliesDefaultLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for i := 0; i < defaultTrailLimit+10; i++ {
		repo.entries = append(repo.entries, domain.AuditEntry{ActorID: "acc_1", Action: "update"})
	}

	entries, err := svc.ListByActor(context.Background(), "acc_1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != defaultTrailLimit {
		t.Fatalf("expected the default page size %d, got %d", defaultTrailLimit, len(entries))
	}
}

func TestAuditService_DropsActorlessEntries(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	if err := svc.Record(context.Background(), domain.AuditEntry{Action: "create"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("actorless entry must be dropped, got %d entries", len(repo.entries))
	}
}
