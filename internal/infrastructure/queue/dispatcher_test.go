package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

type recordingAuditService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingAuditService) Record(_ context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingAuditService) ListByActor(_ context.Context, actorID string, limit int) ([]domain.AuditEntry, error) {
	var out []domain.AuditEntry
	for _, e := range s.snapshot() {
		if e.ActorID == actorID {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *recordingAuditService) snapshot() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func waitForEntries(t *testing.T, svc *recordingAuditService, n int) []domain.AuditEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := svc.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d entries, have %d", n, len(svc.snapshot()))
	return nil
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.Submit(domain.AuditEntry{ActorID: "acc_1", Action: "login", Entity: "session"})
	d.Submit(domain.AuditEntry{ActorID: "acc_2", Action: "create", Entity: "patients"})

	entries := waitForEntries(t, svc, 2)
	actors := map[string]bool{}
	for _, e := range entries {
		actors[e.ActorID] = true
	}
	if !actors["acc_1"] || !actors["acc_2"] {
		t.Fatalf("missing entries: %+v", entries)
	}
}

func TestDispatcher_PerActorOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Submit(domain.AuditEntry{ActorID: "acc_1", Action: "update", EntityID: string(rune('a' + i))})
	}

	entries := waitForEntries(t, svc, n)
	var seen []string
	for _, e := range entries {
		if e.ActorID == "acc_1" {
			seen = append(seen, e.EntityID)
		}
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("entries for one actor arrived out of order: %v", seen)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
