package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

type stubAuditService struct {
	entries []domain.AuditEntry

	gotActorID string
	gotLimit   int
}

func (s *stubAuditService) Record(_ context.Context, entry domain.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubAuditService) ListByActor(_ context.Context, actorID string, limit int) ([]domain.AuditEntry, error) {
	s.gotActorID = actorID
	s.gotLimit = limit
	var out []domain.AuditEntry
	for _, e := range s.entries {
		if e.ActorID == actorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestAuditHandler_List(t *testing.T) {
	svc := &stubAuditService{entries: []domain.AuditEntry{
		{ActorID: "acc_1", Action: "create", Entity: "patients", At: time.Now().UTC()},
		{ActorID: "acc_2", Action: "delete", Entity: "payments", At: time.Now().UTC()},
	}}
	h := NewAuditHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/audit?actor_id=acc_1&limit=10", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotActorID != "acc_1" || svc.gotLimit != 10 {
		t.Fatalf("unexpected query: actor=%q limit=%d", svc.gotActorID, svc.gotLimit)
	}
	if strings.Contains(rec.Body.String(), "acc_2") {
		t.Fatalf("other actors' entries must not leak: %s", rec.Body.String())
	}
}

func TestAuditHandler_ListRequiresActor(t *testing.T) {
	h := NewAuditHandler(&stubAuditService{})

	c, _ := newTestContext(t, http.MethodGet, "/audit", "")

	err := h.List(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["actor_id"]; !ok {
		t.Fatalf("expected actor_id field error, got %v", ve.Fields)
	}
}

func TestAuditHandler_EmptyTrailIsAnArray(t *testing.T) {
	h := NewAuditHandler(&stubAuditService{})

	c, rec := newTestContext(t, http.MethodGet, "/audit?actor_id=acc_9", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", rec.Body.String())
	}
}
