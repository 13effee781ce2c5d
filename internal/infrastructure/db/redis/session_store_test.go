package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

type stubCommands struct {
	values      map[string][]byte
	expirations map[string]time.Duration
}

func newStubCommands() *stubCommands {
	return &stubCommands{
		values:      make(map[string][]byte),
		expirations: make(map[string]time.Duration),
	}
}

func (s *stubCommands) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	payload, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	s.values[key] = payload
	s.expirations[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *stubCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := s.values[key]; ok {
		return redis.NewStringResult(string(v), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubCommands) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			delete(s.expirations, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSessionStore_PutAppliesConfiguredTTL(t *testing.T) {
	cmds := newStubCommands()
	store := NewSessionStore(cmds, 30*time.Minute)

	if err := store.Put(context.Background(), "hash1", domain.Session{AccountID: "acc-1"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if got := cmds.expirations["session:hash1"]; got != 30*time.Minute {
		t.Fatalf("expected 30m expiration on the write, got %v", got)
	}
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	cmds := newStubCommands()
	store := NewSessionStore(cmds, 0)

	if err := store.Put(context.Background(), "hash1", domain.Session{AccountID: "acc-1"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if got := cmds.expirations["session:hash1"]; got != 0 {
		t.Fatalf("expected no expiration on the write, got %v", got)
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore(newStubCommands(), 0)

	want := domain.Session{AccountID: "acc-1", Role: domain.RoleStaff, Email: "s@example.com"}
	if err := store.Put(context.Background(), "hash1", want); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(context.Background(), "hash1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.AccountID != want.AccountID || got.Role != want.Role {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionStore_MissReportsNotFound(t *testing.T) {
	store := NewSessionStore(newStubCommands(), 0)

	if _, err := store.Get(context.Background(), "unknown"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Delete(context.Background(), "unknown"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on delete, got %v", err)
	}
}
