package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	if _, ok := store.Load(); ok {
		t.Fatalf("expected no session before save")
	}

	saved := Session{Token: "tok_abc", Role: "ADMIN", Name: "Alice", Email: "alice@example.com"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok := store.Load()
	if !ok {
		t.Fatalf("expected session after save")
	}
	if loaded != saved {
		t.Fatalf("loaded %+v, want %+v", loaded, saved)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("expected no session after clear")
	}
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(Session{Role: "ADMIN"}); err == nil {
		t.Fatalf("expected error saving session without token")
	}
}

func TestStore_LoadIgnoresTokenlessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"role":"ADMIN"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, ok := NewStore(path).Load(); ok {
		t.Fatalf("session without token must read as unauthenticated")
	}
}

func TestStore_LoadIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, ok := NewStore(path).Load(); ok {
		t.Fatalf("corrupt session must read as unauthenticated")
	}
}

func TestStore_ClearMissingIsNoError(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	if err := store.Clear(); err != nil {
		t.Fatalf("clear of absent session: %v", err)
	}
}
