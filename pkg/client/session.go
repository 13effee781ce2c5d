// Package client implements the pieces a hospital system frontend keeps on
// its side of the wire: a persisted copy of the issued session and the
// role-dependent navigation rules. Nothing here grants access; the server
// re-checks every request.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Session is the client-side record of an issued token. Role and Name are
// display hints only.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Store persists the session to a single JSON file. Writes go through a
// temp file and rename so a crash never leaves a torn session behind.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the session to disk. A session without a token is rejected;
// use Clear to log out.
func (s *Store) Save(session Session) error {
	if session.Token == "" {
		return errors.New("client: refusing to save a session without a token")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("client: marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("client: create session dir: %w", err)
	}
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("client: write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("client: replace session: %w", err)
	}
	return nil
}

// Load reads the stored session. ok is false when no session exists, the
// file is unreadable, or the stored session has no token; the caller should
// treat all three identically and send the user to login.
func (s *Store) Load() (session Session, ok bool) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, false
	}
	if session.Token == "" {
		return Session{}, false
	}
	return session, true
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("client: clear session: %w", err)
	}
	return nil
}
