package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind an opaque bearer token. The raw
// token value is returned to the client exactly once, at issuance; the store
// keys sessions by a hash of it.
type Session struct {
	AccountID string    `json:"account_id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Claims is the per-request result of resolving a bearer token. It carries no
// persistence and is recomputed on every protected call.
type Claims struct {
	AccountID string
	Role      string
	Email     string
}
