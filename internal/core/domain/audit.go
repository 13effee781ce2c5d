package domain

import "time"

// AuditEntry records a security-relevant action taken by an authenticated
// actor. Entries are written asynchronously by the audit dispatcher.
type AuditEntry struct {
	ActorID  string    `json:"actor_id" bson:"actor_id"`
	Role     string    `json:"role" bson:"role"`
	Action   string    `json:"action" bson:"action"`
	Entity   string    `json:"entity" bson:"entity"`
	EntityID string    `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	At       time.Time `json:"at" bson:"at"`
}
