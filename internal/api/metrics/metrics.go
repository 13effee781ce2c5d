// Package metrics defines and registers all custom Prometheus metrics for the
// hospital system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts self-registrations that completed successfully.
// Label:
//   - role: the canonical role assigned to the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through self-registration.",
	},
	[]string{"role"},
)

// SessionsRevokedTotal counts sessions invalidated by logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by logout.",
	},
)

// AccessDeniedTotal counts requests rejected by the role gate.
// Labels:
//   - role: the caller's role, or "anonymous" when unauthenticated
//   - path: the route pattern that rejected the request
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"role", "path"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditRecordedTotal counts audit entries written successfully.
// Labels:
//   - action: the recorded action (e.g. "login", "create")
//   - entity: the entity the action touched (e.g. "patient")
var AuditRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_recorded_total",
		Help:      "Total number of audit entries persisted.",
	},
	[]string{"action", "entity"},
)

// AuditErrorsTotal counts audit entries that failed to persist.
// Label:
//   - reason: short description of the failure
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the current number of entries waiting in each audit
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
