// Package metrics defines and registers all custom Prometheus metrics for the
// notes API. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// ── User metrics ──────────────────────────────────────────────────────────────

// UserOperationsTotal counts completed user mutations.
// Labels:
//   - operation: "create", "update" or "delete"
//   - result: "ok" or the error kind ("validation", "duplicate", "not_found", "conflict", "error")
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of user mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Note metrics ──────────────────────────────────────────────────────────────

// NoteOperationsTotal counts completed note mutations, labelled like UserOperationsTotal.
var NoteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_operations_total",
		Help:      "Total number of note mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginRateLimitedTotal counts login requests rejected by the rate limiter.
var LoginRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rate_limited_total",
		Help:      "Total number of login requests rejected with 429.",
	},
)
