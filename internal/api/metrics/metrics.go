// Package metrics defines and registers all custom Prometheus metrics for the
// ConnectPro marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "connectpro"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts.
// Labels:
//   - role: resolved role on success, "none" on failure
//   - result: "success", "invalid", "pending_approval", "throttled", "unavailable"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SessionsInvalidatedTotal counts persisted sessions discarded on read.
// Label:
//   - reason: currently only "corrupt" (undecodable storage entry)
var SessionsInvalidatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_invalidated_total",
		Help:      "Total number of persisted sessions discarded during validation.",
	},
	[]string{"reason"},
)

// GuardDeniedTotal counts requests rejected by a route guard.
// Label:
//   - slot: "admin_session" or "user_session"
var GuardDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denied_total",
		Help:      "Total number of requests rejected by the session route guards.",
	},
	[]string{"slot"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created service requests.
// Label:
//   - category: requested worker designation (e.g. "plumber")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by category.",
	},
	[]string{"category"},
)

// BookingEventsProcessedTotal counts audit events written by the dispatcher.
// Label:
//   - status: the booking status recorded by the event
var BookingEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_processed_total",
		Help:      "Total number of booking audit events successfully recorded.",
	},
	[]string{"status"},
)

// BookingEventsErrorsTotal counts audit events that failed recording.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var BookingEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_errors_total",
		Help:      "Total number of booking audit events that failed recording.",
	},
	[]string{"reason"},
)

// BookingQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var BookingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "booking_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
