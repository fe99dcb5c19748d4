// Package metrics defines and registers all custom Prometheus metrics for
// the Startova frontend gateway. It is the single source of truth for
// metric names, labels, and help strings.
//
// Collectors are registered with the default registry via promauto at
// package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "startova"

// ── Backend client metrics ───────────────────────────────────────────────

// BackendRequestsTotal counts outbound calls to the Startova backend.
// Labels:
//   - method: HTTP method of the outbound request
//   - status: numeric response status, or "error" on transport failure
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the backend API.",
	},
	[]string{"method", "status"},
)

// BackendRequestDuration measures outbound request latency.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ──────────────────────────────────────────────────────

// SessionsStartedTotal counts sessions established through login or signup.
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions established, by entry point.",
	},
	[]string{"via"},
)

// SessionsInvalidatedTotal counts sessions torn down outside of an
// explicit logout.
// Label:
//   - reason: "unauthorized" (backend rejected the token), "expired"
//     (local token expiry pre-check), or "corrupt" (unparseable record)
var SessionsInvalidatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_invalidated_total",
		Help:      "Total number of forcibly invalidated sessions, by reason.",
	},
	[]string{"reason"},
)

// ── Screen metrics ───────────────────────────────────────────────────────

// UploadsRejectedTotal counts uploads rejected client-side before any
// network call.
// Label:
//   - reason: "size" or "type"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected by local validation.",
	},
	[]string{"reason"},
)

// MessagesSentTotal counts contact-form messages successfully sent.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent through the contact form.",
	},
)

// WatchlistTogglesTotal counts watchlist flips.
// Label:
//   - action: "add" or "remove"
var WatchlistTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watchlist_toggles_total",
		Help:      "Total number of watchlist toggle actions.",
	},
	[]string{"action"},
)
