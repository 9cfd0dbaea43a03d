// Package metrics defines and registers all custom Prometheus metrics for
// the appointment scheduling API. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appointments"

// ── Lifecycle metrics ─────────────────────────────────────────────────────────

// TransitionsTotal counts successfully applied lifecycle transitions.
// Label:
//   - action: the transition applied ("create", "approve", "deny", "cancel",
//     "postpone", "complete", "no_show", "edit")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of lifecycle transitions successfully applied.",
	},
	[]string{"action"},
)

// TransitionErrorsTotal counts transitions rejected or failed.
// Labels:
//   - action: the attempted transition
//   - reason: "not_found", "forbidden", "invalid_transition", "validation", "internal"
var TransitionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transition_errors_total",
		Help:      "Total number of lifecycle transitions that failed, by reason.",
	},
	[]string{"action", "reason"},
)

// TransitionDuration measures how long a transition takes end-to-end,
// including the authorization check and the conditional store write.
var TransitionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "transition_duration_seconds",
		Help:      "Duration of lifecycle transitions from entry to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)

// ── Broadcast metrics ─────────────────────────────────────────────────────────

// BroadcastSubscribers tracks the number of live subscriptions per office.
var BroadcastSubscribers = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "broadcast_subscribers",
		Help:      "Current number of active broadcast subscribers per office.",
	},
	[]string{"office_id"},
)

// BroadcastEventsTotal counts events fanned out, by lifecycle event type.
var BroadcastEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_events_total",
		Help:      "Total number of lifecycle events published to subscribers.",
	},
	[]string{"type"},
)

// BroadcastDroppedTotal counts events dropped because a subscriber's buffer
// was full (drop-oldest policy).
var BroadcastDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_dropped_total",
		Help:      "Total number of events dropped from slow subscriber buffers.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts delivery attempts.
// Labels:
//   - kind: the lifecycle event kind that triggered the notification
//   - result: "sent", "failed", "deduplicated"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification deliveries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
