// Package metrics defines and registers all custom Prometheus metrics for
// the orientation-platform auth gateway. It is the single source of truth
// for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orientation"

// GuardDecisionsTotal counts guard evaluations.
// Labels:
//   - guard: which guard ran ("student", "admin", "permission")
//   - outcome: "granted" or "denied"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by guard and outcome.",
	},
	[]string{"guard", "outcome"},
)

// SessionRestoresTotal counts two-phase session restore attempts.
// Label:
//   - result: "verified", "expired" or "none"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// FaultSignalsTotal counts cross-cutting auth fault signals by type.
var FaultSignalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fault_signals_total",
		Help:      "Total number of auth fault signals received, by signal type.",
	},
	[]string{"type"},
)

// RedirectsSuppressedTotal counts login redirects suppressed by the
// fault handler's cooldown window.
var RedirectsSuppressedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redirects_suppressed_total",
		Help:      "Total number of unauthorized redirects suppressed by the cooldown window.",
	},
)

// TokensRefreshedTotal counts sliding token refreshes emitted via the
// New-Token response header.
var TokensRefreshedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_refreshed_total",
		Help:      "Total number of bearer tokens transparently refreshed.",
	},
)
