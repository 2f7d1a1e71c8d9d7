// Package metrics defines and registers all custom Prometheus metrics
// for the HandyPro Connect API. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "handypro"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "customer", "professional", or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

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

// TokenRejectionsTotal counts bearer tokens rejected by the access guard.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "unknown_subject"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// ── Marketplace metrics ───────────────────────────────────────────────────────

// JobsCreatedTotal counts newly posted jobs.
// Label:
//   - urgency: "urgent", "normal", or "flexible"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs posted, by urgency.",
	},
	[]string{"urgency"},
)

// QuotesSubmittedTotal counts quotes submitted by professionals.
var QuotesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_submitted_total",
		Help:      "Total number of quotes submitted.",
	},
)
