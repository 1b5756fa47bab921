// Package metrics defines and registers all custom Prometheus metrics for
// the Cars Arena parts store API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register themselves with the default registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carsarena"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests short-circuited by the token verifier.
// Label:
//   - reason: "missing_credential", "malformed_header", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the token verifier gate.",
	},
	[]string{"reason"},
)

// AdminChecksTotal counts role-gate decisions.
// Label:
//   - result: "allowed" or "denied"
var AdminChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_checks_total",
		Help:      "Total number of admin role checks, labelled by outcome.",
	},
	[]string{"result"},
)

// OwnershipRejectionsTotal counts requests where the resolved resource owner
// did not match the verified identity.
var OwnershipRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_rejections_total",
		Help:      "Total number of requests rejected by the ownership guard.",
	},
)

// ── Business metrics ──────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// PaymentIntentsTotal counts payment-intent requests. Idempotent replays
// count as "created" too; the handler cannot tell them apart.
// Label:
//   - result: "created" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, labelled by outcome.",
	},
	[]string{"result"},
)
