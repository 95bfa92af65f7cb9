// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ProvisioningTotal counts provisioning attempts by outcome.
// Label:
//   - outcome: "ok", "compensated", "orphaned", "unknown", "rejected"
var ProvisioningTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provisioning_total",
		Help:      "Total number of staff provisioning attempts, by outcome.",
	},
	[]string{"outcome"},
)

// OrdersCreatedTotal counts newly opened orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderTransitionsTotal counts order state transitions by target state.
// Labels:
//   - state: "FINALIZED" or "CANCELLED"
//   - result: "applied", "noop" (idempotent re-finalize), "rejected"
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order state transitions, by target state and result.",
	},
	[]string{"state", "result"},
)

// MovementsRecordedTotal counts manual ledger movements by kind.
var MovementsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_recorded_total",
		Help:      "Total number of financial movements recorded, by kind.",
	},
	[]string{"kind"},
)

// EventsProcessedTotal counts order status events that completed processing.
// Labels:
//   - state: the target state applied by the event
//   - source: the device source reported by the sender
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of order status events successfully processed.",
	},
	[]string{"state", "source"},
)

// EventsErrorsTotal counts order status events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "order_not_found")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of order status events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
