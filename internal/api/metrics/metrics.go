// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Registration happens through promauto at package init; HTTP-level metrics
// (latency, status codes) come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

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

// PolicyDenialsTotal counts mutations rejected by the authorization policy.
// Labels:
//   - entity: "user", "client", or "product"
//   - operation: "create", "update", or "delete"
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of operations denied by the authorization policy.",
	},
	[]string{"entity", "operation"},
)

// RecordMutationsTotal counts successful record mutations.
// Labels:
//   - entity: "user", "client", or "product"
//   - operation: "create", "update", or "delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of records created, updated, or deleted.",
	},
	[]string{"entity", "operation"},
)

// ActorCacheTotal counts actor cache lookups.
// Label:
//   - result: "hit" or "miss"
var ActorCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actor_cache_total",
		Help:      "Total number of actor cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
