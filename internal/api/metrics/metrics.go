// Package metrics defines and registers all custom Prometheus metrics for the
// clinic directory admin. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto when the package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinicadmin"

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of operator sign-in attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts directory users created through the two-phase flow.
// Label:
//   - role: the role assigned to the new user (e.g. "DOCTOR")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of directory users created, by role.",
	},
	[]string{"role"},
)

// UserCreateFailuresTotal counts create-user flows that did not complete.
// Label:
//   - phase: where the flow stopped ("validate", "signup", "profile")
var UserCreateFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_create_failures_total",
		Help:      "Total number of failed create-user flows, by phase.",
	},
	[]string{"phase"},
)

// DirectoryFetchDuration measures how long a full directory fetch takes.
// Label:
//   - result: "success" or "error"
var DirectoryFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_fetch_duration_seconds",
		Help:      "Duration of directory list fetches against the external service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// AuditDroppedTotal counts audit entries dropped because the recorder's
// buffer was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped due to recorder backpressure.",
	},
)
