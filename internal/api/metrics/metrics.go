// Package metrics defines and registers all custom Prometheus metrics for the
// FitApply job board. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitapply"

// SignupsTotal counts account registrations.
// Label:
//   - result: "created", "rejected" (validation failure) or "duplicate"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
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

// ApplicationsSubmittedTotal counts successfully created applications.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// ApplicationsDuplicateTotal counts applies rejected as duplicates.
var ApplicationsDuplicateTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_duplicate_total",
		Help:      "Total number of apply attempts rejected because the account had already applied.",
	},
)

// StatusUpdatesTotal counts admin status transitions.
// Label:
//   - status: the status applied ("pending", "accepted", "rejected")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)

// CatalogReseedsTotal counts admin catalog reseeds.
var CatalogReseedsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_reseeds_total",
		Help:      "Total number of destructive job catalog reseeds.",
	},
)
