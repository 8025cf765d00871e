// Package metrics defines and registers the custom Prometheus metrics of the
// MERN API. HTTP request metrics come from the echoprometheus middleware;
// the counters here track domain outcomes.
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mernapp"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts users created through the API.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// UsersUpdatedTotal counts successful partial updates.
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of users updated.",
	},
)

// UsersDeletedTotal counts deleted users. Their posts are kept.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts posts created through the API.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// ── Seed metrics ──────────────────────────────────────────────────────────────

// SeedRunsTotal counts seed requests.
// Label:
//   - result: "ok", "conflict" (another seed held the lock) or "error"
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seed runs, labelled by result.",
	},
	[]string{"result"},
)

// ── Error metrics ─────────────────────────────────────────────────────────────

// APIErrorsTotal counts error responses rendered by the central error handler.
// Label:
//   - kind: "validation", "duplicate_email", "author_not_found", "not_found",
//     "invalid_id", "seed_conflict", "route_not_found", "bad_request" or "internal"
var APIErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of error responses, labelled by kind.",
	},
	[]string{"kind"},
)
