// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exercise_tracker"

var (
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests served.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by method and route pattern.
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// UsersCreated counts users registered.
	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "users",
		Name:      "created_total",
		Help:      "Number of users registered.",
	})

	// ExercisesLogged counts exercises persisted.
	ExercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Number of exercises persisted.",
	})

	// EventsPublished counts exercise events handed to Kafka, by result (ok, error, skipped).
	EventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of exercise events published to Kafka.",
	}, []string{"result"})

	// UserCacheLookups counts user cache lookups by result (hit, miss, error).
	UserCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "user_cache",
		Name:      "lookups_total",
		Help:      "Number of user cache lookups.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		UsersCreated,
		ExercisesLogged,
		EventsPublished,
		UserCacheLookups,
	)
}
