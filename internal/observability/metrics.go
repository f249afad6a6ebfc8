// Package observability owns the Prometheus collectors exported on /metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Roster operation label values.
const (
	OperationSignup  = "signup"
	OperationRemoval = "removal"
)

var (
	rosterOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Successful roster mutations, labeled by operation and activity.",
	}, []string{"operation", "activity"})

	rosterRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "roster",
		Name:      "rejections_total",
		Help:      "Roster mutations that failed, labeled by operation and reason.",
	}, []string{"operation", "reason"})

	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "club_signup",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of roster entries per activity.",
	}, []string{"activity"})

	publishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Roster events that could not be delivered to Kafka.",
	}, []string{"event_type"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "club_signup",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests, labeled by method and status code.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(rosterOperations, rosterRejections, rosterSize, publishFailures, httpDuration)
}

// RecordRosterChange counts a successful mutation and updates the roster gauge.
func RecordRosterChange(operation, activity string, size int) {
	rosterOperations.WithLabelValues(operation, activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// SetRosterSize primes the roster gauge, used at startup for seeded rosters.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// RecordRosterRejected counts a failed mutation.
func RecordRosterRejected(operation, reason string) {
	rosterRejections.WithLabelValues(operation, reason).Inc()
}

// RecordPublishFailure counts an undelivered roster event.
func RecordPublishFailure(eventType string) {
	publishFailures.WithLabelValues(eventType).Inc()
}

// ObserveHTTPRequest records request latency.
func ObserveHTTPRequest(method string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
