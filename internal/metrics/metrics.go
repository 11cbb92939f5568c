// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency by route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pgmate",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// RentersRegistered counts successful renter registrations.
	RentersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pgmate",
		Name:      "renters_registered_total",
		Help:      "Renters registered since process start.",
	})

	// BedsAllocated counts successful bed allocations.
	BedsAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pgmate",
		Name:      "beds_allocated_total",
		Help:      "Bed allocations since process start.",
	})

	// PaymentsRecorded counts successful rent payment records.
	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pgmate",
		Name:      "payments_recorded_total",
		Help:      "Rent payments recorded since process start.",
	})

	// ComplaintsByStatus counts complaint lifecycle events by resulting status.
	ComplaintsByStatus = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pgmate",
		Name:      "complaint_transitions_total",
		Help:      "Complaint creations and status transitions by resulting status.",
	}, []string{"status"})
)
