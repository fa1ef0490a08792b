package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
	)

	paymentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "store",
			Subsystem: "payments_consumer",
			Name:      "events_in_progress",
			Help:      "Number of payment events currently being processed",
		},
	)
)

var (
	orderStatusRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "http",
			Name:      "order_status_requests_total",
			Help:      "Total number of order status requests by result",
		},
		[]string{"result"},
	)

	orderStatusRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "store",
			Subsystem: "http",
			Name:      "order_status_request_duration_seconds",
			Help:      "Histogram of order status request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderStatusRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "store",
			Subsystem: "http",
			Name:      "order_status_requests_in_progress",
			Help:      "Number of in-progress order status requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentsProcessed,
		paymentsFailed,
		paymentsDLQ,
		commitErrors,
		paymentProcessingDuration,
		paymentsInProgress,

		orderStatusRequestTotal,
		orderStatusRequestDuration,
		orderStatusRequestsInProgress,
	)
}
