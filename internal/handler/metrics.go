package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of successfully processed checkout events",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout processing attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "delivery_core",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkout events currently being processed",
		},
	)
)

var statusTransitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "delivery_core",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of attempted order status transitions",
	},
	[]string{"from", "to", "result"},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutDuration,
		checkoutsInProgress,

		statusTransitions,
	)
}
