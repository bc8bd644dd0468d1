package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "printshop"

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created through the API",
		},
	)

	statusWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "orders",
			Name:      "status_writes_total",
			Help:      "Total number of order status writes through the API by target status",
		},
		[]string{"status"},
	)
)

var (
	// source is webhook or kafka; result is an entities.EventResult, failed or rejected.
	paymentEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "payments",
			Name:      "events_total",
			Help:      "Total number of payment processor events by source and result",
		},
		[]string{"source", "result"},
	)

	relayDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "payments_relay",
			Name:      "dlq_total",
			Help:      "Total number of relayed payment events written to DLQ",
		},
	)

	relayCommitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "payments_relay",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	relayProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "payments_relay",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of relayed payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	relayInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "payments_relay",
			Name:      "in_progress",
			Help:      "Number of relayed payment events currently being processed",
		},
	)
)

const (
	sourceWebhook = "webhook"
	sourceKafka   = "kafka"

	resultFailed   = "failed"
	resultRejected = "rejected"
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		statusWrites,

		paymentEvents,
		relayDLQ,
		relayCommitErrors,
		relayProcessingDuration,
		relayInProgress,
	)
}
