package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelEvent},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	PlannerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlannerOperations,
			Help: HelpTextPlannerOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	PlannerOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePlannerOperationLatency,
			Help:    HelpTextPlannerOperationTime,
			Buckets: PlannerLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	PlanNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanNodes,
			Help:    HelpTextPlanNodes,
			Buckets: PlanNodeBuckets,
		},
	)
)

// Storage Metrics
var (
	PlanCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanCacheLookups,
			Help: HelpTextPlanCacheLookups,
		},
		[]string{LabelResult},
	)

	PlanStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanStoreOperation,
			Help: HelpTextPlanStoreOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	PlanDocumentsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlanDocumentsSwept,
			Help: HelpTextPlanDocumentsSwept,
		},
	)
)

// ObservePlannerOperation records the outcome and latency of one planner call
func ObservePlannerOperation(operation string, start time.Time, err error) {
	PlannerOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	PlannerOperations.WithLabelValues(operation, outcome(err)).Inc()
}

// ObserveStoreOperation records the outcome of one saved plan store call
func ObserveStoreOperation(operation string, err error) {
	PlanStoreOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
