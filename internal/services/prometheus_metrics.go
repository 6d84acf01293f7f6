package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ingestionRuns       *prometheus.CounterVec
	ingestionDuration   prometheus.Histogram
	ingestionStage      *prometheus.CounterVec
	recordsProcessed    prometheus.Counter
	nulledFields        *prometheus.CounterVec
	sourcePagesFetched  *prometheus.CounterVec
	sourceFetchDuration prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	customersStored     prometheus.Gauge
}

// NewPrometheusMetrics registers the pipeline collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ingestionRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingestion_runs_total",
				Help: "Total number of ingestion runs by outcome",
			},
			[]string{"status"},
		),
		ingestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingestion_duration_seconds",
				Help:    "Ingestion run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		ingestionStage: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingestion_stage_transitions_total",
				Help: "Total number of ingestion stage transitions by target stage",
			},
			[]string{"stage"},
		),
		recordsProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ingestion_records_processed_total",
				Help: "Total number of customer records upserted",
			},
		),
		nulledFields: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "normalization_nulled_fields_total",
				Help: "Total number of malformed optional fields stored as null",
			},
			[]string{"field"},
		),
		sourcePagesFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_pages_fetched_total",
				Help: "Total number of upstream page requests by outcome",
			},
			[]string{"status"},
		),
		sourceFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "source_page_fetch_duration_seconds",
				Help:    "Upstream page request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		customersStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_stored",
				Help: "Number of customer rows in the store after the last successful run",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "ingestion_run":
		if status != "" {
			m.ingestionRuns.WithLabelValues(status).Inc()
		}
	case "ingestion_stage":
		if stage := tags["stage"]; stage != "" {
			m.ingestionStage.WithLabelValues(stage).Inc()
		}
	case "field_nulled":
		if field := tags["field"]; field != "" {
			m.nulledFields.WithLabelValues(field).Inc()
		}
	case "source_page":
		if status != "" {
			m.sourcePagesFetched.WithLabelValues(status).Inc()
		}
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	}
}

// AddToCounter adds value to a counter; negative values are ignored since counters only grow
func (m *PrometheusMetrics) AddToCounter(name string, value float64, _ map[string]string) {
	if value < 0 {
		return
	}
	switch name {
	case "records_processed":
		m.recordsProcessed.Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ingestion_run":
		m.ingestionDuration.Observe(duration.Seconds())
	case "source_page":
		m.sourceFetchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customers_stored":
		m.customersStored.Set(value)
	}
}
