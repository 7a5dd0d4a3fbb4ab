package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "relief_calc"

// Metrics holds the Prometheus counters, histograms, and gauges for study
// evaluation, the request pipeline, and the result cache.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	StudiesEvaluated prometheus.Counter
	StudiesFailed    prometheus.Counter // undecodable requests
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Calculation metrics.
	CaseOutcomes    *prometheus.CounterVec // labels: case, outcome={calculated,invalid,incomplete,skipped}
	DesignBasisFlow prometheus.Histogram   // lb/hr

	// Result cache metrics.
	CacheLookups *prometheus.CounterVec // labels: result={hit,miss}
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total study requests read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total study results written to the sink topic.",
		}),
		StudiesEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "studies_evaluated_total",
			Help:      "Total studies evaluated over Kafka and HTTP.",
		}),
		StudiesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "studies_failed_total",
			Help:      "Total study requests that could not be decoded.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of study requests per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-evaluate-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		CaseOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "case_outcomes_total",
			Help:      "Per-case calculation outcomes.",
		}, []string{"case", "outcome"}),
		DesignBasisFlow: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "design_basis_flow_lb_per_hr",
			Help:      "Governing ASME VIII design flow per evaluated study.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_total",
			Help:      "Study result cache lookups by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesConsumed,
		m.MessagesProduced,
		m.StudiesEvaluated,
		m.StudiesFailed,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.CaseOutcomes,
		m.DesignBasisFlow,
		m.CacheLookups,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics registered on a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	prometheus.NewRegistry().MustRegister(m.collectors()...)
	return m
}
