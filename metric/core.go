package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the ingestion pipeline metrics.
type Metrics struct {
	// Record flow
	RecordsTotal   *prometheus.CounterVec
	EventsTotal    *prometheus.CounterVec
	HeadersSkipped prometheus.Counter
	ParseErrors    *prometheus.CounterVec

	// Source progress
	FilesOpened        prometheus.Counter
	DirectoriesSkipped prometheus.Counter

	// Pipeline state
	PipelineRunning prometheus.Gauge
	SinkItems       prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all pipeline metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "records_total",
				Help:      "Total number of data lines pulled from the stream",
			},
			[]string{"schema"},
		),

		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "events_total",
				Help:      "Total number of events built and dispatched",
			},
			[]string{"type"},
		),

		HeadersSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "headers_skipped_total",
				Help:      "Total number of duplicate header rows suppressed",
			},
		),

		ParseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "parse_errors_total",
				Help:      "Total number of lines that failed to parse",
			},
			[]string{"kind"},
		),

		FilesOpened: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "files_opened_total",
				Help:      "Total number of input files opened",
			},
		),

		DirectoriesSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "directories_skipped_total",
				Help:      "Total number of directories skipped for having no matching files",
			},
		),

		PipelineRunning: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "pipeline_running",
				Help:      "Whether an ingestion run is in progress (0 or 1)",
			},
		),

		SinkItems: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "opencep",
				Subsystem: "ingest",
				Name:      "sink_items_total",
				Help:      "Total number of items appended to the output sink",
			},
		),
	}
}

// collectors returns every metric for bulk registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.RecordsTotal,
		m.EventsTotal,
		m.HeadersSkipped,
		m.ParseErrors,
		m.FilesOpened,
		m.DirectoriesSkipped,
		m.PipelineRunning,
		m.SinkItems,
	}
}
