package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the pipeline metrics with the prometheus registry they
// are registered on, so a process embedding the pipeline can expose them
// however it likes.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
}

// NewRegistry creates a registry with all pipeline metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		metrics:            NewMetrics(),
	}
	for _, c := range r.metrics.collectors() {
		r.prometheusRegistry.MustRegister(c)
	}
	return r
}

// PrometheusRegistry returns the underlying prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Metrics returns the pipeline metrics.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}
