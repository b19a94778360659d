// Package metric provides Prometheus instrumentation for the ingestion
// pipeline: records pulled, events dispatched, duplicate headers
// suppressed, parse errors by kind, files opened, directories skipped, and
// sink throughput.
//
// The core pipeline opens no network ports; metrics live on a
// prometheus.Registry owned by the embedding process, which decides
// whether and how to expose them.
package metric
