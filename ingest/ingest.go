package ingest

import (
	"context"
	"io"
	"log/slog"

	"github.com/yskta/OpenCEP-Project/config"
	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/event"
	"github.com/yskta/OpenCEP-Project/formatter"
	"github.com/yskta/OpenCEP-Project/metric"
	"github.com/yskta/OpenCEP-Project/sink"
	"github.com/yskta/OpenCEP-Project/stream"
)

// Summary reports what one ingestion run processed.
type Summary struct {
	Events  int
	Headers int
	Errors  int
}

// Pipeline pulls lines from a source stream, builds events, dispatches
// them to handlers, and serializes them to an optional sink. Like the
// streams it drives, a Pipeline is single-threaded.
type Pipeline struct {
	source    stream.LineStream
	formatter *formatter.Formatter
	logger    *slog.Logger

	out             *sink.Sink
	handlers        []event.Handler
	metrics         *metric.Metrics
	continueOnError bool

	// set when the source is a multi-directory stream, for progress metrics
	dirStream *stream.MultiDirStream

	closed bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSink writes each event's line to the given sink. The pipeline owns
// the sink and closes it on Close.
func WithSink(s *sink.Sink) Option {
	return func(p *Pipeline) { p.out = s }
}

// WithHandlers dispatches each event to the given handlers in order.
func WithHandlers(handlers ...event.Handler) Option {
	return func(p *Pipeline) { p.handlers = append(p.handlers, handlers...) }
}

// WithMetrics instruments the run with pipeline metrics.
func WithMetrics(m *metric.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithContinueOnError keeps the run going past malformed rows, logging and
// counting them, instead of aborting on the first one.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) { p.continueOnError = continueOnError }
}

// New creates a pipeline over an already-constructed source stream.
func New(source stream.LineStream, f *formatter.Formatter, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:    source,
		formatter: f,
		logger:    slog.Default(),
	}
	if ds, ok := source.(*stream.MultiDirStream); ok {
		p.dirStream = ds
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromConfig builds the full pipeline a configuration describes: the
// formatter, the multi-directory stream, and the sink when enabled.
func FromConfig(cfg config.Config, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	f := formatter.New()
	source := stream.NewMultiDirStream(cfg.Directories, cfg.Pattern, f, cfg.HasHeader)

	all := []Option{
		WithLogger(logger),
		WithContinueOnError(cfg.ContinueOnError),
	}
	if cfg.Output.Enabled() {
		mode, err := sink.ParseMode(cfg.Output.Mode)
		if err != nil {
			return nil, err
		}
		out, err := sink.New(cfg.Output.Directory, cfg.Output.FileName, mode, logger)
		if err != nil {
			return nil, err
		}
		all = append(all, WithSink(out))
	}
	all = append(all, opts...)

	return New(source, f, all...), nil
}

// Run pulls the source to exhaustion, or until the context is cancelled or
// a non-recoverable failure surfaces. The returned Summary covers whatever
// was processed, even on error. Run does not close the pipeline; callers
// must guarantee Close runs on every exit path so buffered sink data
// becomes durable.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if p.metrics != nil {
		p.metrics.PipelineRunning.Set(1)
		defer p.metrics.PipelineRunning.Set(0)
		defer p.flushProgress()
	}

	for {
		// Cancellation is cooperative: checked between pulls.
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		line, err := p.source.Next()
		if err == io.EOF {
			p.logger.Info("source exhausted",
				"events", summary.Events,
				"headers_skipped", summary.Headers,
				"errors", summary.Errors)
			return summary, nil
		}
		if err != nil {
			return summary, err
		}

		e, ok, err := event.New(line, p.formatter)
		if err != nil {
			summary.Errors++
			kind := errors.KindOf(err)
			if p.metrics != nil {
				p.metrics.ParseErrors.WithLabelValues(kind.String()).Inc()
			}
			p.logger.Warn("line failed to parse",
				"kind", kind.String(),
				"error", err,
				"line", line)
			if !p.continueOnError {
				return summary, err
			}
			continue
		}
		if !ok {
			summary.Headers++
			if p.metrics != nil {
				p.metrics.HeadersSkipped.Inc()
			}
			continue
		}

		summary.Events++
		if p.metrics != nil {
			p.metrics.RecordsTotal.WithLabelValues(p.formatter.Schema().String()).Inc()
			p.metrics.EventsTotal.WithLabelValues(e.Type()).Inc()
		}

		for _, h := range p.handlers {
			if err := h.HandleEvent(e); err != nil {
				return summary, errors.Wrap(err, "Pipeline", "Run", "dispatch event")
			}
		}

		if p.out != nil {
			if err := p.out.Append(e.Raw() + "\n"); err != nil {
				return summary, err
			}
			if p.metrics != nil {
				p.metrics.SinkItems.Inc()
			}
		}
	}
}

// flushProgress copies source progress counters into the metrics.
func (p *Pipeline) flushProgress() {
	if p.dirStream == nil {
		return
	}
	p.metrics.DirectoriesSkipped.Add(float64(p.dirStream.SkippedDirs()))
	p.metrics.FilesOpened.Add(float64(p.dirStream.FilesOpened()))
}

// Close releases the source stream and makes buffered sink data durable.
// Idempotent.
func (p *Pipeline) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	streamErr := p.source.Close()
	var sinkErr error
	if p.out != nil {
		sinkErr = p.out.Close()
	}
	if streamErr != nil {
		return streamErr
	}
	return sinkErr
}
