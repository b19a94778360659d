// Package ingest drives the full pipeline: it pulls lines from a stream,
// turns them into events, hands each event to the registered handlers, and
// serializes the raw lines to the output sink.
//
// A malformed row is reported and, depending on the error policy, either
// aborts the run or is logged, counted, and stepped past. Header rows are
// never events; they are counted and skipped. Cancellation is cooperative:
// the context is checked between pulls, and in-flight filesystem reads are
// never interrupted.
//
// Typical use:
//
//	p, err := ingest.FromConfig(cfg, logger)
//	if err != nil { ... }
//	defer p.Close()
//
//	summary, err := p.Run(ctx)
package ingest
