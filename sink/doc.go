// Package sink provides the plain-text output sink for pipeline results.
//
// A Sink has two configurations chosen at construction: write-through,
// where every appended item is written to the destination file immediately,
// and buffered, where items accumulate in memory and a single bulk write
// happens on Close. The destination directory is created if absent.
//
// Items are written exactly as given; the sink adds no separators. In
// buffered mode Close is the only point at which data becomes durable, so
// callers must guarantee it runs on every exit path:
//
//	out, err := sink.New(dir, "results.txt", sink.Buffered, logger)
//	if err != nil { ... }
//	defer out.Close()
package sink
