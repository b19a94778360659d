package stream

// LineStream is a lazy, finite, non-restartable sequence of text lines with
// explicit release. Next returns io.EOF once the sequence is exhausted and
// keeps returning io.EOF on every later call; exhaustion is never an error.
// Close releases any underlying resources, may be called before exhaustion
// to abort early, and is idempotent at every layer.
//
// Implementations are single-threaded and pull-based: each Next call either
// returns a value immediately or performs a blocking filesystem open/read.
// None of them is safe for concurrent use without external synchronization.
type LineStream interface {
	Next() (string, error)
	Close() error
}
