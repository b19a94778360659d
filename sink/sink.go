package sink

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yskta/OpenCEP-Project/errors"
)

// Mode selects when appended items reach the destination file.
type Mode int

const (
	// WriteThrough serializes and writes every appended item immediately.
	WriteThrough Mode = iota
	// Buffered accumulates items in memory; one bulk write happens on
	// Close. Until then the destination file exists but stays empty.
	Buffered
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case WriteThrough:
		return "write_through"
	case Buffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "write_through":
		return WriteThrough, nil
	case "buffered", "":
		return Buffered, nil
	default:
		return 0, errors.WrapConfig(
			fmt.Errorf("mode %q is not write_through or buffered: %w", s, errors.ErrInvalidConfig),
			"Sink", "ParseMode", "parse output mode")
	}
}

// Sink writes downstream results as plain text to one destination file.
// In buffered mode Close is the only point at which data becomes durable;
// callers must guarantee it runs on every exit path. Not safe for
// concurrent use.
type Sink struct {
	path   string
	mode   Mode
	logger *slog.Logger

	file    *os.File
	buffer  []string
	items   int64
	written int64
	closed  bool
}

// New creates a sink writing to dir/name, creating dir if absent. The
// destination file is created (truncated) up front in both modes.
func New(dir, name string, mode Mode, logger *slog.Logger) (*Sink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WrapIO(err, "Sink", "New", "create output directory")
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.WrapIO(err, "Sink", "New", "create output file")
	}

	logger.Debug("sink opened", "path", path, "mode", mode.String())

	return &Sink{
		path:   path,
		mode:   mode,
		logger: logger,
		file:   file,
	}, nil
}

// Append adds one item. Write-through mode writes it to the file
// immediately; buffered mode holds it until Close. Appending to a closed
// sink is an error.
func (s *Sink) Append(item string) error {
	if s.closed {
		return errors.WrapIO(errors.ErrSinkClosed, "Sink", "Append", "append item")
	}

	if s.mode == Buffered {
		s.buffer = append(s.buffer, item)
		s.items++
		return nil
	}

	n, err := s.file.WriteString(item)
	if err != nil {
		return errors.WrapIO(err, "Sink", "Append", "write item")
	}
	s.items++
	s.written += int64(n)
	return nil
}

// Close makes buffered data durable and releases the file. Idempotent; no
// writes are defined after the first Close.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.mode == Buffered {
		for _, item := range s.buffer {
			n, err := s.file.WriteString(item)
			if err != nil {
				_ = s.file.Close()
				return errors.WrapIO(err, "Sink", "Close", "flush buffered items")
			}
			s.written += int64(n)
		}
		s.buffer = nil
	}

	if err := s.file.Close(); err != nil {
		return errors.WrapIO(err, "Sink", "Close", "close output file")
	}

	s.logger.Debug("sink closed",
		"path", s.path,
		"items", s.items,
		"bytes_written", s.written)
	return nil
}

// Path returns the destination file path.
func (s *Sink) Path() string {
	return s.path
}

// Items returns how many items have been appended.
func (s *Sink) Items() int64 {
	return s.items
}
