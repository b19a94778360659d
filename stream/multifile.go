package stream

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/formatter"
)

// MultiFileStream presents every file matching a glob pattern in one
// directory as a single logical line sequence. The matching file list is
// resolved at construction and fixed for the lifetime of the stream; files
// are read in sorted filename order.
type MultiFileStream struct {
	formatter *formatter.Formatter
	hasHeader bool

	paths          []string
	index          int // next file to open
	current        *FileStream
	currentCapture bool
	headerCaptured bool
	closed         bool
}

// NewMultiFileStream resolves pattern against dir immediately and fails
// with a no-matching-files error when nothing matches. That failure is
// fatal here; the multi-directory stream treats it as "skip this directory".
func NewMultiFileStream(dir, pattern string, f *formatter.Formatter, hasHeader bool) (*MultiFileStream, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.WrapConfig(err, "MultiFileStream", "New", "resolve glob pattern")
	}
	if len(paths) == 0 {
		return nil, errors.WrapKind(errors.KindNoMatchingFiles,
			fmt.Errorf("no files matching %q in %s: %w", pattern, dir, errors.ErrNoMatchingFiles),
			"MultiFileStream", "New", "enumerate input files")
	}
	sort.Strings(paths)

	return &MultiFileStream{
		formatter: f,
		hasHeader: hasHeader,
		paths:     paths,
	}, nil
}

// Next returns the next data line across the file sequence. The first file
// is opened with header capture enabled; later files with capture disabled,
// their repeated header rows recognized by the formatter and suppressed so
// each data row is emitted exactly once.
func (s *MultiFileStream) Next() (string, error) {
	if s.closed {
		return "", io.EOF
	}

	for {
		if s.current == nil {
			if s.index >= len(s.paths) {
				s.closed = true
				return "", io.EOF
			}
			s.currentCapture = s.hasHeader && !s.headerCaptured
			s.current = NewFileStream(s.paths[s.index], s.formatter, s.currentCapture)
			if s.hasHeader {
				s.headerCaptured = true
			}
			s.index++
		}

		line, err := s.current.Next()
		if err == io.EOF {
			// Handle already released on exhaustion; Close is idempotent.
			_ = s.current.Close()
			s.current = nil
			continue
		}
		if err != nil {
			return "", err
		}

		// Duplicate header row repeated at the top of a later file.
		if s.hasHeader && !s.currentCapture && s.formatter.IsHeader(line) {
			continue
		}
		return line, nil
	}
}

// Close closes the currently open file stream, if any, and marks the whole
// sequence exhausted. Idempotent.
func (s *MultiFileStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.current == nil {
		return nil
	}
	current := s.current
	s.current = nil
	return current.Close()
}

// FileCount returns the number of files in the fixed sequence.
func (s *MultiFileStream) FileCount() int {
	return len(s.paths)
}

// CurrentFileIndex returns the index of the next file to open; files before
// it have been opened already.
func (s *MultiFileStream) CurrentFileIndex() int {
	return s.index
}

// FilePaths returns a copy of the sorted file list fixed at construction.
func (s *MultiFileStream) FilePaths() []string {
	return append([]string(nil), s.paths...)
}
