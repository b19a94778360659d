package stream

import (
	"io"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/formatter"
)

// MultiDirStream chains multi-file streams across directories supplied in
// caller order. Directories are never re-sorted or interleaved. A directory
// whose pattern matches no files is skipped; any other construction failure
// propagates to the caller.
type MultiDirStream struct {
	dirs      []string
	pattern   string
	formatter *formatter.Formatter
	hasHeader bool

	index       int // next directory to open
	current     *MultiFileStream
	skipped     int
	filesOpened int // from exhausted or closed directories
	closed      bool
}

// NewMultiDirStream creates a lazy stream over the given directories. No
// filesystem access happens until the first Next call.
func NewMultiDirStream(dirs []string, pattern string, f *formatter.Formatter, hasHeader bool) *MultiDirStream {
	return &MultiDirStream{
		dirs:      dirs,
		pattern:   pattern,
		formatter: f,
		hasHeader: hasHeader,
	}
}

// Next returns the next data line across all directories.
func (s *MultiDirStream) Next() (string, error) {
	if s.closed {
		return "", io.EOF
	}

	for {
		if s.current == nil {
			if err := s.openNextDir(); err != nil {
				return "", err
			}
			if s.current == nil {
				s.closed = true
				return "", io.EOF
			}
		}

		line, err := s.current.Next()
		if err == io.EOF {
			s.filesOpened += s.current.CurrentFileIndex()
			_ = s.current.Close()
			s.current = nil
			continue
		}
		if err != nil {
			return "", err
		}
		return line, nil
	}
}

// openNextDir advances to the next directory with matching files. A plain
// loop rather than recursion: a long run of empty directories must not grow
// the call stack.
func (s *MultiDirStream) openNextDir() error {
	for s.index < len(s.dirs) {
		dir := s.dirs[s.index]
		s.index++

		next, err := NewMultiFileStream(dir, s.pattern, s.formatter, s.hasHeader)
		if err != nil {
			if errors.IsNoMatchingFiles(err) {
				s.skipped++
				continue
			}
			return err
		}
		s.current = next
		return nil
	}
	return nil
}

// Close closes the currently open multi-file stream, if any, and marks the
// sequence exhausted. Idempotent; propagates downward through the layers.
func (s *MultiDirStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.current == nil {
		return nil
	}
	current := s.current
	s.current = nil
	s.filesOpened += current.CurrentFileIndex()
	return current.Close()
}

// SkippedDirs returns how many directories were skipped for having no
// matching files.
func (s *MultiDirStream) SkippedDirs() int {
	return s.skipped
}

// FilesOpened returns how many input files have been opened so far.
func (s *MultiDirStream) FilesOpened() int {
	n := s.filesOpened
	if s.current != nil {
		n += s.current.CurrentFileIndex()
	}
	return n
}
