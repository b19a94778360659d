package stream

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/formatter"
)

// FileStream yields the lines of one CSV file. The file is opened lazily on
// the first Next call. When constructed with header capture, the first
// physical line is handed to the formatter as the captured header and never
// yielded as data.
type FileStream struct {
	path          string
	formatter     *formatter.Formatter
	captureHeader bool

	file   *os.File
	reader *csv.Reader
	opened bool
	closed bool
}

// NewFileStream creates a lazy stream over a single file. No filesystem
// access happens until the first Next call.
func NewFileStream(path string, f *formatter.Formatter, captureHeader bool) *FileStream {
	return &FileStream{
		path:          path,
		formatter:     f,
		captureHeader: captureHeader,
	}
}

// Path returns the file path this stream reads from.
func (s *FileStream) Path() string {
	return s.path
}

// Next returns the next line of the file. The fields of each CSV record are
// rejoined with a plain comma; embedded delimiters inside quoted fields are
// not re-escaped. Returns io.EOF once the file is exhausted, at which point
// the handle has been released.
func (s *FileStream) Next() (string, error) {
	if s.closed {
		return "", io.EOF
	}
	if !s.opened {
		if err := s.open(); err != nil {
			return "", err
		}
	}

	record, err := s.reader.Read()
	if err != nil {
		if err == io.EOF {
			// Exhaustion releases the handle exactly once. A close
			// failure on a read-only handle is not surfaced here:
			// end-of-sequence is never an error.
			_ = s.release()
			return "", io.EOF
		}
		return "", errors.WrapIO(err, "FileStream", "Next", "read csv record")
	}

	return strings.Join(record, ","), nil
}

// open opens the file and, when configured, captures the header row.
func (s *FileStream) open() error {
	file, err := os.Open(s.path)
	if err != nil {
		return errors.WrapIO(err, "FileStream", "open", "open input file")
	}

	s.file = file
	s.reader = csv.NewReader(file)
	s.reader.FieldsPerRecord = -1
	s.reader.LazyQuotes = true
	s.opened = true

	if s.captureHeader {
		header, err := s.reader.Read()
		if err != nil {
			if err == io.EOF {
				_ = s.release()
				return io.EOF
			}
			_ = s.release()
			return errors.WrapIO(err, "FileStream", "open", "read header row")
		}
		if err := s.formatter.SetHeader(header); err != nil {
			_ = s.release()
			return err
		}
	}
	return nil
}

// Close releases the file handle if still held and marks the stream
// exhausted. Idempotent; safe to call before exhaustion to abort early.
func (s *FileStream) Close() error {
	if s.closed {
		return nil
	}
	if err := s.release(); err != nil {
		return errors.WrapIO(err, "FileStream", "Close", "close input file")
	}
	return nil
}

// release transitions to the terminal state and closes the handle at most once.
func (s *FileStream) release() error {
	s.closed = true
	if s.file == nil {
		return nil
	}
	file := s.file
	s.file = nil
	s.reader = nil
	return file.Close()
}
