package stream

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/formatter"
	"github.com/yskta/OpenCEP-Project/testutil"
)

func drain(t *testing.T, s LineStream) []string {
	t.Helper()
	var lines []string
	for {
		line, err := s.Next()
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestFileStream_CapturesHeader(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", testutil.ModernHeader, testutil.ModernRows[:2])

	f := formatter.New()
	s := NewFileStream(path, f, true)

	lines := drain(t, s)
	require.Len(t, lines, 2)
	assert.Equal(t, testutil.ModernRows[0], lines[0])
	assert.Equal(t, testutil.ModernRows[1], lines[1])

	// Header was captured into the formatter, not yielded.
	require.NotNil(t, f.Header())
	assert.Equal(t, "ride_id", f.Header()[0])
	assert.Equal(t, formatter.SchemaModern, f.Schema())
}

func TestFileStream_NoCaptureYieldsHeaderLine(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", testutil.ModernHeader, testutil.ModernRows[:1])

	s := NewFileStream(path, formatter.New(), false)
	lines := drain(t, s)
	require.Len(t, lines, 2)
	assert.Equal(t, testutil.ModernHeader, lines[0])
}

func TestFileStream_LazyOpen(t *testing.T) {
	// Constructing against a missing file is fine; the failure surfaces
	// on the first pull, classified as an I/O error.
	s := NewFileStream(filepath.Join(t.TempDir(), "missing.csv"), formatter.New(), true)
	_, err := s.Next()
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

func TestFileStream_EOFIsSticky(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", testutil.ModernHeader, testutil.ModernRows[:1])

	s := NewFileStream(path, formatter.New(), true)
	drain(t, s)

	for i := 0; i < 3; i++ {
		_, err := s.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestFileStream_CloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", testutil.ModernHeader, testutil.ModernRows[:2])

	s := NewFileStream(path, formatter.New(), true)

	// Abort after one line; both closes succeed, handle released once.
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFileStream_CloseBeforeFirstPull(t *testing.T) {
	s := NewFileStream(filepath.Join(t.TempDir(), "never-opened.csv"), formatter.New(), true)
	require.NoError(t, s.Close())
	_, err := s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFileStream_QuotedFieldRejoinIsLossy(t *testing.T) {
	// A quoted field containing the delimiter is split by the csv reader
	// and rejoined with plain commas: the quoting is lost. Deliberate.
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "q.csv", "a,b,c\n1,\"x, y\",3\n")

	s := NewFileStream(path, formatter.New(), true)
	lines := drain(t, s)
	require.Len(t, lines, 1)
	assert.Equal(t, "1,x, y,3", lines[0])
}

func TestFileStream_HeaderMismatchPropagates(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "a.csv", "x,y,z", []string{"1,2,3"})

	f := formatter.New()
	require.NoError(t, f.SetHeader([]string{"a", "b"}))

	s := NewFileStream(path, f, true)
	_, err := s.Next()
	require.Error(t, err)
	assert.True(t, errors.IsSetup(err))
}
