package stream

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/formatter"
	"github.com/yskta/OpenCEP-Project/testutil"
)

func TestMultiDirStream_SkipsEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	empty1 := testutil.MkDir(t, root, "202012")
	d1 := testutil.MkDir(t, root, "202101")
	empty2 := testutil.MkDir(t, root, "202102")
	d2 := testutil.MkDir(t, root, "202103")

	testutil.WriteCSV(t, d1, "trips.csv", testutil.ModernHeader, testutil.ModernRows[:2])
	testutil.WriteCSV(t, d2, "trips.csv", testutil.ModernHeader, testutil.ModernRows[2:4])

	s := NewMultiDirStream([]string{empty1, d1, empty2, d2}, "*.csv", formatter.New(), true)
	lines := drain(t, s)

	assert.Equal(t, testutil.ModernRows, lines)
	assert.Equal(t, 2, s.SkippedDirs())
}

func TestMultiDirStream_AllDirectoriesEmpty(t *testing.T) {
	root := t.TempDir()
	dirs := []string{
		testutil.MkDir(t, root, "a"),
		testutil.MkDir(t, root, "b"),
		testutil.MkDir(t, root, "c"),
	}

	s := NewMultiDirStream(dirs, "*.csv", formatter.New(), true)
	_, err := s.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, s.SkippedDirs())
}

func TestMultiDirStream_LongEmptyRun(t *testing.T) {
	// Many consecutive empty directories are skipped with a plain loop;
	// the stream still finds the data at the end of the list.
	root := t.TempDir()
	var dirs []string
	for i := 0; i < 500; i++ {
		dirs = append(dirs, testutil.MkDir(t, root, fmt.Sprintf("empty-%03d", i)))
	}
	last := testutil.MkDir(t, root, "zz-last")
	testutil.WriteCSV(t, last, "trips.csv", testutil.ModernHeader, testutil.ModernRows[:1])
	dirs = append(dirs, last)

	s := NewMultiDirStream(dirs, "*.csv", formatter.New(), true)
	lines := drain(t, s)
	require.Len(t, lines, 1)
	assert.Equal(t, 500, s.SkippedDirs())
}

func TestMultiDirStream_CallerOrderPreserved(t *testing.T) {
	// Directories are processed strictly in the order supplied, never
	// re-sorted.
	root := t.TempDir()
	d1 := testutil.MkDir(t, root, "zz")
	d2 := testutil.MkDir(t, root, "aa")

	testutil.WriteCSV(t, d1, "trips.csv", testutil.ModernHeader, testutil.ModernRows[:1])
	testutil.WriteCSV(t, d2, "trips.csv", testutil.ModernHeader, testutil.ModernRows[1:2])

	s := NewMultiDirStream([]string{d1, d2}, "*.csv", formatter.New(), true)
	lines := drain(t, s)
	assert.Equal(t, []string{testutil.ModernRows[0], testutil.ModernRows[1]}, lines)
}

func TestMultiDirStream_BadPatternPropagates(t *testing.T) {
	// Only no-matching-files is recovered; a malformed pattern is not.
	s := NewMultiDirStream([]string{t.TempDir()}, "[", formatter.New(), true)
	_, err := s.Next()
	require.Error(t, err)
	assert.False(t, errors.IsNoMatchingFiles(err))
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestMultiDirStream_CloseIdempotent(t *testing.T) {
	root := t.TempDir()
	d1 := testutil.MkDir(t, root, "d1")
	testutil.WriteCSV(t, d1, "trips.csv", testutil.ModernHeader, testutil.ModernRows)

	s := NewMultiDirStream([]string{d1}, "*.csv", formatter.New(), true)
	_, err := s.Next()
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestMultiDirStream_SharedHeaderAcrossDirectories(t *testing.T) {
	// The same formatter instance flows through every directory, so a
	// header repeated by the second directory's first file is suppressed,
	// not re-captured.
	root := t.TempDir()
	d1 := testutil.MkDir(t, root, "d1")
	d2 := testutil.MkDir(t, root, "d2")
	testutil.WriteCSV(t, d1, "trips.csv", testutil.ModernHeader, testutil.ModernRows[:1])
	testutil.WriteCSV(t, d2, "trips.csv", testutil.ModernHeader, testutil.ModernRows[1:2])

	f := formatter.New()
	s := NewMultiDirStream([]string{d1, d2}, "*.csv", f, true)
	lines := drain(t, s)
	assert.Equal(t, []string{testutil.ModernRows[0], testutil.ModernRows[1]}, lines)
}
