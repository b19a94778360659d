package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteThrough_ImmediatelyVisible(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "out.txt", WriteThrough, nil)
	require.NoError(t, err)

	require.NoError(t, s.Append("a"))
	require.NoError(t, s.Append("b"))

	// Visible before Close
	assert.Equal(t, "ab", readFile(t, s.Path()))

	require.NoError(t, s.Close())
	assert.Equal(t, "ab", readFile(t, s.Path()))
}

func TestBuffered_DurableOnlyAtClose(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "out.txt", Buffered, nil)
	require.NoError(t, err)

	require.NoError(t, s.Append("a"))
	require.NoError(t, s.Append("b"))

	// File exists but stays empty until Close
	assert.Equal(t, "", readFile(t, s.Path()))

	require.NoError(t, s.Close())
	assert.Equal(t, "ab", readFile(t, s.Path()))
}

func TestSink_CreatesDestinationDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	s, err := New(dir, "out.txt", WriteThrough, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestSink_AppendAfterCloseFails(t *testing.T) {
	s, err := New(t.TempDir(), "out.txt", Buffered, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Append("late")
	require.Error(t, err)
}

func TestSink_CloseIdempotent(t *testing.T) {
	s, err := New(t.TempDir(), "out.txt", Buffered, nil)
	require.NoError(t, err)
	require.NoError(t, s.Append("x"))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.Equal(t, "x", readFile(t, s.Path()))
}

func TestSink_Items(t *testing.T) {
	s, err := New(t.TempDir(), "out.txt", WriteThrough, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Append("one"))
	require.NoError(t, s.Append("two"))
	assert.Equal(t, int64(2), s.Items())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"write_through", WriteThrough, false},
		{"buffered", Buffered, false},
		{"", Buffered, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "write_through", WriteThrough.String())
	assert.Equal(t, "buffered", Buffered.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
