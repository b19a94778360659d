package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToUnixMs(t *testing.T) {
	ref := time.Date(2021, 1, 1, 8, 0, 0, 500*int(time.Millisecond), time.UTC)
	assert.Equal(t, int64(1609488000500), ToUnixMs(ref))
	assert.Equal(t, int64(0), ToUnixMs(time.Time{}))
}

func TestFromUnixMs(t *testing.T) {
	ts := int64(1609488000500)
	got := FromUnixMs(ts)
	assert.Equal(t, ts, got.UnixMilli())
	assert.True(t, FromUnixMs(0).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2021-01-01T08:00:00Z", Format(1609488000000))
	assert.Equal(t, "", Format(0))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.False(t, IsZero(1))
}

func TestBetween(t *testing.T) {
	assert.Equal(t, time.Second, Between(1609488000000, 1609488001000))
	assert.Equal(t, time.Duration(0), Between(0, 1609488001000))
	assert.Equal(t, time.Duration(0), Between(1609488000000, 0))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Now()))
	assert.NoError(t, Validate(0))
	assert.Error(t, Validate(-1))
	assert.Error(t, Validate(32503680000001))
}
