package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), DateOf(ts, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), DateOf(ts, jakarta))
	assert.Equal(t, DateOf(ts, time.UTC), DateOf(ts, nil))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	for _, bad := range []string{"", "2024-2-1", "04-03-2024", "2023-02-29", "2024-03-04T09:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9*60+5, m)

	for _, bad := range []string{"9:05", "24:00", "12:60", "0905", "09:05:00", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestTrailingWindow(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	from, to := TrailingWindow(day)
	assert.Equal(t, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, day, to)
}

func TestHours(t *testing.T) {
	assert.Equal(t, 8.5, Hours(8*time.Hour+30*time.Minute))
	assert.Equal(t, 8.42, Hours(8*time.Hour+25*time.Minute))
	assert.Equal(t, 0.0, Hours(0))
}
