package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween_Inclusive(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(start, start))
	assert.Equal(t, 3, DaysBetween(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 0, DaysBetween(start, start.AddDate(0, 0, -1)))
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", DateKey(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("10/01/2026")
	assert.Error(t, err)
}

func TestParseClock_FallsBack(t *testing.T) {
	got := ParseClock("not a time", "09:00")
	assert.Equal(t, "09:00 AM", FormatClock(got))
}

func TestFormatClock(t *testing.T) {
	got := ParseClock("18:30", "09:00")
	assert.Equal(t, "06:30 PM", FormatClock(got))
}
