package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func melbourne(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)
	return loc
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("No/SuchZone"))
	assert.Equal(t, "Australia/Melbourne", LoadLocation("").String())
}

func TestWeekOfMonth(t *testing.T) {
	loc := melbourne(t)

	// April 2023 starts on a Saturday.
	assert.Equal(t, 1, WeekOfMonth(time.Date(2023, 4, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, 2, WeekOfMonth(time.Date(2023, 4, 3, 0, 0, 0, 0, loc)))
	assert.Equal(t, 5, WeekOfMonth(time.Date(2023, 4, 24, 0, 0, 0, 0, loc)))
	assert.Equal(t, 6, WeekOfMonth(time.Date(2023, 4, 30, 0, 0, 0, 0, loc)))

	// September 2025 starts on a Monday.
	assert.Equal(t, 1, WeekOfMonth(time.Date(2025, 9, 6, 0, 0, 0, 0, loc)))
	assert.Equal(t, 4, WeekOfMonth(time.Date(2025, 9, 25, 0, 0, 0, 0, loc)))
}

func TestAtTimeConvertsHomeZoneToUTCMillis(t *testing.T) {
	loc := melbourne(t)
	day := time.Date(2025, 8, 28, 0, 0, 0, 0, loc)

	ts := AtTime(day, 9, 30, loc)
	got := time.UnixMilli(ts).In(loc)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	// AEST is UTC+10 in August, so 09:30 local is 23:30 UTC the day before.
	assert.Equal(t, 23, time.UnixMilli(ts).UTC().Hour())
	assert.Equal(t, 27, time.UnixMilli(ts).UTC().Day())
}

func TestSameDayComparesInFirstArgumentZone(t *testing.T) {
	loc := melbourne(t)
	day := time.Date(2025, 8, 28, 0, 0, 0, 0, loc)

	// 23:30 local on the 28th is 13:30 UTC the same day.
	utc := time.Date(2025, 8, 28, 13, 30, 0, 0, time.UTC)
	assert.True(t, SameDay(day, utc))

	// 15:00 UTC is already the 29th in Melbourne.
	assert.False(t, SameDay(day, time.Date(2025, 8, 28, 15, 0, 0, 0, time.UTC)))
}

func TestMonthKey(t *testing.T) {
	loc := melbourne(t)
	assert.Equal(t, "04_april", MonthKey(time.Date(2023, 4, 24, 0, 0, 0, 0, loc)))
	assert.Equal(t, "12_december", MonthKey(time.Date(2024, 12, 1, 0, 0, 0, 0, loc)))
}

func TestIsWeekend(t *testing.T) {
	loc := melbourne(t)
	assert.True(t, IsWeekend(time.Date(2025, 8, 30, 12, 0, 0, 0, loc)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2025, 8, 31, 12, 0, 0, 0, loc)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2025, 8, 28, 12, 0, 0, 0, loc))) // Thursday
}
