package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketBoundaries(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, loc)

	at := func(year int, month time.Month, day, hour int) int64 {
		return time.Date(year, month, day, hour, 0, 0, 0, loc).UnixMilli()
	}

	tests := []struct {
		name string
		ts   int64
		want Bucket
	}{
		{"same morning", at(2025, 8, 28, 9), BucketToday},
		{"late yesterday", at(2025, 8, 27, 23), BucketYesterday},
		{"six days prior", at(2025, 8, 22, 9), BucketWeekday},
		{"exactly seven days prior", at(2025, 8, 21, 9), BucketThisYear},
		{"earlier this year", at(2025, 2, 14, 12), BucketThisYear},
		{"previous year", at(2024, 11, 3, 12), BucketOlder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketFor(tt.ts, now, loc))
		})
	}
}

func TestBucketSevenDayTieBreakCrossesYears(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)

	// A week-old message early in January belongs to the previous year, so
	// the fall-through lands in older rather than thisYear.
	now := time.Date(2025, 1, 5, 10, 0, 0, 0, loc)
	ts := time.Date(2024, 12, 29, 9, 0, 0, 0, loc).UnixMilli()
	assert.Equal(t, BucketOlder, BucketFor(ts, now, loc))
}

func TestFormatListTime(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, loc)

	assert.Equal(t, "09:15",
		FormatListTime(time.Date(2025, 8, 28, 9, 15, 0, 0, loc).UnixMilli(), now, loc))
	assert.Equal(t, "23:00",
		FormatListTime(time.Date(2025, 8, 27, 23, 0, 0, 0, loc).UnixMilli(), now, loc))
	assert.Equal(t, "Fri",
		FormatListTime(time.Date(2025, 8, 22, 9, 0, 0, 0, loc).UnixMilli(), now, loc))
	assert.Equal(t, "14 Feb",
		FormatListTime(time.Date(2025, 2, 14, 12, 0, 0, 0, loc).UnixMilli(), now, loc))
	assert.Equal(t, "3 Nov 2024",
		FormatListTime(time.Date(2024, 11, 3, 12, 0, 0, 0, loc).UnixMilli(), now, loc))
}
