package utils

import (
	"strings"
	"time"
)

// DefaultTimezone is the organization's home timezone. All generated
// timestamps are interpreted here before conversion to UTC epoch millis, and
// all bucketing is computed here unless a caller overrides the location.
const DefaultTimezone = "Australia/Melbourne"

// LoadLocation resolves a timezone name, falling back to UTC when the name is
// empty or unknown rather than failing the whole run.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		Log.Warn("Unknown timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day. Both are
// compared in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekOfMonth returns the 1-based week index of t within its month, with
// weeks starting on Sunday. An index of 4 or more signals the end-of-month
// crunch that raises generated mail volume.
func WeekOfMonth(t time.Time) int {
	offset := int(StartOfMonth(t).Weekday())
	return (t.Day()+offset-1)/7 + 1
}

// AtTime returns the UTC epoch milliseconds of the given wall-clock time on
// day, interpreted in loc.
func AtTime(day time.Time, hour, minute int, loc *time.Location) int64 {
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc).UnixMilli()
}

// MonthKey returns the shard key for t's month: the zero-padded month number
// joined with the lowercase English month name, e.g. "04_april".
func MonthKey(t time.Time) string {
	return strings.ToLower(t.Format("01_January"))
}
