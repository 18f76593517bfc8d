package utils

import "time"

// Bucket classifies a timestamp relative to "now" for the right-aligned cell
// of a mail list row.
type Bucket int

const (
	BucketToday Bucket = iota
	BucketYesterday
	BucketWeekday
	BucketThisYear
	BucketOlder
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketToday:
		return "today"
	case BucketYesterday:
		return "yesterday"
	case BucketWeekday:
		return "weekday"
	case BucketThisYear:
		return "thisYear"
	default:
		return "older"
	}
}

// BucketFor classifies a UTC epoch-millisecond timestamp against now, with
// both interpreted in loc.
//
// The weekday bucket requires the timestamp to be strictly after now minus
// seven days and strictly before the start of yesterday, so a message exactly
// seven days old falls through to thisYear or older by calendar year.
func BucketFor(ts int64, now time.Time, loc *time.Location) Bucket {
	n := now.In(loc)
	d := time.UnixMilli(ts).In(loc)

	startToday := StartOfDay(n)
	startYesterday := startToday.AddDate(0, 0, -1)
	weekAgo := n.AddDate(0, 0, -7)

	switch {
	case SameDay(d, startToday):
		return BucketToday
	case SameDay(d, startYesterday):
		return BucketYesterday
	case d.After(weekAgo) && d.Before(startYesterday):
		return BucketWeekday
	case d.Year() == n.Year():
		return BucketThisYear
	default:
		return BucketOlder
	}
}

// FormatListTime renders the right-cell label for a timestamp: a clock time
// for today/yesterday, an abbreviated day name within the last week, day and
// short month within the year, and day, short month and year beyond that.
func FormatListTime(ts int64, now time.Time, loc *time.Location) string {
	d := time.UnixMilli(ts).In(loc)
	switch BucketFor(ts, now, loc) {
	case BucketToday, BucketYesterday:
		return d.Format("15:04")
	case BucketWeekday:
		return d.Format("Mon")
	case BucketThisYear:
		return d.Format("2 Jan")
	default:
		return d.Format("2 Jan 2006")
	}
}
