package leave

import "time"

// DateOnly truncates t to midnight UTC so range math compares calendar dates
// regardless of the time-of-day or zone the caller passed in.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap reports whether two inclusive date ranges share at least one
// calendar day. Adjacent ranges (one ends the day the other starts) overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = DateOnly(aStart), DateOnly(aEnd)
	bStart, bEnd = DateOnly(bStart), DateOnly(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// InclusiveDays returns the number of calendar days from start to end,
// counting both endpoints. A single-day range yields 1. A reversed range is
// an error, never a negative or zero count.
func InclusiveDays(start, end time.Time) (int, error) {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return 0, ErrReversedDateRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// OverlapDays returns how many calendar days two inclusive ranges share, or
// zero when they are disjoint.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	aStart, aEnd = DateOnly(aStart), DateOnly(aEnd)
	bStart, bEnd = DateOnly(bStart), DateOnly(bEnd)
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
