// Package period buckets calendar time into the month and quarter ranges the
// financial rollup aggregates over.
package period

import "time"

// Range is an inclusive [Start, End] window. End is the last instant of the
// period so that SQL BETWEEN on timestamps captures the whole last day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Month returns the range of a calendar month.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return Range{Start: start, End: end}
}

// Quarter returns the range of a calendar quarter (q in 1..4).
func Quarter(year, q int) Range {
	start := time.Date(year, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).Add(-time.Millisecond)
	return Range{Start: start, End: end}
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
