// Package dateutil provides calendar helpers for due-date and settlement
// computations. All ledger dates are UTC dates at midnight; wall-clock time
// is never significant.
package dateutil

import "time"

// Date builds a UTC date at midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return DateOnly(time.Now())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WithDayClamped builds a date on the requested day of month, clamped to the
// last valid day when the month is shorter.
func WithDayClamped(year int, month time.Month, day int) time.Time {
	// Normalize month overflow (e.g. month 13) before clamping the day.
	norm := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = norm.Year(), norm.Month()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return Date(year, month, day)
}

// AddMonths advances a date by whole calendar months, preserving the day of
// month when possible and clamping to the end of shorter target months
// (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func AddMonths(t time.Time, months int) time.Time {
	t = DateOnly(t)
	return WithDayClamped(t.Year(), t.Month()+time.Month(months), t.Day())
}

// DaysBetween returns b - a in whole days; positive when b is after a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// SameDate reports whether two timestamps fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
