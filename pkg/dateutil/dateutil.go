// Package dateutil provides calendar-day helpers shared by quota resets,
// streak computation and calendar windowing. All functions work on the local
// calendar day derived from wall-clock time, never UTC-normalized, so that
// every caller derives "today" the same way at midnight boundaries.
package dateutil

import "time"

// DayLayout is the canonical YYYY-MM-DD day-string layout.
const DayLayout = "2006-01-02"

// DayString formats t as a local calendar-day string.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD day string in the local location.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.Local)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayString(a) == DayString(b)
}

// IsYesterdayOf reports whether day (YYYY-MM-DD) is the calendar day
// immediately before now's day.
func IsYesterdayOf(day string, now time.Time) bool {
	return day == DayString(now.AddDate(0, 0, -1))
}

// DaysAgo returns the day string n days before now.
func DaysAgo(now time.Time, n int) string {
	return DayString(now.AddDate(0, 0, -n))
}

// RolledOver reports whether a duration-based usage window has elapsed since
// the last-use marker. A zero marker always counts as rolled over.
func RolledOver(lastUsed time.Time, now time.Time, window time.Duration) bool {
	if lastUsed.IsZero() {
		return true
	}
	return now.Sub(lastUsed) >= window
}

// AfterDay reports whether the day string a is strictly after b. Both must be
// YYYY-MM-DD; the layout sorts lexicographically, so string comparison is exact.
func AfterDay(a, b string) bool {
	return a > b
}

// BeforeDay reports whether the day string a is strictly before b.
func BeforeDay(a, b string) bool {
	return a < b
}
