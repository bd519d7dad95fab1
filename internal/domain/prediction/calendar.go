// internal/domain/prediction/calendar.go
package prediction

import (
	"fmt"
	"time"
)

// ErrInvalidDate is returned by ParseDate for strings that are not valid
// ISO calendar dates. Raw date strings must be rejected here, at the edge,
// so the arithmetic below never sees a malformed value.
var ErrInvalidDate = fmt.Errorf("invalid ISO date")

const isoDateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) into a day-normalized
// time.Time in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a date as an ISO calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// StartOfDay truncates a timestamp to midnight UTC. All calendar
// comparisons in this package work at day granularity.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)) / (24 * time.Hour))
}

// AddDays returns d shifted forward by n calendar days. n may be zero or
// negative.
func AddDays(d time.Time, n int) time.Time {
	return StartOfDay(d).AddDate(0, 0, n)
}

// SubDays returns d shifted back by n calendar days.
func SubDays(d time.Time, n int) time.Time {
	return AddDays(d, -n)
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// IsWithinInclusive reports whether start <= d <= end at day granularity.
func IsWithinInclusive(d, start, end time.Time) bool {
	day := StartOfDay(d)
	return !day.Before(StartOfDay(start)) && !day.After(StartOfDay(end))
}
