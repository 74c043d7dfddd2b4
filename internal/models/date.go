// ABOUTME: Calendar-date helpers shared by HRV samples, workouts and streaks.
// ABOUTME: Dates are stored as YYYY-MM-DD strings at day granularity.
package models

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the storage format for day-granularity dates.
const DateLayout = "2006-01-02"

// DateOf formats t as a storage date in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the storage date for the current local day.
func Today() string {
	return DateOf(time.Now())
}

// ParseDate accepts a storage date or a full RFC3339 timestamp and
// returns midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DaysBetween returns the whole number of days from `from` to `to`,
// rounded down. It is negative when `to` precedes `from`.
func DaysBetween(from, to string) (int, error) {
	f, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(t.Sub(f).Hours() / 24)), nil
}
