// Package timeutil holds the wall-clock and date helpers shared by the
// section registry, routine expander, and schedule calculator.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutDate is the canonical date key format ("2026-03-10").
	LayoutDate = "2006-01-02"
	// LayoutClock is the canonical wall-clock format ("09:45").
	LayoutClock = "15:04"

	// MinutesPerDay is the exclusive upper bound of a day's minutes.
	MinutesPerDay = 24 * 60
)

// ParseClock converts a zero-padded "HH:MM" string to minutes since
// midnight. "24:00" is accepted as the end-of-day boundary.
func ParseClock(v string) (int, error) {
	if v == "24:00" {
		return MinutesPerDay, nil
	}
	t, err := time.Parse(LayoutClock, v)
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock %q: %w", v, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MinutesPerDay {
		minutes = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" date key in the local zone.
func ParseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutDate, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid date %q: %w", v, err)
	}
	return t, nil
}

// DateKey renders the date key for an instant, in its own location.
func DateKey(t time.Time) string {
	return t.Format(LayoutDate)
}

// MinuteOfDay returns the minutes elapsed since the instant's midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayStart truncates an instant to its midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole days from a to b, negative when b is
// earlier. Both instants are truncated to midnight first so DST shifts
// inside either day do not change the count.
func DaysBetween(a, b time.Time) int {
	from := DayStart(a)
	to := DayStart(b)
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

// LastDayOfMonth reports the number of days in the instant's month.
func LastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// ResolveDateKey turns user date input into a canonical date key.
// Empty input and "today" resolve to the current day; "tomorrow" and
// "yesterday" are accepted as offsets from it.
func ResolveDateKey(v string, now time.Time) (string, error) {
	switch v {
	case "", "today":
		return DateKey(now), nil
	case "tomorrow":
		return DateKey(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return DateKey(now.AddDate(0, 0, -1)), nil
	}
	t, err := ParseDate(v)
	if err != nil {
		return "", err
	}
	return DateKey(t), nil
}

// AtMinute places a minutes-since-midnight offset onto the given day.
func AtMinute(day time.Time, minutes int) time.Time {
	return DayStart(day).Add(time.Duration(minutes) * time.Minute)
}
