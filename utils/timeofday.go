// File: utils/timeofday.go
package utils

import (
	"fmt"
	"time"
)

// Times of day are carried as minutes from midnight (e.g., 420 for 7:00 AM),
// booking dates as "YYYY-MM-DD" strings.

const MinutesPerDay = 24 * 60

// ParseTimeOfDay converts an "HH:MM" string into minutes from midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay renders minutes from midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatTimeOfDayDisplay renders minutes from midnight as a human string, e.g. "3:00 PM".
func FormatTimeOfDayDisplay(minutes int) string {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// ParseBookingDate parses a "YYYY-MM-DD" date in the given location.
func ParseBookingDate(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d, nil
}

// WeekdayMondayZero maps a time's weekday to the 0=Monday .. 6=Sunday convention.
func WeekdayMondayZero(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
