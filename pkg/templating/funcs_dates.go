package templating

import (
	"fmt"
	"time"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// longDate formats t like "Friday, June 20".
func longDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// isoDate formats t as YYYY-MM-DD.
func isoDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// monthYear returns a calendar heading like "June 2025".
func monthYear(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// weekdays returns the abbreviated column headers of a Sunday-first week.
func weekdays() []string {
	out := make([]string, len(weekdayHeaders))
	copy(out, weekdayHeaders)
	return out
}
