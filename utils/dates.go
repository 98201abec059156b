// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDateOnly parses a "2006-01-02" date string
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// FormatDateOnly renders a time as a "2006-01-02" date string
func FormatDateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
