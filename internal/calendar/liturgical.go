package calendar

import (
	"fmt"
	"time"
)

// DayName returns the day of week name (Sunday, Monday, etc.)
func DayName(date time.Time) string {
	days := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	return days[date.Weekday()]
}

// Ordinal returns the ordinal form of a number (1st, 2nd, 3rd, 4th, 11th, 21st, etc.)
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
		// 11th, 12th, 13th
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// WeekOfSeason calculates which week of a liturgical season a date falls in.
// For Advent: weeks 1-4
// For Lent: weeks 1-6 (Ash Wednesday starts Lent)
// For Easter: weeks 1-7 (Easter Sunday starts week 1)
func WeekOfSeason(date time.Time, seasonStart time.Time) int {
	return DaysBetween(seasonStart, date)/7 + 1
}

// ParseDateString parses a date string in YYYY-MM-DD format
func ParseDateString(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return Date(t.Year(), t.Month(), t.Day())
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}
