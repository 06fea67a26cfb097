package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Supported year range. The Gregorian computus is meaningless before 1583
// and four-digit years keep every derived date printable as YYYY-MM-DD.
const (
	MinYear = 1583
	MaxYear = 9999
)

// ErrOutOfRange is returned when a date computation leaves MinYear..MaxYear.
var ErrOutOfRange = errors.New("date out of supported range")

// ErrInvalidDate is returned for month/day combinations that do not exist,
// such as February 30.
var ErrInvalidDate = errors.New("invalid calendar date")

// DateError reports a liturgical date that could not be computed.
// Feast names the date being derived so callers can show which entry of a
// calendar failed.
type DateError struct {
	Feast string
	Year  int
	Err   error
}

// Error implements the error interface.
func (e *DateError) Error() string {
	return fmt.Sprintf("compute %s for %d: %v", e.Feast, e.Year, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DateError) Unwrap() error {
	return e.Err
}

// Day truncates t to midnight UTC of its calendar day, keeping the wall-clock
// date of t's own location. All dates in this package are in that form.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day and rejects dates that time.Date would silently
// normalize (February 30 becomes March 2).
func Date(year int, month time.Month, day int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return t, nil
}

// AddDays moves date by a signed number of days.
func AddDays(date time.Time, days int) (time.Time, error) {
	return checkRange(Day(date).AddDate(0, 0, days))
}

// AddWeeks moves date by a signed number of weeks.
func AddWeeks(date time.Time, weeks int) (time.Time, error) {
	return AddDays(date, 7*weeks)
}

// WeekdayBefore returns the closest date strictly before date that falls on
// weekday. The search never takes more than seven steps.
func WeekdayBefore(date time.Time, weekday time.Weekday) (time.Time, error) {
	d := Day(date).AddDate(0, 0, -1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, -1)
	}
	return checkRange(d)
}

// WeekdayAfter returns the closest date strictly after date that falls on
// weekday.
func WeekdayAfter(date time.Time, weekday time.Weekday) (time.Time, error) {
	d := Day(date).AddDate(0, 0, 1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return checkRange(d)
}

// SundayOnOrBefore returns date itself when it is a Sunday, otherwise the
// Sunday before it.
func SundayOnOrBefore(date time.Time) (time.Time, error) {
	d := Day(date)
	return checkRange(d.AddDate(0, 0, -int(d.Weekday())))
}

// FindSundayBetween finds the Sunday within a date range, both ends inclusive.
// Returns false if no Sunday exists in the range.
func FindSundayBetween(year int, startMonth time.Month, startDay int, endMonth time.Month, endDay int) (time.Time, bool) {
	start, err := Date(year, startMonth, startDay)
	if err != nil {
		return time.Time{}, false
	}
	end, err := Date(year, endMonth, endDay)
	if err != nil {
		return time.Time{}, false
	}

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if current.Weekday() == time.Sunday {
			return current, true
		}
	}
	return time.Time{}, false
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / (24 * 60 * 60))
}

func checkRange(t time.Time) (time.Time, error) {
	if t.Year() < MinYear || t.Year() > MaxYear {
		return time.Time{}, fmt.Errorf("%w: %s", ErrOutOfRange, t.Format("2006-01-02"))
	}
	return t, nil
}
