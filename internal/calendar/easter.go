// Package calendar provides liturgical calendar calculations: the date of
// Easter, the moveable feasts anchored on it, the mystery of the Rosary
// assigned to a day and the liturgical season a day falls in.
//
// Every function takes the date it works on as a parameter; nothing in this
// package reads the system clock.
package calendar

import (
	"fmt"
	"time"
)

// Liturgical calendar constants
const (
	// DaysFromEasterToAshWednesday is the number of days before Easter that Ash Wednesday falls.
	// This is 46 days: 40 days of Lent + 6 Sundays (which aren't counted in Lent).
	DaysFromEasterToAshWednesday = 46

	// DaysFromEasterToAscension is the number of days after Easter for Ascension Thursday.
	DaysFromEasterToAscension = 39

	// DaysFromEasterToPentecost is the number of days after Easter for Pentecost Sunday.
	// This is 7 weeks (49 days).
	DaysFromEasterToPentecost = 49

	// WeeksOfAdvent is the number of Sundays of Advent.
	WeeksOfAdvent = 4
)

// Easter calculates the date of Easter Sunday for a given year
// using the computus algorithm for the Gregorian calendar.
//
// This is the Anonymous Gregorian algorithm (Meeus/Jones/Butcher), valid
// for every Gregorian year from 1583 on.
// Years outside MinYear..MaxYear return a *DateError wrapping ErrOutOfRange.
func Easter(year int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, &DateError{
			Feast: FeastEaster,
			Year:  year,
			Err:   fmt.Errorf("%w: year %d", ErrOutOfRange, year),
		}
	}

	// See: https://en.wikipedia.org/wiki/Computus#Anonymous_Gregorian_algorithm
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	easter, err := Date(year, time.Month(month), day)
	if err != nil {
		return time.Time{}, &DateError{Feast: FeastEaster, Year: year, Err: err}
	}
	return easter, nil
}

// AshWednesday calculates Ash Wednesday for a given year.
// Ash Wednesday marks the beginning of Lent, occurring 46 days before Easter.
func AshWednesday(year int) (time.Time, error) {
	return easterOffset(year, FeastAshWednesday, -DaysFromEasterToAshWednesday)
}

// Ascension calculates Ascension Day for a given year.
// Ascension is 39 days after Easter (always on a Thursday).
func Ascension(year int) (time.Time, error) {
	return easterOffset(year, FeastAscension, DaysFromEasterToAscension)
}

// Pentecost calculates Pentecost Sunday for a given year.
// Pentecost is 49 days after Easter (7 weeks).
func Pentecost(year int) (time.Time, error) {
	return easterOffset(year, FeastPentecost, DaysFromEasterToPentecost)
}

// FourthAdvent returns the fourth Sunday of Advent: the Sunday on or before
// December 24 of the given year.
func FourthAdvent(year int) (time.Time, error) {
	christmasEve, err := Date(year, time.December, 24)
	if err != nil {
		return time.Time{}, &DateError{Feast: FeastFourthAdvent, Year: year, Err: err}
	}
	fourth, err := SundayOnOrBefore(christmasEve)
	if err != nil {
		return time.Time{}, &DateError{Feast: FeastFourthAdvent, Year: year, Err: err}
	}
	return fourth, nil
}

// FirstAdvent returns the first Sunday of Advent, three weeks before the
// fourth. It always falls between November 27 and December 3.
func FirstAdvent(year int) (time.Time, error) {
	fourth, err := FourthAdvent(year)
	if err != nil {
		return time.Time{}, err
	}
	first, err := AddWeeks(fourth, -(WeeksOfAdvent - 1))
	if err != nil {
		return time.Time{}, &DateError{Feast: FeastFirstAdvent, Year: year, Err: err}
	}
	return first, nil
}

func easterOffset(year int, feast string, days int) (time.Time, error) {
	easter, err := Easter(year)
	if err != nil {
		return time.Time{}, err
	}
	date, err := AddDays(easter, days)
	if err != nil {
		return time.Time{}, &DateError{Feast: feast, Year: year, Err: err}
	}
	return date, nil
}
