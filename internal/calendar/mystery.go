package calendar

import "time"

// Mystery is one of the four sets of mysteries of the Rosary.
type Mystery int

const (
	Joyful Mystery = iota
	Sorrowful
	Glorious
	Luminous
)

// Mysteries returns all mysteries in canonical order.
func Mysteries() []Mystery {
	return []Mystery{Joyful, Sorrowful, Glorious, Luminous}
}

// String returns the English adjective, e.g. "Joyful".
func (m Mystery) String() string {
	switch m {
	case Joyful:
		return "Joyful"
	case Sorrowful:
		return "Sorrowful"
	case Glorious:
		return "Glorious"
	case Luminous:
		return "Luminous"
	default:
		return "Unknown"
	}
}

// Title returns the display title, e.g. "Joyful Mysteries of the Rosary".
func (m Mystery) Title() string {
	return m.String() + " Mysteries of the Rosary"
}

// Key returns the language-independent resource key of the mystery set,
// used as the directory of its five announcements ("gaudiosa").
func (m Mystery) Key() string {
	switch m {
	case Joyful:
		return "gaudiosa"
	case Sorrowful:
		return "dolorosa"
	case Glorious:
		return "gloriosa"
	case Luminous:
		return "luminosa"
	default:
		return ""
	}
}

// weekdayMysteries is the fixed weekly cycle used when no seasonal rule applies.
var weekdayMysteries = [7]Mystery{
	time.Sunday:    Glorious,
	time.Monday:    Joyful,
	time.Tuesday:   Sorrowful,
	time.Wednesday: Glorious,
	time.Thursday:  Luminous,
	time.Friday:    Sorrowful,
	time.Saturday:  Joyful,
}

// WeekdayMystery returns the mystery assigned to a weekday by the weekly cycle.
func WeekdayMystery(weekday time.Weekday) Mystery {
	return weekdayMysteries[weekday]
}

// DailyMystery returns the mystery to pray on date.
//
// Rules, first match wins:
//  1. Easter Sunday: Glorious.
//  2. Sundays strictly between Ash Wednesday and Easter: Sorrowful.
//  3. Sundays from the first to the fourth Sunday of Advent: Joyful.
//  4. Otherwise the weekly cycle.
//
// If Easter cannot be computed for the year only the weekly cycle is used.
func DailyMystery(date time.Time) Mystery {
	day := Day(date)
	if m, ok := seasonalMystery(day); ok {
		return m
	}
	return WeekdayMystery(day.Weekday())
}

// seasonalMystery applies the Easter, Lent and Advent overrides.
func seasonalMystery(day time.Time) (Mystery, bool) {
	easter, err := Easter(day.Year())
	if err != nil {
		return 0, false
	}

	// ============================================================================
	// 1. EASTER SUNDAY
	// ============================================================================
	if day.Equal(easter) {
		return Glorious, true
	}

	// ============================================================================
	// 2. SUNDAYS OF LENT
	// ============================================================================
	ashWednesday, err := AddDays(easter, -DaysFromEasterToAshWednesday)
	if err != nil {
		return 0, false
	}
	if day.Weekday() == time.Sunday && day.After(ashWednesday) && day.Before(easter) {
		return Sorrowful, true
	}

	// ============================================================================
	// 3. SUNDAYS OF ADVENT
	// ============================================================================
	fourthAdvent, err := FourthAdvent(day.Year())
	if err != nil {
		return 0, false
	}
	firstAdvent, err := AddWeeks(fourthAdvent, -(WeeksOfAdvent - 1))
	if err != nil {
		return 0, false
	}
	if day.Weekday() == time.Sunday && !day.Before(firstAdvent) && !day.After(fourthAdvent) {
		return Joyful, true
	}

	return 0, false
}
