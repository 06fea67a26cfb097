package calendar

import (
	"fmt"
	"time"
)

// Season represents a liturgical season.
type Season string

const (
	SeasonAdvent    Season = "advent"
	SeasonChristmas Season = "christmas"
	SeasonOrdinary  Season = "ordinary"
	SeasonLent      Season = "lent"
	SeasonHolyWeek  Season = "holy_week"
	SeasonEaster    Season = "easter"
)

// String returns the display name of the season.
func (s Season) String() string {
	switch s {
	case SeasonAdvent:
		return "Advent"
	case SeasonChristmas:
		return "Christmastide"
	case SeasonOrdinary:
		return "Ordinary Time"
	case SeasonLent:
		return "Lent"
	case SeasonHolyWeek:
		return "Holy Week"
	case SeasonEaster:
		return "Eastertide"
	default:
		return string(s)
	}
}

// SeasonInfo places a date within its season.
type SeasonInfo struct {
	Season Season
	// Week is the 1-based week of the season, 0 where weeks are not counted.
	Week int
}

// String renders e.g. "3rd Week of Lent" or "Ordinary Time".
func (si SeasonInfo) String() string {
	if si.Week == 0 {
		return si.Season.String()
	}
	return fmt.Sprintf("%s Week of %s", Ordinal(si.Week), si.Season)
}

// seasonBounds are the key dates of one calendar year.
type seasonBounds struct {
	baptism      time.Time
	ashWednesday time.Time
	palmSunday   time.Time
	easter       time.Time
	pentecost    time.Time
	firstAdvent  time.Time
	christmas    time.Time
}

func boundsFor(year int) (seasonBounds, error) {
	var b seasonBounds
	var err error

	if b.easter, err = Easter(year); err != nil {
		return b, err
	}
	if b.ashWednesday, err = AshWednesday(year); err != nil {
		return b, err
	}
	if b.palmSunday, err = WeekdayBefore(b.easter, time.Sunday); err != nil {
		return b, &DateError{Feast: FeastPalmSunday, Year: year, Err: err}
	}
	if b.pentecost, err = Pentecost(year); err != nil {
		return b, err
	}
	if b.firstAdvent, err = FirstAdvent(year); err != nil {
		return b, err
	}
	if b.christmas, err = Date(year, time.December, 25); err != nil {
		return b, &DateError{Feast: FeastChristmas, Year: year, Err: err}
	}

	// Christmastide runs through the Baptism of the Lord, the Sunday after
	// Epiphany.
	baptism, ok := FindSundayBetween(year, time.January, 7, time.January, 13)
	if !ok {
		return b, &DateError{Feast: "baptismus_domini", Year: year, Err: ErrInvalidDate}
	}
	b.baptism = baptism
	return b, nil
}

// SeasonOf resolves the liturgical season of date.
//
// The checks run in calendar order and the first match wins, so the
// boundaries are half-open: Lent ends where Holy Week begins.
func SeasonOf(date time.Time) (SeasonInfo, error) {
	day := Day(date)
	b, err := boundsFor(day.Year())
	if err != nil {
		return SeasonInfo{}, err
	}

	// ============================================================================
	// 1. CHRISTMASTIDE (Jan 1 - Baptism of the Lord)
	// ============================================================================
	if !day.After(b.baptism) {
		return SeasonInfo{Season: SeasonChristmas}, nil
	}

	// ============================================================================
	// 2. ORDINARY TIME BEFORE LENT
	// ============================================================================
	if day.Before(b.ashWednesday) {
		return SeasonInfo{Season: SeasonOrdinary}, nil
	}

	// ============================================================================
	// 3. LENT (Ash Wednesday - Saturday before Palm Sunday)
	// ============================================================================
	if day.Before(b.palmSunday) {
		return SeasonInfo{Season: SeasonLent, Week: lentWeek(day, b.ashWednesday)}, nil
	}

	// ============================================================================
	// 4. HOLY WEEK
	// ============================================================================
	if day.Before(b.easter) {
		return SeasonInfo{Season: SeasonHolyWeek}, nil
	}

	// ============================================================================
	// 5. EASTERTIDE (Easter Sunday - Pentecost)
	// ============================================================================
	if !day.After(b.pentecost) {
		return SeasonInfo{Season: SeasonEaster, Week: WeekOfSeason(day, b.easter)}, nil
	}

	// ============================================================================
	// 6. ORDINARY TIME AFTER PENTECOST
	// ============================================================================
	if day.Before(b.firstAdvent) {
		return SeasonInfo{Season: SeasonOrdinary}, nil
	}

	// ============================================================================
	// 7. ADVENT
	// ============================================================================
	if day.Before(b.christmas) {
		return SeasonInfo{Season: SeasonAdvent, Week: WeekOfSeason(day, b.firstAdvent)}, nil
	}

	return SeasonInfo{Season: SeasonChristmas}, nil
}

// lentWeek counts weeks from the first Sunday of Lent; the days from Ash
// Wednesday to that Sunday are week 0.
func lentWeek(day, ashWednesday time.Time) int {
	firstSunday := ashWednesday
	for firstSunday.Weekday() != time.Sunday {
		firstSunday = firstSunday.AddDate(0, 0, 1)
	}
	if day.Before(firstSunday) {
		return 0
	}
	return WeekOfSeason(day, firstSunday)
}

// LiturgicalYear returns the starting year of the liturgical year
// that contains the given date.
//
// The liturgical year is identified by the year in which its Advent begins.
// For example, the liturgical year "2024" runs from Advent 2024 through
// the Saturday before Advent 2025.
func LiturgicalYear(date time.Time) (int, error) {
	day := Day(date)
	advent, err := FirstAdvent(day.Year())
	if err != nil {
		return 0, err
	}
	if day.Before(advent) {
		return day.Year() - 1, nil
	}
	return day.Year(), nil
}
