package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Feast names. They double as resource keys for title translations.
const (
	FeastCircumcision   = "festum_circumcisionis_domini"
	FeastEpiphany       = "epiphania_domini"
	FeastPresentation   = "praesentatio_domini"
	FeastSeptuagesima   = "septuagesima"
	FeastSexagesima     = "sexagesima"
	FeastQuinquagesima  = "quinquagesima"
	FeastAshWednesday   = "dies_cinerum"
	FeastQuadragesima   = "quadragesima"
	FeastReminiscere    = "dominica_reminiscere"
	FeastOculi          = "dominica_oculi"
	FeastLaetare        = "dominica_laetare"
	FeastAnnunciation   = "annuntiatio_beatae_mariae_virginis"
	FeastPassionSunday  = "dominica_de_passione"
	FeastPalmSunday     = "dominica_in_palmis_de_passione_domini"
	FeastMaundyThursday = "dies_cenae_domini"
	FeastGoodFriday     = "dies_passionis_domini"
	FeastEaster         = "dominica_resurrectionis_domini"
	FeastEasterMonday   = "feria_secunda_paschae"
	FeastEasterTuesday  = "feria_tertia_paschae"
	FeastLowSunday      = "dominica_in_albis"
	FeastMisericordia   = "dominica_misericordia"
	FeastJubilate       = "dominica_jubilate"
	FeastCantate        = "dominica_cantate"
	FeastRogate         = "dominica_rogate"
	FeastAscension      = "ascensio_domini"
	FeastExaudi         = "dominica_exaudi"
	FeastPentecost      = "pentecostes"
	FeastTrinity        = "dominica_trinitatis"
	FeastJohnBaptist    = "nativitas_ioannis_baptistae"
	FeastMichaelmas     = "festum_sancti_michaelis"
	FeastAllSaints      = "omnium_sanctorum"
	FeastMartinmas      = "festum_sancti_martini"
	FeastFirstAdvent    = "dominica_prima_adventus"
	FeastSecondAdvent   = "dominica_secunda_adventus"
	FeastThirdAdvent    = "dominica_tertia_adventus"
	FeastFourthAdvent   = "dominica_quarta_adventus"
	FeastChristmas      = "festum_nativitatis_domini"
	FeastStephen        = "festum_sancti_stephani"
	FeastJohnEvangelist = "festum_sancti_ioannis_evangelistae"
)

// Feast is a named date of the liturgical year.
type Feast struct {
	Name string
	Date time.Time
}

// anchor identifies a previously derived date that other feasts are
// counted from.
type anchor int

const (
	anchorEaster anchor = iota
	anchorAshWednesday
	anchorQuinquagesima
	anchorPentecost
	anchorFourthAdvent
	anchorChristmas
)

// deriveFunc computes one feast from the year and the anchors derived so far.
type deriveFunc func(year int, anchors map[anchor]time.Time) (time.Time, error)

type feastRule struct {
	name   string
	derive deriveFunc
	// sets, when non-nil, records the result as an anchor for later rules.
	sets *anchor
}

func anchorRef(a anchor) *anchor { return &a }

func fixed(month time.Month, day int) deriveFunc {
	return func(year int, _ map[anchor]time.Time) (time.Time, error) {
		return Date(year, month, day)
	}
}

func daysFrom(a anchor, days int) deriveFunc {
	return func(_ int, anchors map[anchor]time.Time) (time.Time, error) {
		return AddDays(anchors[a], days)
	}
}

func weeksFrom(a anchor, weeks int) deriveFunc {
	return func(_ int, anchors map[anchor]time.Time) (time.Time, error) {
		return AddWeeks(anchors[a], weeks)
	}
}

func weekdayBefore(a anchor, weekday time.Weekday) deriveFunc {
	return func(_ int, anchors map[anchor]time.Time) (time.Time, error) {
		return WeekdayBefore(anchors[a], weekday)
	}
}

func weekdayAfter(a anchor, weekday time.Weekday) deriveFunc {
	return func(_ int, anchors map[anchor]time.Time) (time.Time, error) {
		return WeekdayAfter(anchors[a], weekday)
	}
}

func easterOf(year int, _ map[anchor]time.Time) (time.Time, error) {
	return Easter(year)
}

func sundayBeforeChristmasEve(year int, _ map[anchor]time.Time) (time.Time, error) {
	return FourthAdvent(year)
}

// anchorRules derive the dates everything else is counted from. They run
// before feastRules so that rule order in the output can follow the calendar.
var anchorRules = []feastRule{
	{FeastEaster, easterOf, anchorRef(anchorEaster)},
	{FeastAshWednesday, daysFrom(anchorEaster, -DaysFromEasterToAshWednesday), anchorRef(anchorAshWednesday)},
	{FeastQuinquagesima, weekdayBefore(anchorAshWednesday, time.Sunday), anchorRef(anchorQuinquagesima)},
	{FeastPentecost, daysFrom(anchorEaster, DaysFromEasterToPentecost), anchorRef(anchorPentecost)},
	{FeastFourthAdvent, sundayBeforeChristmasEve, anchorRef(anchorFourthAdvent)},
	{FeastChristmas, fixed(time.December, 25), anchorRef(anchorChristmas)},
}

// feastRules lists the liturgical year in calendar order.
var feastRules = []feastRule{
	{FeastCircumcision, fixed(time.January, 1), nil},
	{FeastEpiphany, fixed(time.January, 6), nil},
	{FeastPresentation, fixed(time.February, 2), nil},
	{FeastSeptuagesima, weeksFrom(anchorQuinquagesima, -2), nil},
	{FeastSexagesima, weeksFrom(anchorQuinquagesima, -1), nil},
	{FeastQuinquagesima, weeksFrom(anchorQuinquagesima, 0), nil},
	{FeastAshWednesday, daysFrom(anchorAshWednesday, 0), nil},
	{FeastQuadragesima, weeksFrom(anchorEaster, -6), nil},
	{FeastReminiscere, weeksFrom(anchorEaster, -5), nil},
	{FeastOculi, weeksFrom(anchorEaster, -4), nil},
	{FeastLaetare, weeksFrom(anchorEaster, -3), nil},
	{FeastAnnunciation, fixed(time.March, 25), nil},
	{FeastPassionSunday, weeksFrom(anchorEaster, -2), nil},
	{FeastPalmSunday, weekdayBefore(anchorEaster, time.Sunday), nil},
	{FeastMaundyThursday, weekdayBefore(anchorEaster, time.Thursday), nil},
	{FeastGoodFriday, weekdayBefore(anchorEaster, time.Friday), nil},
	{FeastEaster, daysFrom(anchorEaster, 0), nil},
	{FeastEasterMonday, weekdayAfter(anchorEaster, time.Monday), nil},
	{FeastEasterTuesday, weekdayAfter(anchorEaster, time.Tuesday), nil},
	{FeastLowSunday, weekdayAfter(anchorEaster, time.Sunday), nil},
	{FeastMisericordia, weeksFrom(anchorEaster, 2), nil},
	{FeastJubilate, weeksFrom(anchorEaster, 3), nil},
	{FeastCantate, weeksFrom(anchorEaster, 4), nil},
	{FeastRogate, weeksFrom(anchorEaster, 5), nil},
	{FeastAscension, daysFrom(anchorEaster, DaysFromEasterToAscension), nil},
	{FeastExaudi, weeksFrom(anchorEaster, 6), nil},
	{FeastPentecost, daysFrom(anchorPentecost, 0), nil},
	{FeastTrinity, weekdayAfter(anchorPentecost, time.Sunday), nil},
	{FeastJohnBaptist, fixed(time.June, 24), nil},
	{FeastMichaelmas, fixed(time.September, 29), nil},
	{FeastAllSaints, fixed(time.November, 1), nil},
	{FeastMartinmas, fixed(time.November, 11), nil},
	{FeastFirstAdvent, weeksFrom(anchorFourthAdvent, -3), nil},
	{FeastSecondAdvent, weeksFrom(anchorFourthAdvent, -2), nil},
	{FeastThirdAdvent, weeksFrom(anchorFourthAdvent, -1), nil},
	{FeastFourthAdvent, weeksFrom(anchorFourthAdvent, 0), nil},
	{FeastChristmas, daysFrom(anchorChristmas, 0), nil},
	{FeastStephen, daysFrom(anchorChristmas, 1), nil},
	{FeastJohnEvangelist, daysFrom(anchorChristmas, 2), nil},
}

// YearDates computes the named dates of the liturgical year for year, in
// calendar order. The first date that cannot be computed aborts the
// calculation with a *DateError naming that feast.
func YearDates(year int) ([]Feast, error) {
	anchors := make(map[anchor]time.Time, len(anchorRules))
	for _, rule := range anchorRules {
		date, err := derive(rule, year, anchors)
		if err != nil {
			return nil, err
		}
		anchors[*rule.sets] = date
	}

	feasts := make([]Feast, 0, len(feastRules))
	for _, rule := range feastRules {
		date, err := derive(rule, year, anchors)
		if err != nil {
			return nil, err
		}
		feasts = append(feasts, Feast{Name: rule.name, Date: date})
	}
	return feasts, nil
}

// FeastsOn returns the feasts of a computed year that fall on date.
func FeastsOn(feasts []Feast, date time.Time) []Feast {
	var out []Feast
	for _, f := range feasts {
		if SameDay(f.Date, date) {
			out = append(out, f)
		}
	}
	return out
}

func derive(rule feastRule, year int, anchors map[anchor]time.Time) (time.Time, error) {
	date, err := rule.derive(year, anchors)
	if err == nil && date.Year() != year {
		err = fmt.Errorf("%w: %s falls outside %d", ErrOutOfRange, FormatDate(date), year)
	}
	if err != nil {
		var dateErr *DateError
		if errors.As(err, &dateErr) {
			return time.Time{}, dateErr
		}
		return time.Time{}, &DateError{Feast: rule.name, Year: year, Err: err}
	}
	return date, nil
}
