// Package rosary models the recitation of the Rosary as a linear walk over
// (decade, bead, prayer) positions.
package rosary

import (
	"fmt"

	"github.com/emysliwietz/rosarium/internal/calendar"
)

// Prayer identifies one prayer of the Rosary.
type Prayer int

const (
	None Prayer = iota
	SignOfCross
	ApostlesCreed
	OurFather
	HailMary
	HailMaryFaith
	HailMaryHope
	HailMaryCharity
	GloryBe
	FatimaOMyJesus
	HailHolyQueen
	PrayerToStJoseph
	PrayerToStMichael
	FinalPrayer
	Laudetur
	FirstMystery
	SecondMystery
	ThirdMystery
	FourthMystery
	FifthMystery
)

var prayerNames = map[Prayer]string{
	None:              "None",
	SignOfCross:       "SignOfCross",
	ApostlesCreed:     "ApostlesCreed",
	OurFather:         "OurFather",
	HailMary:          "HailMary",
	HailMaryFaith:     "HailMaryFaith",
	HailMaryHope:      "HailMaryHope",
	HailMaryCharity:   "HailMaryCharity",
	GloryBe:           "GloryBe",
	FatimaOMyJesus:    "FatimaOMyJesus",
	HailHolyQueen:     "HailHolyQueen",
	PrayerToStJoseph:  "PrayerToStJoseph",
	PrayerToStMichael: "PrayerToStMichael",
	FinalPrayer:       "FinalPrayer",
	Laudetur:          "Laudetur",
	FirstMystery:      "FirstMystery",
	SecondMystery:     "SecondMystery",
	ThirdMystery:      "ThirdMystery",
	FourthMystery:     "FourthMystery",
	FifthMystery:      "FifthMystery",
}

// resourceKeys maps every prayer except the mysteries to its file name.
// The three triplet Hail Marys share the text of the ordinary one.
var resourceKeys = map[Prayer]string{
	SignOfCross:       "signum_crucis",
	ApostlesCreed:     "symbolum_apostolorum",
	OurFather:         "pater_noster",
	HailMary:          "ave_maria",
	HailMaryFaith:     "ave_maria",
	HailMaryHope:      "ave_maria",
	HailMaryCharity:   "ave_maria",
	GloryBe:           "gloria_patri",
	FatimaOMyJesus:    "oratio_fatimae",
	HailHolyQueen:     "salve_regina",
	PrayerToStJoseph:  "oratio_ad_sanctum_ioseph",
	PrayerToStMichael: "oratio_ad_sanctum_michaelem",
	FinalPrayer:       "oratio_ad_finem_rosarii",
	Laudetur:          "laudetur_iesus_christus",
}

var romanNumerals = [...]string{"", "I", "II", "III", "IV", "V"}

func (p Prayer) String() string {
	if name, ok := prayerNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Prayer(%d)", int(p))
}

// IsMystery reports whether p announces one of the five mysteries.
func (p Prayer) IsMystery() bool {
	return p >= FirstMystery && p <= FifthMystery
}

// MysteryNumber returns 1..5 for the mystery announcements and 0 otherwise.
func (p Prayer) MysteryNumber() int {
	if !p.IsMystery() {
		return 0
	}
	return int(p-FirstMystery) + 1
}

// MysteryFor returns the announcement of the nth mystery, or None when n is
// not in 1..5.
func MysteryFor(n int) Prayer {
	if n < 1 || n > 5 {
		return None
	}
	return FirstMystery + Prayer(n-1)
}

// ResourceKey returns the language-independent key used to look up the text
// and audio of p. Mystery announcements depend on the mystery of the day,
// e.g. "mysteria/gaudiosa_I". None and unknown prayers map to "".
func (p Prayer) ResourceKey(m calendar.Mystery) string {
	if n := p.MysteryNumber(); n > 0 {
		return fmt.Sprintf("mysteria/%s_%s", m.Key(), romanNumerals[n])
	}
	return resourceKeys[p]
}
