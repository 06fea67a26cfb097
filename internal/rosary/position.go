package rosary

import (
	"fmt"

	"github.com/emysliwietz/rosarium/internal/calendar"
)

const (
	// Decades is the number of decades of Hail Marys.
	Decades = 5

	introLastBead = 6
	gloryBead     = 11
	closingBead   = 12
	firstHailMary = 1
	lastHailMary  = 10
	firstTriplet  = 2
	lastTriplet   = 4
)

// PrayersForBead returns the prayers said at a bead, in order. Combinations
// outside the rosary yield an empty slice.
func PrayersForBead(decade, bead int) []Prayer {
	switch {
	case decade == 0:
		switch bead {
		case 0:
			return []Prayer{SignOfCross, ApostlesCreed}
		case 1:
			return []Prayer{OurFather}
		case 2:
			return []Prayer{HailMaryFaith}
		case 3:
			return []Prayer{HailMaryHope}
		case 4:
			return []Prayer{HailMaryCharity}
		case 5:
			return []Prayer{GloryBe}
		case introLastBead:
			return []Prayer{FirstMystery, OurFather}
		}
	case decade >= 1 && decade <= Decades:
		switch {
		case bead == 0:
			return []Prayer{MysteryFor(decade), OurFather}
		case bead >= firstHailMary && bead <= lastHailMary:
			return []Prayer{HailMary}
		case bead == gloryBead:
			return []Prayer{GloryBe, FatimaOMyJesus}
		case bead == closingBead && decade == Decades:
			return []Prayer{HailHolyQueen, PrayerToStJoseph, PrayerToStMichael, FinalPrayer, Laudetur, SignOfCross}
		}
	}
	return nil
}

// Position is a place in the recitation of the Rosary. The zero value is not
// usable; create one with New. A Position is not safe for concurrent use.
type Position struct {
	decade    int
	bead      int
	prayer    int
	numPrayer int
}

// New returns a position at the first prayer of the crucifix.
func New() *Position {
	p := &Position{}
	p.moveTo(0, 0, false)
	return p
}

func (p *Position) Decade() int      { return p.decade }
func (p *Position) Bead() int        { return p.bead }
func (p *Position) PrayerIndex() int { return p.prayer }
func (p *Position) NumPrayers() int  { return p.numPrayer }

// AtStart reports whether p is the first prayer of the rosary.
func (p *Position) AtStart() bool {
	return p.decade == 0 && p.bead == 0 && p.prayer == 1
}

// AtEnd reports whether p is the last prayer of the rosary.
func (p *Position) AtEnd() bool {
	return p.decade == Decades && p.bead == closingBead && p.prayer == p.numPrayer
}

// moveTo lands on a bead. Moving forward lands on its first prayer,
// moving backward on its last.
func (p *Position) moveTo(decade, bead int, last bool) {
	p.decade = decade
	p.bead = bead
	p.numPrayer = len(PrayersForBead(decade, bead))
	p.prayer = 1
	if last {
		p.prayer = p.numPrayer
	}
}

// Advance moves one prayer forward. At the end of the rosary it does nothing.
func (p *Position) Advance() {
	if p.prayer < p.numPrayer {
		p.prayer++
		return
	}

	switch {
	case p.decade == 0 && p.bead < introLastBead:
		p.moveTo(0, p.bead+1, false)
	case p.decade == 0:
		// The first mystery is announced at the end of the introduction,
		// so the first decade starts at its first Hail Mary.
		p.moveTo(1, firstHailMary, false)
	case p.bead < gloryBead:
		p.moveTo(p.decade, p.bead+1, false)
	case p.bead == gloryBead && p.decade < Decades:
		p.moveTo(p.decade+1, 0, false)
	case p.bead == gloryBead:
		p.moveTo(Decades, closingBead, false)
	}
}

// Recede moves one prayer backward, undoing Advance. At the start of the
// rosary it does nothing.
func (p *Position) Recede() {
	if p.prayer > 1 {
		p.prayer--
		return
	}

	switch {
	case p.decade == 0 && p.bead == 0:
	case p.decade == 0:
		p.moveTo(0, p.bead-1, true)
	case p.decade == 1 && p.bead <= firstHailMary:
		p.moveTo(0, introLastBead, true)
	case p.bead == 0:
		p.moveTo(p.decade-1, gloryBead, true)
	default:
		p.moveTo(p.decade, p.bead-1, true)
	}
}

// CurrentPrayers returns all prayers of the current bead.
func (p *Position) CurrentPrayers() []Prayer {
	return PrayersForBead(p.decade, p.bead)
}

// CurrentPrayer returns the prayer being said, or None if the bead has no
// prayers.
func (p *Position) CurrentPrayer() Prayer {
	prayers := p.CurrentPrayers()
	if p.prayer < 1 || p.prayer > len(prayers) {
		return None
	}
	return prayers[p.prayer-1]
}

// ProgressDescription describes where on the beads p is, e.g.
// "at the 3rd bead of the 2nd decade".
func (p *Position) ProgressDescription() string {
	d, b := p.decade, p.bead
	switch {
	case d == 0 && b == 0:
		return "at the crucifix"
	case d == 0 && b == 1:
		return "at the 1st bead"
	case d == 0 && b >= firstTriplet && b <= lastTriplet:
		return fmt.Sprintf("at the %s bead of the triplet", calendar.Ordinal(b-1))
	case d == 0 && b == 5:
		return "after the triplet"
	case d == 0 && b == introLastBead:
		return "before the 1st decade"
	case b == 0:
		return fmt.Sprintf("before the %s decade", calendar.Ordinal(d))
	case b == gloryBead:
		return fmt.Sprintf("after the %s decade", calendar.Ordinal(d))
	case b == closingBead:
		return "at the closing prayer"
	default:
		return fmt.Sprintf("at the %s bead of the %s decade", calendar.Ordinal(b), calendar.Ordinal(d))
	}
}

// Step returns the number of Advance calls needed to reach p from New.
func (p *Position) Step() int {
	steps := 0
	q := New()
	for !q.equal(p) && !q.AtEnd() {
		q.Advance()
		steps++
	}
	return steps
}

// TotalSteps is the number of Advance calls from the first prayer to the last.
func TotalSteps() int {
	steps := 0
	q := New()
	for !q.AtEnd() {
		q.Advance()
		steps++
	}
	return steps
}

func (p *Position) equal(o *Position) bool {
	return *p == *o
}

func (p *Position) String() string {
	return fmt.Sprintf("(%d,%d,%d/%d)", p.decade, p.bead, p.prayer, p.numPrayer)
}
