package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/emysliwietz/rosarium/internal/calendar"
	"github.com/emysliwietz/rosarium/internal/logger"
	"github.com/emysliwietz/rosarium/internal/prayer"
	"github.com/emysliwietz/rosarium/internal/prayerset"
	"github.com/emysliwietz/rosarium/internal/rosary"
)

// ItemKind is what a window currently shows.
type ItemKind int

const (
	ItemRosary ItemKind = iota
	ItemPrayerSet
	ItemCalendar
)

// MenuItem is the view of a window. Set indexes the window's prayer sets
// and is only meaningful for ItemPrayerSet.
type MenuItem struct {
	Kind ItemKind
	Set  int
}

func (m MenuItem) String() string {
	switch m.Kind {
	case ItemRosary:
		return "Rosary"
	case ItemPrayerSet:
		return fmt.Sprintf("PrayerSet(%d)", m.Set)
	case ItemCalendar:
		return "Calendar"
	default:
		return "Unknown"
	}
}

// next cycles Rosary, PrayerSet(0..n-1), Calendar.
func (m MenuItem) next(numSets int) MenuItem {
	switch m.Kind {
	case ItemRosary:
		if numSets > 0 {
			return MenuItem{Kind: ItemPrayerSet}
		}
		return MenuItem{Kind: ItemCalendar}
	case ItemPrayerSet:
		if m.Set < numSets-1 {
			return MenuItem{Kind: ItemPrayerSet, Set: m.Set + 1}
		}
		return MenuItem{Kind: ItemCalendar}
	default:
		return MenuItem{Kind: ItemRosary}
	}
}

// Window is one pane of the terminal with its own rosary position, prayer
// sets, language and calendar selection.
type Window struct {
	session  string
	item     MenuItem
	lang     prayer.Language
	rosary   *rosary.Position
	sets     []*prayerset.Set
	scroll   int
	selected time.Time
	playing  bool
}

// NewWindow creates a window showing the rosary. The prayer sets are drawn
// with a seed derived from today so every window of a day agrees.
func NewWindow(lang prayer.Language, defs []prayerset.Definition, today time.Time) *Window {
	rng := prayerset.NewRNG(prayerset.DaySeed(today))
	sets := make([]*prayerset.Set, 0, len(defs))
	for _, d := range defs {
		sets = append(sets, d.Build(rng))
	}
	return &Window{
		session:  logger.NewSessionID(),
		lang:     lang,
		rosary:   rosary.New(),
		sets:     sets,
		selected: calendar.Day(today),
	}
}

func (w *Window) Session() string           { return w.session }
func (w *Window) Item() MenuItem            { return w.item }
func (w *Window) Language() prayer.Language { return w.lang }
func (w *Window) Rosary() *rosary.Position  { return w.rosary }
func (w *Window) Sets() []*prayerset.Set    { return w.sets }
func (w *Window) Scroll() int               { return w.scroll }
func (w *Window) Selected() time.Time       { return w.selected }
func (w *Window) Playing() bool             { return w.playing }

// ctx carries the window's session id for log correlation.
func (w *Window) ctx() context.Context {
	return logger.WithSessionID(context.Background(), w.session)
}

// CycleItem switches to the next view.
func (w *Window) CycleItem() {
	w.item = w.item.next(len(w.sets))
	w.scroll = 0
}

// CycleLanguage switches to the next prayer language.
func (w *Window) CycleLanguage() {
	w.lang = w.lang.Next()
}

// CurrentSet returns the prayer set shown, or nil outside a prayer set view.
func (w *Window) CurrentSet() *prayerset.Set {
	if w.item.Kind != ItemPrayerSet || w.item.Set >= len(w.sets) {
		return nil
	}
	return w.sets[w.item.Set]
}

// Advance moves to the next prayer, or to the next day in the calendar.
func (w *Window) Advance() error {
	w.scroll = 0
	switch w.item.Kind {
	case ItemRosary:
		w.rosary.Advance()
	case ItemPrayerSet:
		if s := w.CurrentSet(); s != nil {
			s.Advance()
		}
	case ItemCalendar:
		return w.MoveDay(7)
	}
	return nil
}

// Recede moves to the previous prayer, or to the previous day in the
// calendar.
func (w *Window) Recede() error {
	w.scroll = 0
	switch w.item.Kind {
	case ItemRosary:
		w.rosary.Recede()
	case ItemPrayerSet:
		if s := w.CurrentSet(); s != nil {
			s.Recede()
		}
	case ItemCalendar:
		return w.MoveDay(-7)
	}
	return nil
}

// MoveDay shifts the selected calendar day. A day whose year cannot be
// computed leaves the selection unchanged.
func (w *Window) MoveDay(days int) error {
	next, err := calendar.AddDays(w.selected, days)
	if err != nil {
		return err
	}
	if next.Year() != w.selected.Year() {
		if _, err := calendar.YearDates(next.Year()); err != nil {
			return err
		}
	}
	w.selected = next
	return nil
}

func (w *Window) ScrollDown() { w.scroll++ }

func (w *Window) ScrollUp() {
	if w.scroll > 0 {
		w.scroll--
	}
}

// ResourceKey returns the key of the prayer on screen, or "" in the
// calendar.
func (w *Window) ResourceKey(today time.Time) string {
	switch w.item.Kind {
	case ItemRosary:
		return w.rosary.CurrentPrayer().ResourceKey(calendar.DailyMystery(today))
	case ItemPrayerSet:
		if s := w.CurrentSet(); s != nil {
			key, _ := s.Current()
			return key
		}
	}
	return ""
}
