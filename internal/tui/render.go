package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/emysliwietz/rosarium/internal/calendar"
	"github.com/emysliwietz/rosarium/internal/logger"
	"github.com/emysliwietz/rosarium/internal/prayer"
	"github.com/emysliwietz/rosarium/internal/rosary"
)

const todayKey = "today"

// renderNode lays out the subtree n in a width x height box.
func (m Model) renderNode(n *node, path []int, width, height int) string {
	if n.leaf() {
		return m.renderWindow(n.window, width, height, slices.Equal(path, m.layout.active))
	}

	first := append(slices.Clone(path), 0)
	second := append(slices.Clone(path), 1)
	if n.split == SplitColumns {
		left := width / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderNode(n.children[0], first, left, height),
			m.renderNode(n.children[1], second, width-left, height),
		)
	}
	top := height / 2
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNode(n.children[0], first, width, top),
		m.renderNode(n.children[1], second, width, height-top),
	)
}

// renderWindow draws one window with its border.
func (m Model) renderWindow(w *Window, width, height int, active bool) string {
	style := panelStyle
	if active {
		style = focusedPanelStyle
	}
	innerW := max(width-style.GetHorizontalFrameSize(), 1)
	innerH := max(height-style.GetVerticalFrameSize(), 1)

	var header, body string
	var footer []string
	switch w.item.Kind {
	case ItemRosary:
		header = m.resolver.Title("rosarium", w.lang)
		body, footer = m.rosaryView(w, innerW)
	case ItemPrayerSet:
		if s := w.CurrentSet(); s != nil {
			header = s.Title()
		}
		body, footer = m.prayerSetView(w, innerW)
	case ItemCalendar:
		header = m.resolver.Title("calendarium", w.lang)
		body, footer = m.calendarView(w, innerW)
	}
	header = headerStyle.Render(header) + dimStyle.Render(" · "+w.lang.String())
	if w.playing {
		header += dimStyle.Render(" ♪")
	}

	bodyH := max(innerH-1-len(footer), 0)
	parts := []string{header, clip(body, w.scroll, bodyH)}
	parts = append(parts, footer...)
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		MaxHeight(height).
		Render(content)
}

// entry resolves key for w, logging misses. On a miss the entry still
// carries a title derived from the key.
func (m Model) entry(w *Window, key string) (prayer.Entry, bool) {
	e, err := m.resolver.Lookup(key, w.lang)
	if err != nil {
		logger.Debug(w.ctx(), "prayer lookup failed", "key", key, "language", w.lang, "error", err)
		return e, false
	}
	return e, true
}

// prayerBody renders title and text of key. Mystery announcements are
// centered and coloured with the mystery of the day.
func (m Model) prayerBody(w *Window, key string, width int, mystery *calendar.Mystery) string {
	e, ok := m.entry(w, key)
	text := e.Text
	if !ok {
		text = dimStyle.Render(fmt.Sprintf("No text for %q.", key))
	}

	title := titleStyle.Render(e.Title)
	textBlock := textStyle.Width(width).Render(text)
	if mystery != nil {
		title = mysteryStyle(*mystery).Render(e.Title)
		textBlock = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
	}
	if ok && e.Language != w.lang {
		title += dimStyle.Render(" (" + e.Language.String() + ")")
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", title, "", textBlock)
}

func (m Model) rosaryView(w *Window, width int) (string, []string) {
	today := m.today()
	mystery := calendar.DailyMystery(today)
	p := w.rosary.CurrentPrayer()

	var tint *calendar.Mystery
	if p.IsMystery() {
		tint = &mystery
	}
	body := m.prayerBody(w, p.ResourceKey(mystery), width, tint)

	progress := w.rosary.ProgressDescription()
	bar := progressBar(w.rosary.Step(), rosary.TotalSteps(), max(width-lipgloss.Width(progress)-1, 0))
	footer := []string{
		statusStyle.Render(bar + " " + progress),
		mysteryStyle(mystery).Render(m.resolver.Title(mystery.Key(), w.lang)) +
			statusStyle.Render(" · "+calendar.DayName(today)),
	}
	return body, footer
}

func (m Model) prayerSetView(w *Window, width int) (string, []string) {
	s := w.CurrentSet()
	if s == nil {
		return dimStyle.Render("No prayer sets."), nil
	}
	key, ok := s.Current()
	if !ok {
		return dimStyle.Render("This prayer set is empty."), nil
	}
	body := m.prayerBody(w, key, width, nil)
	footer := []string{
		statusStyle.Render(progressBar(s.Index(), s.Len()-1, max(width-8, 0)) +
			fmt.Sprintf(" %d/%d", s.Index()+1, s.Len())),
	}
	return body, footer
}

func (m Model) calendarView(w *Window, width int) (string, []string) {
	today := m.today()
	sel := w.selected

	feasts, err := calendar.YearDates(sel.Year())
	if err != nil {
		return errorPopupStyle.Render(err.Error()), nil
	}
	if sel.Year() == today.Year() {
		feasts = append(feasts, calendar.Feast{Name: todayKey, Date: today})
	}
	slices.SortStableFunc(feasts, func(a, b calendar.Feast) int { return a.Date.Compare(b.Date) })

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Date", "Name").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(headerStyle)
			}
			switch d := feasts[row].Date; {
			case calendar.SameDay(d, sel):
				return base.Inherit(selectedStyle)
			case calendar.SameDay(d, today):
				return base.Inherit(todayStyle)
			}
			return base
		})
	for _, f := range feasts {
		t.Row(calendar.FormatDate(f.Date), m.resolver.Title(f.Name, w.lang))
	}

	var lines []string
	if info, err := calendar.SeasonOf(sel); err == nil {
		lines = append(lines, seasonStyle(info.Season).Render(info.String()))
	}
	mystery := calendar.DailyMystery(sel)
	lines = append(lines, mysteryStyle(mystery).Render(m.resolver.Title(mystery.Key(), w.lang)))
	for _, f := range calendar.FeastsOn(feasts, sel) {
		if f.Name != todayKey {
			lines = append(lines, titleStyle.Render(m.resolver.Title(f.Name, w.lang)))
		}
	}

	grid := monthGrid(sel, today)
	side := lipgloss.JoinVertical(lipgloss.Left, append([]string{grid, ""}, lines...)...)
	feastTable := t.Render()

	var body string
	if lipgloss.Width(side)+lipgloss.Width(feastTable)+2 <= width {
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", feastTable)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, side, "", feastTable)
	}
	footer := []string{statusStyle.Render(calendar.DayName(sel) + " " + calendar.FormatDate(sel))}
	return body, footer
}

// monthGrid renders the month of selected with selected and today
// highlighted.
func monthGrid(selected, today time.Time) string {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, time.UTC)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", selected.Month(), selected.Year())))
	b.WriteString("\nSu Mo Tu We Th Fr Sa\n")
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))

	for d := first; d.Month() == selected.Month(); d = d.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", d.Day())
		switch {
		case calendar.SameDay(d, selected):
			cell = selectedStyle.Render(cell)
		case calendar.SameDay(d, today):
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		if d.Weekday() == time.Saturday {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

// progressBar draws done/total as a bar of width cells.
func progressBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := width
	if total > 0 {
		filled = min(width*done/total, width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// clip drops the first scroll lines of s and keeps at most height lines.
func clip(s string, scroll, height int) string {
	lines := strings.Split(s, "\n")
	scroll = min(scroll, max(len(lines)-1, 0))
	lines = lines[scroll:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderPopup draws the open popup for a screen width columns wide.
func (m Model) renderPopup(width int) string {
	switch m.popup {
	case PopupVolume:
		pct := int(m.volume*100 + 0.5)
		return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Volume"),
			"",
			progressBar(pct, 100, 30)+fmt.Sprintf(" %3d%%", pct),
			"",
			dimStyle.Render("+/- adjust · 0-9 set · esc close"),
		))
	case PopupHelp:
		return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Key bindings"),
			"",
			m.help.FullHelpView(m.keys.FullHelp()),
		))
	case PopupError:
		return errorPopupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Error"),
			"",
			lipgloss.NewStyle().Width(min(60, max(width-8, 20))).Render(m.err),
		))
	}
	return ""
}
