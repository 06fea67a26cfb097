package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/emysliwietz/rosarium/internal/calendar"
)

// Color palette (Ayu)
var (
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#39bae6"} // Blue
	colorError     = lipgloss.AdaptiveColor{Light: "#e65050", Dark: "#f07178"} // Red
	colorDim       = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#626a73"} // Gray
	colorHighlight = lipgloss.AdaptiveColor{Light: "#59c2ff", Dark: "#59c2ff"} // Cyan
	colorGold      = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"} // Yellow
)

// mysteryColors tint the announcement of each set of mysteries.
var mysteryColors = map[calendar.Mystery]lipgloss.TerminalColor{
	calendar.Joyful:    lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"},
	calendar.Sorrowful: colorError,
	calendar.Glorious:  colorGold,
	calendar.Luminous:  colorHighlight,
}

// seasonColors tint the season line of the calendar view.
var seasonColors = map[calendar.Season]lipgloss.TerminalColor{
	calendar.SeasonAdvent:    lipgloss.AdaptiveColor{Light: "#a37acc", Dark: "#d2a6ff"},
	calendar.SeasonChristmas: colorGold,
	calendar.SeasonOrdinary:  lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"},
	calendar.SeasonLent:      lipgloss.AdaptiveColor{Light: "#a37acc", Dark: "#d2a6ff"},
	calendar.SeasonHolyWeek:  colorError,
	calendar.SeasonEaster:    lipgloss.Color("15"),
}

var (
	// Window frames
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	focusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	textStyle = lipgloss.NewStyle().
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Status lines under the prayer text
	statusStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Calendar
	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(colorHighlight).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(colorGold).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Popups
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	errorPopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(1, 2)
)

func mysteryStyle(m calendar.Mystery) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(mysteryColors[m])
}

func seasonStyle(s calendar.Season) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seasonColors[s])
}
