package cmd

import "github.com/charmbracelet/lipgloss"

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#626a73"})
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#39bae6"}).Bold(true)
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}).Bold(true)
)

// styled renders s with style only on a terminal.
func styled(tty bool, style lipgloss.Style, s string) string {
	if !tty {
		return s
	}
	return style.Render(s)
}
