package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/emysliwietz/rosarium/internal/calendar"
	"github.com/emysliwietz/rosarium/internal/prayer"
)

var (
	calendarYear int
	calendarLang string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the feasts of a liturgical year",
	Long: `Print the named dates of a year: the moveable feasts counted from Easter
and Advent together with the fixed feasts, in calendar order.`,
	Example: `  rosarium calendar
  rosarium calendar --year 2025 --lang anglia`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "Year to compute (default: current year)")
	calendarCmd.Flags().StringVar(&calendarLang, "lang", "", "Language of the feast names (default: ROSARIUM_LANGUAGE)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	lang, err := resolveLanguage(calendarLang, a.cfg.Language)
	if err != nil {
		return err
	}

	today := calendar.Day(time.Now())
	year := calendarYear
	if year == 0 {
		year = today.Year()
	}

	feasts, err := calendar.YearDates(year)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, f := range feasts {
			fmt.Fprintf(out, "%s\t%s\t%s\n", calendar.FormatDate(f.Date), calendar.DayName(f.Date), a.resolver.Title(f.Name, lang))
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Date", "Day", "Feast").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(accentStyle)
			case calendar.SameDay(feasts[row].Date, today):
				return base.Inherit(todayStyle)
			}
			return base
		})
	for _, f := range feasts {
		t.Row(calendar.FormatDate(f.Date), calendar.DayName(f.Date), a.resolver.Title(f.Name, lang))
	}

	fmt.Fprintln(out, boldStyle.Render(fmt.Sprintf("Annus %d", year)))
	fmt.Fprintln(out, t.Render())
	return nil
}

// resolveLanguage parses a --lang flag, falling back to the configured
// language when the flag is empty.
func resolveLanguage(flag string, fallback prayer.Language) (prayer.Language, error) {
	if flag == "" {
		return fallback, nil
	}
	return prayer.ParseLanguage(flag)
}
