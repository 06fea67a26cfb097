package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emysliwietz/rosarium/internal/calendar"
)

var (
	mysteryDate string
	mysteryLang string
)

var mysteryCmd = &cobra.Command{
	Use:   "mystery",
	Short: "Print the mysteries of the day",
	Long: `Print which mysteries are prayed on a day. The weekday decides unless
the day is Easter, a Sunday of Lent or a Sunday of Advent.`,
	Example: `  rosarium mystery
  rosarium mystery --date 2024-12-01`,
	Args: cobra.NoArgs,
	RunE: runMystery,
}

func init() {
	mysteryCmd.Flags().StringVar(&mysteryDate, "date", "", "Day as YYYY-MM-DD (default: today)")
	mysteryCmd.Flags().StringVar(&mysteryLang, "lang", "", "Language of the title (default: ROSARIUM_LANGUAGE)")
	rootCmd.AddCommand(mysteryCmd)
}

func runMystery(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	lang, err := resolveLanguage(mysteryLang, a.cfg.Language)
	if err != nil {
		return err
	}

	day := calendar.Day(time.Now())
	if mysteryDate != "" {
		if day, err = calendar.ParseDateString(mysteryDate); err != nil {
			return err
		}
	}

	m := calendar.DailyMystery(day)
	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	fmt.Fprintf(out, "%s %s\n", calendar.FormatDate(day), calendar.DayName(day))
	fmt.Fprintf(out, "%s %s\n", styled(tty, accentStyle, m.Title()), styled(tty, dimStyle, "("+a.resolver.Title(m.Key(), lang)+")"))
	if info, err := calendar.SeasonOf(day); err == nil {
		fmt.Fprintln(out, styled(tty, dimStyle, info.String()))
	}
	return nil
}
