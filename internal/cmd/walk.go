package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/emysliwietz/rosarium/internal/calendar"
	"github.com/emysliwietz/rosarium/internal/rosary"
)

var (
	walkLang string
	walkDate string
	walkText bool
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Print every step of the Rosary",
	Long: `Walk the Rosary from the Sign of the Cross to the closing prayers and
print each step with its place on the beads and its prayer.`,
	Example: `  rosarium walk
  rosarium walk --lang anglia --text`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&walkLang, "lang", "", "Language of the prayers (default: ROSARIUM_LANGUAGE)")
	walkCmd.Flags().StringVar(&walkDate, "date", "", "Day deciding the mysteries, YYYY-MM-DD (default: today)")
	walkCmd.Flags().BoolVar(&walkText, "text", false, "Print the text of every prayer")
	rootCmd.AddCommand(walkCmd)
}

func runWalk(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	lang, err := resolveLanguage(walkLang, a.cfg.Language)
	if err != nil {
		return err
	}

	day := calendar.Day(time.Now())
	if walkDate != "" {
		if day, err = calendar.ParseDateString(walkDate); err != nil {
			return err
		}
	}
	mystery := calendar.DailyMystery(day)

	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	p := rosary.New()
	for step := 0; ; step++ {
		key := p.CurrentPrayer().ResourceKey(mystery)
		fmt.Fprintf(out, "%3d %s %-40s %s %s\n",
			step,
			styled(tty, dimStyle, fmt.Sprintf("%-10s", p.String())),
			p.ProgressDescription(),
			styled(tty, boldStyle, fmt.Sprintf("%-32s", a.resolver.Title(key, lang))),
			styled(tty, dimStyle, key),
		)
		if walkText {
			text, _, err := a.resolver.Text(key, lang)
			if err != nil {
				text = "(missing)"
			}
			fmt.Fprintln(out, indent(text, "    "))
		}
		if p.AtEnd() {
			break
		}
		p.Advance()
	}
	return nil
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
