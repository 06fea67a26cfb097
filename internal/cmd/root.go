// Package cmd provides CLI commands for the rosarium tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emysliwietz/rosarium/internal/audio"
	"github.com/emysliwietz/rosarium/internal/config"
	"github.com/emysliwietz/rosarium/internal/logger"
	"github.com/emysliwietz/rosarium/internal/prayer"
	"github.com/emysliwietz/rosarium/internal/prayerset"
	"github.com/emysliwietz/rosarium/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:     "rosarium",
	Short:   "Pray the Rosary in the terminal",
	Version: Version,
	Long: `Rosarium guides you through the Rosary bead by bead, in Latin, English,
German or Slavonic, with the mysteries of the day chosen by the liturgical
calendar.

Without a subcommand the interactive interface starts. Press ? inside it
for the key bindings.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Errors already printed by cobra
		return 1
	}
	return 0
}

// app is what every command needs: configuration, logging and prayers.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	resolver *prayer.Resolver
	closer   io.Closer
}

// setup loads the configuration and opens the log and the prayer texts.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		return nil, err
	}

	resolver, err := prayer.NewDirResolver(cfg.PrayerDir,
		prayer.WithCacheSize(cfg.CacheSize),
		prayer.WithLogger(log),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("loading prayers: %w", err)
	}

	return &app{cfg: cfg, log: log, resolver: resolver, closer: closer}, nil
}

func (a *app) Close() error {
	return a.closer.Close()
}

// prayerSets loads the prayer-set definitions next to the prayer texts.
// A missing or empty file leaves the TUI with the rosary and calendar only.
func (a *app) prayerSets() []prayerset.Definition {
	defs, err := prayerset.Load(a.resolver.FS(), prayerset.DefaultFile)
	switch {
	case err == nil:
		return defs
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, prayerset.ErrNoPrayerSets):
		a.log.Info("no prayer sets found", "file", prayerset.DefaultFile)
	default:
		a.log.Warn("ignoring prayer sets", "error", err)
	}
	return nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts := tui.Options{
		Resolver:   a.resolver,
		PrayerSets: a.prayerSets(),
		Language:   a.cfg.Language,
		Volume:     a.cfg.VolumeFraction(),
		Logger:     a.log,
	}
	if a.cfg.AudioEnabled {
		player := audio.NewPlayer(audio.ExecDevice{Command: a.cfg.AudioCommand},
			audio.WithVolume(a.cfg.VolumeFraction()),
			audio.WithLogger(a.log),
		)
		done := make(chan error, 1)
		go func() { done <- player.Run(ctx) }()
		defer func() {
			player.Close()
			if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
				a.log.Warn("audio player stopped", "error", err)
			}
		}()
		opts.Player = player
	}

	a.log.Info("starting rosarium",
		slog.String("language", a.cfg.Language.String()),
		slog.Bool("audio", a.cfg.AudioEnabled),
		slog.String("prayer_dir", a.cfg.PrayerDir),
	)

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// isTerminal reports whether w is an interactive terminal, to decide
// between styled and plain output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
