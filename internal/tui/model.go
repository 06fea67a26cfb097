// Package tui is the interactive terminal interface: a tree of windows,
// each praying the rosary, a prayer set or browsing the calendar.
package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emysliwietz/rosarium/internal/audio"
	"github.com/emysliwietz/rosarium/internal/calendar"
	"github.com/emysliwietz/rosarium/internal/logger"
	"github.com/emysliwietz/rosarium/internal/prayer"
	"github.com/emysliwietz/rosarium/internal/prayerset"
)

// Popup is the dialog drawn over the windows.
type Popup int

const (
	PopupNone Popup = iota
	PopupVolume
	PopupHelp
	PopupError
)

const volumeStep = 0.05

var (
	errAudioDisabled = errors.New("audio is disabled (set ROSARIUM_AUDIO=true)")
	errLastWindow    = errors.New("cannot close the last window")
)

// AudioSink receives playback commands. *audio.Player implements it.
type AudioSink interface {
	Send(cmd audio.Command) bool
}

// Options configures a Model.
type Options struct {
	Resolver   *prayer.Resolver
	PrayerSets []prayerset.Definition
	// Player is nil when audio is disabled.
	Player   AudioSink
	Language prayer.Language
	Volume   float64
	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Model is the bubbletea model of the rosary TUI.
type Model struct {
	resolver *prayer.Resolver
	defs     []prayerset.Definition
	player   AudioSink
	now      func() time.Time
	logger   *slog.Logger

	layout *Layout
	volume float64
	popup  Popup
	err    string

	// UI state
	keys   KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a TUI model with a single window.
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if !opts.Language.IsValid() {
		opts.Language = prayer.Latina
	}

	m := Model{
		resolver: opts.Resolver,
		defs:     opts.PrayerSets,
		player:   opts.Player,
		now:      opts.Now,
		logger:   opts.Logger,
		volume:   opts.Volume,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.layout = NewLayout(NewWindow(opts.Language, opts.PrayerSets, m.today()))
	return m
}

// Layout exposes the window tree.
func (m Model) Layout() *Layout { return m.layout }

// Popup returns the open popup.
func (m Model) Popup() Popup { return m.popup }

// Volume returns the playback volume in the range 0..1.
func (m Model) Volume() float64 { return m.volume }

func (m Model) today() time.Time {
	return calendar.Day(m.now())
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.send(audio.Pause())
			return m, tea.Quit
		}
		if m.popup != PopupNone {
			return m.updatePopup(msg)
		}
		return m.updateWindow(msg)
	}

	return m, nil
}

// updatePopup handles keys while a popup is open.
func (m Model) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.popup {
	case PopupError:
		// Any key acknowledges the error.
		m.popup = PopupNone
		m.err = ""

	case PopupHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss) {
			m.popup = PopupNone
		}

	case PopupVolume:
		switch {
		case key.Matches(msg, m.keys.Volume, m.keys.Dismiss):
			m.popup = PopupNone
		case key.Matches(msg, m.keys.VolumeUp):
			m.setVolume(m.volume + volumeStep)
		case key.Matches(msg, m.keys.VolumeDown):
			m.setVolume(m.volume - volumeStep)
		case len(msg.String()) == 1 && msg.String() >= "0" && msg.String() <= "9":
			// 1..9 is 10%..90%, 0 is full volume
			n := int(msg.String()[0] - '0')
			if n == 0 {
				n = 10
			}
			m.setVolume(float64(n) / 10)
		}
	}
	return m, nil
}

// updateWindow handles keys aimed at the active window.
func (m Model) updateWindow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.layout.Active()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.popup = PopupHelp

	case key.Matches(msg, m.keys.Volume):
		m.popup = PopupVolume

	case key.Matches(msg, m.keys.VolumeUp):
		m.setVolume(m.volume + volumeStep)

	case key.Matches(msg, m.keys.VolumeDown):
		m.setVolume(m.volume - volumeStep)

	case key.Matches(msg, m.keys.Advance):
		if err := w.Advance(); err != nil {
			m.showError(w, err)
		}
		m.playCurrent(w)

	case key.Matches(msg, m.keys.Recede):
		if err := w.Recede(); err != nil {
			m.showError(w, err)
		}
		m.playCurrent(w)

	case key.Matches(msg, m.keys.DayForward, m.keys.DayBack):
		if w.item.Kind != ItemCalendar {
			break
		}
		days := 1
		if key.Matches(msg, m.keys.DayBack) {
			days = -1
		}
		if err := w.MoveDay(days); err != nil {
			m.showError(w, err)
		}

	case key.Matches(msg, m.keys.ScrollDown):
		w.ScrollDown()

	case key.Matches(msg, m.keys.ScrollUp):
		w.ScrollUp()

	case key.Matches(msg, m.keys.Language):
		w.CycleLanguage()
		m.playCurrent(w)

	case key.Matches(msg, m.keys.NextItem):
		w.CycleItem()
		m.playCurrent(w)

	case key.Matches(msg, m.keys.SplitRows):
		m.split(SplitRows, w)

	case key.Matches(msg, m.keys.SplitColumns):
		m.split(SplitColumns, w)

	case key.Matches(msg, m.keys.FocusNext):
		m.layout.FocusNext()

	case key.Matches(msg, m.keys.Close):
		if w.playing {
			m.send(audio.Pause())
		}
		if !m.layout.Close() {
			m.showError(w, errLastWindow)
		}

	case key.Matches(msg, m.keys.Audio):
		m.toggleAudio(w)

	case key.Matches(msg, m.keys.Refresh):
		if err := m.resolver.Refresh(); err != nil {
			m.showError(w, err)
		}
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m *Model) split(s Split, from *Window) {
	w := NewWindow(from.lang, m.defs, m.today())
	m.layout.Split(s, w)
	logger.Info(w.ctx(), "window opened", "windows", m.layout.Len())
}

func (m *Model) showError(w *Window, err error) {
	logger.Error(w.ctx(), "window error", err)
	m.err = err.Error()
	m.popup = PopupError
}

func (m *Model) setVolume(v float64) {
	m.volume = min(max(v, 0), 1)
	m.send(audio.SetVolume(m.volume))
}

func (m *Model) toggleAudio(w *Window) {
	if m.player == nil {
		m.showError(w, errAudioDisabled)
		return
	}
	if w.playing {
		w.playing = false
		m.send(audio.Pause())
		return
	}
	w.playing = true
	m.playCurrent(w)
}

// playCurrent plays the recording of the prayer on screen if w has audio
// on. Prayers without a recording silence the player.
func (m *Model) playCurrent(w *Window) {
	if !w.playing || m.player == nil {
		return
	}
	k := w.ResourceKey(m.today())
	if k == "" {
		m.send(audio.Pause())
		return
	}
	path, _, err := m.resolver.Audio(k, w.lang)
	if err != nil {
		logger.Debug(w.ctx(), "no recording", "key", k, "language", w.lang)
		m.send(audio.Pause())
		return
	}
	m.send(audio.Play(path))
}

func (m *Model) send(cmd audio.Command) {
	if m.player == nil {
		return
	}
	if !m.player.Send(cmd) {
		m.logger.Warn("audio command dropped, player closed", "kind", cmd.Kind)
	}
}

// View renders the model.
func (m Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}

	if m.popup != PopupNone {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.renderPopup(width))
	}

	helpView := m.help.View(m.keys)
	windows := m.renderNode(m.layout.root, nil, width, height-lipgloss.Height(helpView))
	return lipgloss.JoinVertical(lipgloss.Left, windows, helpView)
}
