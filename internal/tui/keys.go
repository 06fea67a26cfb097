package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the rosary TUI.
type KeyMap struct {
	Advance      key.Binding
	Recede       key.Binding
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	Language     key.Binding
	DayForward   key.Binding
	DayBack      key.Binding
	NextItem     key.Binding
	SplitRows    key.Binding
	SplitColumns key.Binding
	FocusNext    key.Binding
	Close        key.Binding
	Audio        key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	Volume       key.Binding
	Help         key.Binding
	Refresh      key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys(" ", "l", "right"),
			key.WithHelp("space/l/→", "next prayer"),
		),
		Recede: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("h/←", "previous prayer"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Language: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cycle language"),
		),
		DayForward: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next day"),
		),
		DayBack: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "previous day"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		SplitRows: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split below"),
		),
		SplitColumns: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split beside"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "next window"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close window"),
		),
		Audio: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle audio"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "quieter"),
		),
		Volume: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "volume"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close popup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Recede, k.NextItem, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Recede, k.ScrollDown, k.ScrollUp, k.Language},
		{k.NextItem, k.DayForward, k.DayBack, k.Refresh},
		{k.SplitRows, k.SplitColumns, k.FocusNext, k.Close},
		{k.Audio, k.VolumeUp, k.VolumeDown, k.Volume},
		{k.Help, k.Dismiss, k.Quit},
	}
}
