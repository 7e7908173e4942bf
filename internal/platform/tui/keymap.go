package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by all screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Back     key.Binding
	Pause    key.Binding
	Progress key.Binding
	Theme    key.Binding
	Shot     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Progress: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "progress"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// menuKeys is the help view of the menu screens.
type menuKeys struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Progress, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Progress, k.Theme},
		{k.Help, k.Quit},
	}
}

// gameKeys is the help view of the game screen.
type gameKeys struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k gameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Back, k.Shot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k gameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Back}, {k.Shot, k.Quit}}
}
