package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// KeyMap defines the key bindings for the visualizer.
// Bindings that map to a core.Action are forwarded to the simulation; the
// rest are handled by the platform.
type KeyMap struct {
	Restart  key.Binding
	Pause    key.Binding
	Step     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Export   key.Binding
	Bookmark key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Pause, k.Step, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Pause, k.Step},
		{k.Faster, k.Slower},
		{k.Export, k.Bookmark},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space", "new grid"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save map"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "bookmark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a simulation action.
// Returns core.ActionNone for keys the simulation does not handle.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Step):
		return core.ActionStep
	case key.Matches(msg, k.Faster):
		return core.ActionFaster
	case key.Matches(msg, k.Slower):
		return core.ActionSlower
	}
	return core.ActionNone
}
