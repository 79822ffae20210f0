package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/borno/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Focus   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings. Shift+arrow moves focused,
// since terminals do not report a bare Shift press.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "shift+up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "shift+down"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "shift+left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "shift+right"),
			key.WithHelp("→/d", "right"),
		),
		Focus: key.NewBinding(
			key.WithKeys("x", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("x/shift", "focus"),
		),
		Fire: key.NewBinding(
			key.WithKeys("z", " "),
			key.WithHelp("z/space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Focus, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Focus},
		{k.Pause, k.Restart, k.Quit},
	}
}

// Actions returns every action a key message triggers. One key can
// trigger more than one action (shift+left is Left and Focus).
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Focus, core.ActionFocus},
		{k.Fire, core.ActionFire},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
