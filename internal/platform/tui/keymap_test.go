package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/borno/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionUp}},
		{"w", runeKey('w'), []core.Action{core.ActionUp}},
		{"a", runeKey('a'), []core.Action{core.ActionLeft}},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, []core.Action{core.ActionLeft, core.ActionFocus}},
		{"x", runeKey('x'), []core.Action{core.ActionFocus}},
		{"z", runeKey('z'), []core.Action{core.ActionFire}},
		{"space", runeKey(' '), []core.Action{core.ActionFire}},
		{"p", runeKey('p'), []core.Action{core.ActionPause}},
		{"r", runeKey('r'), []core.Action{core.ActionRestart}},
		{"q", runeKey('q'), []core.Action{core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"unbound", runeKey('y'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Actions(tt.msg)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Actions(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 9 {
		t.Errorf("FullHelp() lists %d bindings, want 9", total)
	}
}
