package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space restarts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"n steps", runeKey('n'), core.ActionStep},
		{"plus is faster", runeKey('+'), core.ActionFaster},
		{"equals is faster", runeKey('='), core.ActionFaster},
		{"minus is slower", runeKey('-'), core.ActionSlower},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"m is platform only", runeKey('m'), core.ActionNone},
		{"unbound key", runeKey('z'), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
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
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("FullHelp() has %d bindings, expected 9", total)
	}
}
