package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/todo/internal/app"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMap_Events(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want app.Event
	}{
		{"q", runeKey('q'), app.Event{Key: app.KeyQuit, Rune: 'q'}},
		{"d", runeKey('d'), app.Event{Key: app.KeyDelete, Rune: 'd'}},
		{"j", runeKey('j'), app.Event{Key: app.KeyDown, Rune: 'j'}},
		{"k", runeKey('k'), app.Event{Key: app.KeyUp, Rune: 'k'}},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, app.Event{Key: app.KeyUp}},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, app.Event{Key: app.KeyDown}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, app.Event{Key: app.KeyConfirm}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, app.Event{Key: app.KeyCancel}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, app.Event{Key: app.KeyErase}},
		{"plain rune", runeKey('x'), app.Event{Key: app.KeyRune, Rune: 'x'}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, app.Event{Key: app.KeyRune, Rune: ' '}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, app.Event{Key: app.KeyNone}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, app.Event{Key: app.KeyNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultKeyMap.Events(tt.msg)
			if len(got) != 1 {
				t.Fatalf("Events() returned %d events, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Events() = %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestKeyMap_EventsPaste(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("qdj"), Paste: true}
	got := DefaultKeyMap.Events(msg)
	if len(got) != 3 {
		t.Fatalf("Events() returned %d events, want 3", len(got))
	}
	for i, r := range "qdj" {
		if got[i] != (app.Event{Key: app.KeyRune, Rune: r}) {
			t.Errorf("event %d = %+v", i, got[i])
		}
	}
}

func TestKeyMap_Help(t *testing.T) {
	if n := len(DefaultKeyMap.BrowsingHelp()); n != 5 {
		t.Errorf("BrowsingHelp() has %d bindings, want 5", n)
	}
	for _, b := range DefaultKeyMap.AddingHelp() {
		if b.Help().Key == "" {
			t.Errorf("binding %v has no help key", b.Keys())
		}
	}
}
