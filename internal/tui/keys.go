package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/todo/internal/app"
)

// KeyMap defines the key bindings for the todo screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding // Browsing: toggle item or open the add prompt.
	Delete  key.Binding
	Quit    key.Binding

	// Add prompt. Submit shares its keys with Confirm and exists for help text.
	Submit key.Binding
	Cancel key.Binding
	Erase  key.Binding

	// ForceQuit exits from any mode, including the add prompt.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "erase"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// BrowsingHelp returns the bindings shown in the footer while browsing.
func (k KeyMap) BrowsingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Delete, k.Quit}
}

// AddingHelp returns the bindings shown in the footer while adding.
func (k KeyMap) AddingHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Erase, k.ForceQuit}
}

// Events translates a key message into router events. A paste arrives as
// one message carrying many runes and becomes one event per rune.
func (k KeyMap) Events(msg tea.KeyMsg) []app.Event {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		events := make([]app.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, app.Event{Key: app.KeyRune, Rune: r})
		}
		return events
	}

	ev := app.Event{Key: k.logical(msg)}
	switch {
	case msg.Alt:
	case msg.Type == tea.KeySpace:
		ev.Rune = ' '
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		ev.Rune = msg.Runes[0]
	}
	if ev.Key == app.KeyNone && ev.Rune != 0 {
		ev.Key = app.KeyRune
	}
	return []app.Event{ev}
}

func (k KeyMap) logical(msg tea.KeyMsg) app.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return app.KeyQuit
	case key.Matches(msg, k.Delete):
		return app.KeyDelete
	case key.Matches(msg, k.Confirm), key.Matches(msg, k.Submit):
		return app.KeyConfirm
	case key.Matches(msg, k.Up):
		return app.KeyUp
	case key.Matches(msg, k.Down):
		return app.KeyDown
	case key.Matches(msg, k.Cancel):
		return app.KeyCancel
	case key.Matches(msg, k.Erase):
		return app.KeyErase
	}
	return app.KeyNone
}
