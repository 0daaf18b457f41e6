package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Session
	Start  key.Binding
	Pause  key.Binding
	Toggle key.Binding
	Reset  key.Binding

	// Navigation
	Settings key.Binding
	Stats    key.Binding
	Theme    key.Binding

	// Forms
	Select key.Binding
	Save   key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Stats:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stats")),
	Theme:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "theme")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
}
