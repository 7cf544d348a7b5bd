package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Back        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	TabMusic    key.Binding
	TabSound    key.Binding
	TabSettings key.Binding
	RaiseA      key.Binding
	RaiseB      key.Binding
	RaiseC      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		TabMusic:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "music")),
		TabSound:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sound")),
		TabSettings: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
		RaiseA:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a/b/c", "raise monitoring alert")),
		RaiseB:      key.NewBinding(key.WithKeys("b")),
		RaiseC:      key.NewBinding(key.WithKeys("c")),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.NextTab, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.NextTab, k.PrevTab, k.TabMusic, k.TabSound, k.TabSettings},
		{k.RaiseA, k.Quit},
	}
}
