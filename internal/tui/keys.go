package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit  key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Next  key.Binding
	Prev  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Next:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Prev:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
	}
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

func (k keyMap) articleHelp() []key.Binding {
	back := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "back"))
	return []key.Binding{k.Prev, k.Next, back, k.Quit}
}
