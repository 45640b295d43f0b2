package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	enter   key.Binding
	esc     key.Binding
	add     key.Binding
	remove  key.Binding
	copy    key.Binding
	reload  key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
	backtab key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	add:     key.NewBinding(key.WithKeys("a")),
	remove:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	reload:  key.NewBinding(key.WithKeys("r")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
}
