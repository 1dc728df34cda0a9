package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	logout  key.Binding
	buy     key.Binding
	newTip  key.Binding
	openTip key.Binding
	history key.Binding
	pause   key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	buy:     key.NewBinding(key.WithKeys("b")),
	newTip:  key.NewBinding(key.WithKeys("t")),
	openTip: key.NewBinding(key.WithKeys("enter")),
	history: key.NewBinding(key.WithKeys("h")),
	pause:   key.NewBinding(key.WithKeys(" ")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y", "s")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
