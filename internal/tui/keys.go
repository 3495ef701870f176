package tui

import "github.com/charmbracelet/bubbles/key"

// Global bindings use ctrl chords so they never collide with text input.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	nextField key.Binding
	prevField key.Binding
	submit    key.Binding
	quit      key.Binding
	menu      key.Binding
	open      key.Binding
	dismiss   key.Binding
	favorite  key.Binding
	copy      key.Binding
	remove    key.Binding
	search    key.Binding
	sort      key.Binding
	order     key.Binding
	reload    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	menu:      key.NewBinding(key.WithKeys("ctrl+n")),
	open:      key.NewBinding(key.WithKeys("ctrl+o")),
	dismiss:   key.NewBinding(key.WithKeys("ctrl+x")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	copy:      key.NewBinding(key.WithKeys("c")),
	remove:    key.NewBinding(key.WithKeys("d")),
	search:    key.NewBinding(key.WithKeys("/")),
	sort:      key.NewBinding(key.WithKeys("s")),
	order:     key.NewBinding(key.WithKeys("o")),
	reload:    key.NewBinding(key.WithKeys("r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
