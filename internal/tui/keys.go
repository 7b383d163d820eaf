package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	connect key.Binding
	sync    key.Binding
	signOut key.Binding
	copyURL key.Binding
	quit    key.Binding
}

var keys = keyMap{
	connect: key.NewBinding(key.WithKeys("c")),
	sync:    key.NewBinding(key.WithKeys("s")),
	signOut: key.NewBinding(key.WithKeys("o")),
	copyURL: key.NewBinding(key.WithKeys("u")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
