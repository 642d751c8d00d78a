package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	quit   key.Binding
	edit   key.Binding
	delete key.Binding
	reload key.Binding
	copy   key.Binding
	about  key.Binding
}

// Letters go to the text inputs, so every action sits on a control key.
var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up")),
	down:   key.NewBinding(key.WithKeys("down")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	edit:   key.NewBinding(key.WithKeys("ctrl+e")),
	delete: key.NewBinding(key.WithKeys("ctrl+d")),
	reload: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	about:  key.NewBinding(key.WithKeys("f1")),
}
