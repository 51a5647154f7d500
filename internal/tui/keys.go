package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	compose    key.Binding
	toggle     key.Binding
	rename     key.Binding
	summary    key.Binding
	metrics    key.Binding
	sendSugg   key.Binding
	editSugg   key.Binding
	prevSugg   key.Binding
	nextSugg   key.Binding
	copy       key.Binding
	register   key.Binding
	buildInfo  key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	logout:     key.NewBinding(key.WithKeys("L")),
	compose:    key.NewBinding(key.WithKeys("i", "tab")),
	toggle:     key.NewBinding(key.WithKeys("t")),
	rename:     key.NewBinding(key.WithKeys("r")),
	summary:    key.NewBinding(key.WithKeys("s")),
	metrics:    key.NewBinding(key.WithKeys("m")),
	sendSugg:   key.NewBinding(key.WithKeys("a")),
	editSugg:   key.NewBinding(key.WithKeys("e")),
	prevSugg:   key.NewBinding(key.WithKeys("[")),
	nextSugg:   key.NewBinding(key.WithKeys("]")),
	copy:       key.NewBinding(key.WithKeys("c")),
	register:   key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo:  key.NewBinding(key.WithKeys("f1")),
	scrollUp:   key.NewBinding(key.WithKeys("pgup")),
	scrollDown: key.NewBinding(key.WithKeys("pgdown")),
}
