package ui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit        key.Binding
	help        key.Binding
	back        key.Binding
	accept      key.Binding
	up          key.Binding
	down        key.Binding
	pageUp      key.Binding
	pageDown    key.Binding
	top         key.Binding
	bottom      key.Binding
	nextSection key.Binding
	prevSection key.Binding
	section     key.Binding
	projPrev    key.Binding
	projNext    key.Binding
	message     key.Binding
	theme       key.Binding
}

// TODO make configurable.
var defaultKeyMap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Scroll up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Scroll down"),
	),
	pageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "Half page up"),
	),
	pageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "Half page down"),
	),
	top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Top"),
	),
	bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "Bottom"),
	),
	nextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next section"),
	),
	prevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Prev section"),
	),
	section: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "Jump to section"),
	),
	projPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Featured projects"),
	),
	projNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Open source projects"),
	),
	message: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Send a message"),
	),
	theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "Toggle theme"),
	),
}
