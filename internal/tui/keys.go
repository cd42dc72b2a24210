package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Start     key.Binding
	Pause     key.Binding
	Reset     key.Binding
	Input     key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Start:     key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Input:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "duration")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "controls")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// setInputMode toggles the single-letter shortcuts, which would otherwise
// swallow keystrokes meant for the duration field.
func (k *keyMap) setInputMode(typing bool) {
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Start, &k.Pause, &k.Reset, &k.Input, &k.Quit} {
		b.SetEnabled(!typing)
	}
	k.Leave.SetEnabled(typing)
	if typing {
		k.Press.SetHelp("enter", "set")
	} else {
		k.Press.SetHelp("enter", "press")
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Start, k.Pause, k.Reset, k.Input, k.Leave, k.Next, k.Quit, k.ForceQuit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Next, k.Prev, k.Left, k.Right},
		{k.Start, k.Pause, k.Reset},
		{k.Input, k.Leave, k.Quit, k.ForceQuit},
	}
}
