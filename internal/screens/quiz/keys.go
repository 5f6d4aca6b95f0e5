package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Options  []key.Binding // one per answer option, A-D
	Continue key.Binding
	Again    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Answer")),
		Options: []key.Binding{
			key.NewBinding(key.WithKeys("1", "a", "A")),
			key.NewBinding(key.WithKeys("2", "b", "B")),
			key.NewBinding(key.WithKeys("3", "c", "C")),
			key.NewBinding(key.WithKeys("4", "d", "D")),
		},
		Continue: key.NewBinding(key.WithKeys("enter", "n", "space"), key.WithHelp("Enter", "Continue")),
		Again:    key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("Enter", "Play again")),
	}
}
