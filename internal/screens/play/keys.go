package play

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/numberrush/internal/ui/layout"
)

type setupKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
}

var setupKeys = setupKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Field")),
	Down:  key.NewBinding(key.WithKeys("down", "j", "tab")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Change")),
	Right: key.NewBinding(key.WithKeys("right", "l", "space")),
	Start: key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("Enter", "Start")),
}

type gameKeyMap struct {
	Next key.Binding
}

var gameKeys = gameKeyMap{
	Next: key.NewBinding(key.WithKeys("n", "space"), key.WithHelp("Space", "Next number")),
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
