package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the calculator. Letters are not bound,
// they must reach the text input so that invalid sides can be typed.
type KeyMap struct {
	Quit   key.Binding
	Submit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

var keys = DefaultKeyMap()
