package showcase

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/campusui/campus/pkg/dom"
)

// KeyMap holds the showcase key bindings.
type KeyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Space     key.Binding
	Dismiss   key.Binding
	Next      key.Binding
	Previous  key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous item")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next item")),
		Activate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:     key.NewBinding(key.WithKeys(" ")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Previous:  key.NewBinding(key.WithKeys("shift+tab")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Down, k.Up, k.Activate, k.Dismiss, k.Quit}
}

// domKeys maps bindings to the keys dispatched to the document.
func (k KeyMap) domKeys() []struct {
	binding key.Binding
	key     string
	shift   bool
} {
	return []struct {
		binding key.Binding
		key     string
		shift   bool
	}{
		{k.Up, dom.KeyArrowUp, false},
		{k.Down, dom.KeyArrowDown, false},
		{k.Activate, dom.KeyEnter, false},
		{k.Space, dom.KeySpace, false},
		{k.Dismiss, dom.KeyEscape, false},
		{k.Next, dom.KeyTab, false},
		{k.Previous, dom.KeyTab, true},
	}
}
