package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"wikiview/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	ToggleFind key.Binding
	Submit     key.Binding
	Backspace  key.Binding
	Left       key.Binding
	Right      key.Binding
	Paste      key.Binding
	Help       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ScrollUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/wheel", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓/wheel", "scroll down")),
	ToggleFind: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "open/close find")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit entry")),
	Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
	Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
	Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
	Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
}

func helpSections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "Navigation", Keys: []key.Binding{keys.ScrollUp, keys.ScrollDown}},
		{Title: "Find", Keys: []key.Binding{keys.ToggleFind, keys.Submit, keys.Backspace, keys.Left, keys.Right, keys.Paste}},
		{Title: "General", Keys: []key.Binding{keys.Help, keys.Quit}},
	}
}
