package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dragboard/internal/config"
)

// keyMap holds the board's bindings, built from the configured key mappings.
// It satisfies help.KeyMap so the status bar and help overlay stay in sync
// with whatever the user configured.
type keyMap struct {
	PrevLane key.Binding
	NextLane key.Binding
	PrevItem key.Binding
	NextItem key.Binding
	Grab     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevLane: key.NewBinding(
			key.WithKeys(km.PrevLane, "left"),
			key.WithHelp(km.PrevLane+"/←", "prev lane"),
		),
		NextLane: key.NewBinding(
			key.WithKeys(km.NextLane, "right"),
			key.WithHelp(km.NextLane+"/→", "next lane"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys(km.PrevItem, "up"),
			key.WithHelp(km.PrevItem+"/↑", "prev project"),
		),
		NextItem: key.NewBinding(
			key.WithKeys(km.NextItem, "down"),
			key.WithHelp(km.NextItem+"/↓", "next project"),
		),
		Grab: key.NewBinding(
			key.WithKeys(km.Grab),
			key.WithHelp(km.Grab, "grab"),
		),
		Drop: key.NewBinding(
			key.WithKeys(km.Drop),
			key.WithHelp(km.Drop, "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.Cancel),
			key.WithHelp(km.Cancel, "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp is shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevLane, k.NextLane, k.PrevItem, k.NextItem},
		{k.Grab, k.Drop, k.Cancel},
		{k.Help, k.Quit},
	}
}

// carryHelp is shown in the status bar while an item is grabbed
func (k keyMap) carryHelp() []key.Binding {
	return []key.Binding{k.PrevLane, k.NextLane, k.Drop, k.Cancel}
}
