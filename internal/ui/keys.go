package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Channel visibility, indexed like telemetry.ChannelNames
	Channels []key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Channels: []key.Binding{
			key.NewBinding(
				key.WithKeys("1"),
				key.WithHelp("1", "Toggle mainboard"),
			),
			key.NewBinding(
				key.WithKeys("2"),
				key.WithHelp("2", "Toggle display L"),
			),
			key.NewBinding(
				key.WithKeys("3"),
				key.WithHelp("3", "Toggle display R"),
			),
		},
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help, k.CycleTheme}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Channels,
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// channelFor returns the channel index bound to msg, or -1.
func (k keyMap) channelFor(msg string) int {
	for i, b := range k.Channels {
		for _, name := range b.Keys() {
			if name == msg {
				return i
			}
		}
	}
	return -1
}
