package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Legend key.Binding
	Back   key.Binding

	// Events screen
	Refresh     key.Binding
	CycleView   key.Binding
	Open        key.Binding
	StepBack    key.Binding
	StepForward key.Binding
	JumpPrev    key.Binding
	JumpNext    key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Legend: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "Calendar legend"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "Back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh events"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Cycle event view"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Open selection"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Previous period"),
		),
		StepForward: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Next period"),
		),
		JumpPrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous day"),
		),
		JumpNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
	}
}
