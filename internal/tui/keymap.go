package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the app.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help overlay.
	Help key.Binding

	// Up and Down move the friends cursor.
	Up   key.Binding
	Down key.Binding

	// Toggle selects or deselects the friend under the cursor.
	Toggle key.Binding

	// Add opens the add-friend form.
	Add key.Binding

	// Delete asks to remove the friend under the cursor.
	Delete key.Binding

	// NextField and PrevField move focus inside the split panel.
	NextField key.Binding
	PrevField key.Binding

	// Submit settles the split, saves a setting, or starts editing one.
	Submit key.Binding

	// Cancel closes the active panel, form or modal.
	Cancel key.Binding

	// Payer flips who pays while the payer row is focused.
	Payer key.Binding

	// Confirm and Deny answer the delete modal.
	Confirm key.Binding
	Deny    key.Binding

	// PrevTab and NextTab cycle tabs.
	PrevTab key.Binding
	NextTab key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select / close"),
		),
		Add: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add friend"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete friend"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "split bill"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Payer: key.NewBinding(
			key.WithKeys("p", "left", "right", " "),
			key.WithHelp("p ←/→", "who pays"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "delete"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "keep"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next tab"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Add, k.Delete},
		{k.NextField, k.PrevField, k.Submit, k.Payer, k.Cancel},
		{k.PrevTab, k.NextTab, k.Help, k.Quit},
	}
}
