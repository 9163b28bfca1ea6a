package tui

import "github.com/charmbracelet/bubbles/key"

// listKeyMap defines the bindings of the list screen. Edit and Delete are
// switched off while a completed todo is selected.
type listKeyMap struct {
	Toggle key.Binding
	Edit   key.Binding
	Delete key.Binding
	Add    key.Binding
	Quit   key.Binding
}

func defaultListKeyMap() *listKeyMap {
	return &listKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "complete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k *listKeyMap) short() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Delete}
}

// editKeyMap defines the bindings of the edit screen.
type editKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Save   key.Binding
	Submit key.Binding
	Back   key.Binding
}

func defaultEditKeyMap() editKeyMap {
	return editKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Back}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Save, k.Back}}
}

// confirmKeyMap answers the confirmation dialog.
type confirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var confirmKeys = confirmKeyMap{
	Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
}

// forceQuit works on every screen.
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
