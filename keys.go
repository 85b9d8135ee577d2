package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	SelectCountry key.Binding
	SelectDiv     key.Binding
	PickDate      key.Binding
	ClearDate     key.Binding
	ResetFilters  key.Binding
	RowDown       key.Binding
	RowUp         key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	FirstRow      key.Binding
	LastRow       key.Binding
	ScrollLeft    key.Binding
	ScrollRight   key.Binding
	Search        key.Binding
	Jump          key.Binding
	ExportToFile  key.Binding
	CopyLink      key.Binding
	ToggleTheme   key.Binding
	OpenHelp      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	SelectCountry: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "select country"),
	),
	SelectDiv: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "select division"),
	),
	PickDate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "select date"),
	),
	ClearDate: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset date"),
	),
	ResetFilters: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset all filters"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n/pgdown", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p/pgup", "previous page"),
	),
	FirstRow: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first row"),
	),
	LastRow: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll the table left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll the table right"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export view to file"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy match link"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "toggle theme"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.SelectCountry,
		k.SelectDiv,
		k.PickDate,
		k.ClearDate,
		k.ResetFilters,
		k.RowDown,
		k.RowUp,
		k.NextPage,
		k.PrevPage,
		k.FirstRow,
		k.LastRow,
		k.ScrollLeft,
		k.ScrollRight,
		k.Search,
		k.Jump,
		k.ExportToFile,
		k.CopyLink,
		k.ToggleTheme,
		k.Quit,
	}
}
