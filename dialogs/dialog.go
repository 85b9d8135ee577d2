package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all modal dialogs (Export, Help, Selector)
// implement. The model forwards every message to the active dialog while it
// is visible.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
