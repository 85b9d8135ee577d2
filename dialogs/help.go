package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type HelpClosedMsg struct{}

// Help lists the key bindings of the dashboard.
type Help struct {
	title    string
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(title string, bindings []key.Binding) *Help {
	return &Help{
		title:    title,
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	var lines []string
	if d.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(d.title), "")
	}
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return box.Render(fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hint))
}

func (d *Help) Show() { d.visible = true }

func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
