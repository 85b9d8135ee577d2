package dialogs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glavchev79/xExpEff/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	SelectionConfirmedMsg struct {
		ID    string
		Value string
	}
	SelectionCanceledMsg struct{ ID string }
)

const selectorMaxVisible = 12

// Selector is a modal single-choice list (country, division, ...).
type Selector struct {
	id      string
	title   string
	options []string
	cursor  int
	offset  int
	visible bool
}

func (d Selector) Init() tea.Cmd { return nil }

// NewSelectorDialog lists options with current pre-selected. id is echoed in
// the confirmation message so the caller knows which field was edited.
func NewSelectorDialog(id, title string, options []string, current string) *Selector {
	d := &Selector{
		id:      id,
		title:   title,
		options: append([]string(nil), options...),
		visible: true,
	}
	for i, o := range d.options {
		if o == current {
			d.cursor = i
			break
		}
	}
	d.scrollToCursor()
	return d
}

// Selected returns the option under the cursor.
func (d *Selector) Selected() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.cursor]
}

func (d *Selector) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch km.String() {
	case "up", "k":
		d.move(-1)
	case "down", "j":
		d.move(1)
	case "home", "g":
		d.move(-len(d.options))
	case "end", "G":
		d.move(len(d.options))
	case "enter":
		if len(d.options) == 0 {
			return d, nil
		}
		value := d.Selected()
		id := d.id
		logging.Debugf("SelectorDialog[%s]: confirmed %q", id, value)
		return d, func() tea.Msg { return SelectionConfirmedMsg{ID: id, Value: value} }
	case "esc", "q":
		id := d.id
		return d, func() tea.Msg { return SelectionCanceledMsg{ID: id} }
	}
	return d, nil
}

func (d *Selector) move(delta int) {
	if len(d.options) == 0 {
		return
	}
	d.cursor = clamp(d.cursor+delta, 0, len(d.options)-1)
	d.scrollToCursor()
}

func (d *Selector) scrollToCursor() {
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+selectorMaxVisible {
		d.offset = d.cursor - selectorMaxVisible + 1
	}
}

func (d Selector) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(40)
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f1c"))

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(d.title), "")
	end := min(len(d.options), d.offset+selectorMaxVisible)
	for i := d.offset; i < end; i++ {
		if i == d.cursor {
			lines = append(lines, selected.Render("▸ "+d.options[i]))
			continue
		}
		lines = append(lines, "  "+d.options[i])
	}
	if len(d.options) > selectorMaxVisible {
		lines = append(lines, "", fmt.Sprintf("%d/%d", d.cursor+1, len(d.options)))
	}

	help := lipgloss.NewStyle().
		Faint(true).
		Render("↑/↓ move • enter select • esc cancel")

	return box.Render(strings.Join(lines, "\n") + "\n\n" + help)
}

func (d *Selector) Show()          { d.visible = true }
func (d *Selector) Hide()          { d.visible = false }
func (d *Selector) Focus() tea.Cmd { return nil }
func (d *Selector) Blur()          {}
func (d Selector) IsVisible() bool { return d.visible }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
