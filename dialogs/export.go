package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glavchev79/xExpEff/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks for the file the filtered view is written to. The extension
// picks the format (.csv or .json).
type Export struct {
	input   textinput.Model
	visible bool
	// directory relative names are resolved against
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, lastDir: lastDir}
}

// ResolvePath expands a bare file name into lastDir.
func (d *Export) ResolvePath(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.ResolvePath(d.input.Value())
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export (.csv or .json) • esc to cancel")

	return box.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
