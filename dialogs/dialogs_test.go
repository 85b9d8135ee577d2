package dialogs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelector_PreselectsCurrent(t *testing.T) {
	d := NewSelectorDialog("country", "Select Country", []string{"All", "England", "Spain"}, "Spain")
	if d.Selected() != "Spain" {
		t.Errorf("Selected() = %q, want Spain", d.Selected())
	}
}

func TestSelector_MoveAndConfirm(t *testing.T) {
	d := NewSelectorDialog("division", "Select Division", []string{"All", "E0", "E1"}, "All")

	d.Update(keyMsg("down"))
	d.Update(keyMsg("j"))
	d.Update(keyMsg("j")) // clamped at the end
	if d.Selected() != "E1" {
		t.Fatalf("Selected() = %q, want E1", d.Selected())
	}
	d.Update(keyMsg("up"))

	_, cmd := d.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	msg, ok := cmd().(SelectionConfirmedMsg)
	if !ok {
		t.Fatalf("got %T, want SelectionConfirmedMsg", cmd())
	}
	if msg.ID != "division" || msg.Value != "E0" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestSelector_Cancel(t *testing.T) {
	d := NewSelectorDialog("country", "Select Country", []string{"All"}, "All")
	_, cmd := d.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(SelectionCanceledMsg); !ok {
		t.Errorf("got %T, want SelectionCanceledMsg", cmd())
	}
}

func TestSelector_ScrollsLongLists(t *testing.T) {
	opts := make([]string, 30)
	for i := range opts {
		opts[i] = strings.Repeat("x", i+1)
	}
	d := NewSelectorDialog("country", "Select Country", opts, opts[25])
	view := d.View()
	if !strings.Contains(view, "26/30") {
		t.Errorf("view should show the position, got:\n%s", view)
	}
	if strings.Contains(view, "  x ") {
		t.Error("first option should be scrolled out of view")
	}
}

func TestExport_ResolvePath(t *testing.T) {
	d := NewExportDialog("predictions.csv", "/tmp/out")

	tests := []struct {
		in   string
		want string
	}{
		{"", filepath.Join("/tmp/out", "predictions.csv")},
		{"view.json", filepath.Join("/tmp/out", "view.json")},
		{"/abs/view.csv", "/abs/view.csv"},
		{"sub/view.csv", "sub/view.csv"},
	}
	for _, tt := range tests {
		if got := d.ResolvePath(tt.in); got != tt.want {
			t.Errorf("ResolvePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport_ConfirmAndCancel(t *testing.T) {
	d := NewExportDialog("predictions.csv", "")
	_, cmd := d.Update(keyMsg("enter"))
	msg, ok := cmd().(ExportConfirmedMsg)
	if !ok || msg.Path != "predictions.csv" {
		t.Errorf("enter produced %#v", cmd())
	}

	_, cmd = d.Update(keyMsg("esc"))
	if _, ok := cmd().(ExportCanceledMsg); !ok {
		t.Errorf("esc produced %#v", cmd())
	}
}

func TestHelp_ListsBindingsAndCloses(t *testing.T) {
	b := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "select country"))
	d := NewHelpDialog("Keys", []key.Binding{b})

	if !strings.Contains(d.View(), "select country") {
		t.Error("help view should list the binding")
	}
	_, cmd := d.Update(keyMsg("esc"))
	if d.IsVisible() {
		t.Error("esc should hide the help dialog")
	}
	if _, ok := cmd().(HelpClosedMsg); !ok {
		t.Errorf("got %T, want HelpClosedMsg", cmd())
	}
}
