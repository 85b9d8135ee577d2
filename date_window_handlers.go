package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/logging"
)

const noDatesMsg = "No dates available"

func (m *model) openDateDrawer() tea.Cmd {
	dd := &m.ui.dateDrawer
	dd.open = true
	dd.errorMsg = ""
	dd.draft = m.session.State().Date

	if !m.dates.ok {
		dd.errorMsg = noDatesMsg
	}
	m.updateDateInputFromDraft()
	m.ui.mode = modeDateDrawer
	m.refreshView("date-drawer-open", true)
	return dd.input.Focus()
}

func (m *model) closeDateDrawer() {
	m.ui.dateDrawer.open = false
	m.ui.dateDrawer.errorMsg = ""
	m.ui.dateDrawer.input.Blur()
	m.ui.mode = modeView
	m.refreshView("date-drawer-close", true)
}

func (m *model) handleDateDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dd := &m.ui.dateDrawer

	switch msg.Type {
	case tea.KeyEsc:
		m.closeDateDrawer()
		return m, nil
	case tea.KeyEnter:
		return m, m.applyDateFromInput()
	case tea.KeyLeft:
		m.shiftDraftDate(-dateStepDay)
		return m, nil
	case tea.KeyRight:
		m.shiftDraftDate(dateStepDay)
		return m, nil
	case tea.KeyShiftLeft:
		m.shiftDraftDate(-dateStepWeek)
		return m, nil
	case tea.KeyShiftRight:
		m.shiftDraftDate(dateStepWeek)
		return m, nil
	}
	if msg.String() == "r" {
		return m, m.resetDateFromDrawer()
	}

	var cmd tea.Cmd
	dd.input, cmd = dd.input.Update(msg)
	return m, cmd
}

func (m *model) updateDateInputFromDraft() {
	dd := &m.ui.dateDrawer
	if dd.draft.IsZero() {
		dd.input.SetValue("")
		return
	}
	dd.input.SetValue(dataset.DayKey(dd.draft))
	dd.input.CursorEnd()
}

func (m *model) syncDraftFromInput() {
	dd := &m.ui.dateDrawer
	if t, ok := parseDateInput(dd.input.Value()); ok {
		dd.draft = t
	}
}

func (m *model) shiftDraftDate(delta time.Duration) {
	dd := &m.ui.dateDrawer
	dd.errorMsg = ""
	if !m.dates.ok {
		dd.errorMsg = noDatesMsg
		return
	}
	m.syncDraftFromInput()
	dd.draft = stepDate(dd.draft, delta, m.dates)
	m.updateDateInputFromDraft()
}

// resetDateFromDrawer clears the date filter and closes the drawer.
func (m *model) resetDateFromDrawer() tea.Cmd {
	m.ui.dateDrawer.draft = time.Time{}
	m.updateDateInputFromDraft()
	m.session.ClearDate()
	m.cursor = 0
	m.closeDateDrawer()
	return m.flushNotices()
}

func (m *model) applyDateFromInput() tea.Cmd {
	dd := &m.ui.dateDrawer
	dd.errorMsg = ""

	day, ok := parseDateInput(dd.input.Value())
	if !ok {
		dd.errorMsg = "Invalid date, want " + dataset.DateLayout
		return nil
	}
	// typed days are applied as given; a day without matches is an empty view
	logging.Debugf("date drawer: apply %q", dataset.DayKey(day))
	dd.draft = day
	m.session.SetDate(day)
	m.cursor = 0
	m.closeDateDrawer()
	return m.flushNotices()
}

func (m *model) dateDrawerView(width int) string {
	dd := &m.ui.dateDrawer
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	inputLine := fmt.Sprintf("Date: %s  %s", dd.input.View(), m.dateRangeLabel())
	helpLine := "enter: apply  r: reset  esc: cancel  ←/→: ±1 day  shift+←/→: ±1 week"
	errorLine := ""
	if dd.errorMsg != "" {
		errorLine = "Error: " + dd.errorMsg
	}

	lines := []string{
		lineStyle.Render(inputLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}
	return dateDrawerArea.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m *model) dateRangeLabel() string {
	if !m.dates.ok {
		return "(no dates)"
	}
	return fmt.Sprintf("(%s … %s)", dataset.DayKey(m.dates.min), dataset.DayKey(m.dates.max))
}

func (m *model) dateStatusLabel() string {
	st := m.session.State()
	if !st.HasDate() {
		return "Any"
	}
	return st.DateKey()
}
