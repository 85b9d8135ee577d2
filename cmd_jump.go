package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/logging"
	"github.com/glavchev79/xExpEff/session"
)

func (m *model) hasRows() bool {
	return m.session.Len() > 0
}

func (m *model) jumpToStart() {
	if !m.hasRows() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.hasRows() {
		return
	}
	m.cursor = m.session.Len() - 1
}

// jumpToLine moves to the n-th (1-based) row of the filtered view.
func (m *model) jumpToLine(n int) tea.Cmd {
	logging.Debugf("jumpToLine %d", n)
	if !m.hasRows() {
		return m.startNotice("Nothing to jump to", session.LevelWarn, noticeDuration)
	}
	if n <= 0 || n > m.session.Len() {
		return m.startNotice(fmt.Sprintf("Row %d out of bounds", n), session.LevelWarn, noticeDuration)
	}
	m.cursor = n - 1
	return nil
}

func (m *model) moveCursor(delta int) {
	if !m.hasRows() {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, m.session.Len()-1)
}

func (m *model) nextPage() {
	if !m.hasRows() {
		return
	}
	per := m.pager.PerPage
	next := (m.cursor/per + 1) * per
	if next >= m.session.Len() {
		next = m.session.Len() - 1
	}
	m.cursor = next
}

func (m *model) prevPage() {
	if !m.hasRows() {
		return
	}
	per := m.pager.PerPage
	prev := (m.cursor/per - 1) * per
	if prev < 0 {
		prev = 0
	}
	m.cursor = prev
}
