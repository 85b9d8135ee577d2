package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/session"
)

// searchOnce highlights query and moves the cursor to the first matching row
// at or after it, wrapping around at the end. Repeating the same query skips
// the current row.
func (m *model) searchOnce(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	first := 0
	if query == m.ui.searchQuery {
		first = 1
	}
	m.ui.searchQuery = query
	if query == "" || !m.hasRows() {
		return nil
	}

	q := strings.ToLower(query)
	n := m.session.Len()
	for step := first; step < first+n; step++ {
		i := (m.cursor + step) % n
		if m.rowMatches(i, q) {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No match for %q", query), session.LevelWarn, noticeDuration)
}

func (m *model) rowMatches(viewIdx int, lowerQuery string) bool {
	r := m.session.At(viewIdx)
	for _, col := range m.header {
		if !col.Visible {
			continue
		}
		if strings.Contains(strings.ToLower(cellText(r, col.Name)), lowerQuery) {
			return true
		}
	}
	return false
}
