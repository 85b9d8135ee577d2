package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/glavchev79/xExpEff/dataset"
)

const cellTail = "…"

// cellText is what a column shows for r. The link column shows its label,
// the URL itself travels as an OSC 8 hyperlink.
func cellText(r dataset.Record, column string) string {
	if column == dataset.ColLink {
		return r.LinkLabel()
	}
	return r.Value(column)
}

func (m *model) renderCell(r dataset.Record, col ColumnMeta, base lipgloss.Style) string {
	inner := max(0, col.Width-cellStyle.GetHorizontalPadding())
	text := truncate.StringWithTail(cellText(r, col.Name), uint(inner), cellTail)

	st := cellStyle.Inherit(base).Width(col.Width).MaxWidth(col.Width)
	if rule := m.rules.Style(col.Name, r.Value(col.Name)); !rule.IsZero() {
		st = rule.Apply(st)
	}

	if m.ui.searchQuery != "" {
		text = highlightMatches(text, m.ui.searchQuery)
		text = restoreRowStyleAfterReset(text, styleSeq(st))
	}
	if col.Name == dataset.ColLink && r.HasLink() {
		text = termenv.Hyperlink(r.MatchURL, text)
	}
	return st.Render(text)
}

// renderRecord renders the visible columns of r on one line.
func (m *model) renderRecord(r dataset.Record, selected bool) string {
	base := m.theme.rowTextStyle(selected)
	cells := make([]string, 0, len(m.header))
	for _, col := range m.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		cells = append(cells, m.renderCell(r, col, base))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// styleSeq is the colour prefix that re-establishes st after an inner reset.
func styleSeq(st lipgloss.Style) string {
	var seq string
	if bg, ok := st.GetBackground().(lipgloss.Color); ok && bg != "" {
		seq += bgSeq(bg)
	}
	if fg, ok := st.GetForeground().(lipgloss.Color); ok && fg != "" {
		seq += fgSeq(fg)
	}
	return seq
}
