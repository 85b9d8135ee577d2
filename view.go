package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/glavchev79/xExpEff/logging"
)

const (
	titleHeight  = 1
	headerHeight = 1
	footerHeight = 2
	tableBorder  = 2
)

// gutterWidth is the width of the cursor marker plus the row number column.
func (m *model) gutterWidth() int {
	return 1 + len(strconv.Itoa(max(1, m.session.Len()))) + 1
}

func (m *model) headerRow() string {
	var cells []string
	for _, col := range m.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		name := truncate.StringWithTail(col.Name, uint(max(0, col.Width-cellStyle.GetHorizontalPadding())), cellTail)
		cells = append(cells, cellStyle.Width(col.Width).MaxWidth(col.Width).Render(name))
	}
	return strings.Repeat(" ", m.gutterWidth()) + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) headerView() string {
	return headerStyle.Render(m.headerPort.View())
}

func (m *model) titleView(width int) string {
	title := m.theme.titleStyle().Render(m.settings.Title)
	page := fmt.Sprintf("page %s", m.pager.View())
	gap := width - lipgloss.Width(title) - lipgloss.Width(page)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + page
}

// footerView renders the 2-line footer.
// width is the rendered content width.
func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)

	st := m.footerState()
	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd,
		)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) footerState() FooterState {
	state := m.session.State()
	st := FooterState{
		Mode:       CmdNone,
		FileName:   m.InitialPath,
		Country:    state.Country,
		Division:   state.Division,
		Date:       m.dateStatusLabel(),
		Page:       m.pager.Page + 1,
		TotalPages: m.pager.TotalPages,
		Row:        m.cursor + 1,
		TotalRows:  m.session.Len(),
	}
	if st.TotalRows == 0 {
		st.Row = 0
	}

	switch m.ui.mode {
	case modeCommand:
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
	case modeDateDrawer:
		st.Mode = CmdDate
	}

	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	} else if m.ui.searchQuery != "" {
		st.StatusMessage = fmt.Sprintf("search: %q", m.ui.searchQuery)
	}
	return st
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := m.theme.tableStyle().Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.titleView(contentW), m.headerView(), bordered}
	if m.ui.dateDrawer.open {
		parts = append(parts, m.dateDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// resize fits the viewports and columns to the terminal.
func (m *model) resize() {
	width := max(1, m.terminalWidth-appstyle.GetHorizontalMargins()-tableBorder)
	height := m.terminalHeight - titleHeight - headerHeight - tableBorder - footerHeight
	if m.ui.dateDrawer.open {
		height -= dateDrawerHeight
	}

	m.viewport.Width = width
	m.viewport.Height = max(1, height)
	m.headerPort.Width = width
	m.headerPort.Height = headerHeight

	m.header = layoutColumns(m.header, width-m.gutterWidth())
}

// refreshView re-renders the page holding the cursor.
func (m *model) refreshView(reason string, relayout bool) {
	logging.Debugf("refreshView reason=%s relayout=%v", reason, relayout)
	if relayout && m.ready {
		m.resize()
	}

	n := m.session.Len()
	m.cursor = clamp(m.cursor, 0, max(0, n-1))
	m.pager.SetTotalPages(max(1, n))
	m.pager.Page = m.cursor / m.pager.PerPage

	m.headerPort.SetContent(m.headerRow())
	m.viewport.SetContent(m.renderPage())
	m.keepCursorVisible()
}

func (m *model) renderPage() string {
	if m.session.Len() == 0 {
		m.ui.visibleStart, m.ui.visibleEnd = 0, -1
		if m.session.Dataset().IsEmpty() {
			return emptyStyle.Render("No data loaded")
		}
		return emptyStyle.Render("No matches for the current filters")
	}

	start, end := m.pager.GetSliceBounds(m.session.Len())
	m.ui.visibleStart, m.ui.visibleEnd = start, end-1

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRowAt(i))
	}
	return strings.Join(lines, "\n")
}

func (m *model) keepCursorVisible() {
	line := m.cursor - m.ui.visibleStart
	if line < 0 {
		return
	}
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *model) renderRowAt(viewIdx int) string {
	selected := viewIdx == m.cursor
	marker := defaultMarker
	if selected {
		marker = m.theme.titleStyle().Render(cursorMarker)
	}
	numW := m.gutterWidth() - 2
	gutter := m.theme.rowTextStyle(selected).Render(fmt.Sprintf("%*d ", numW, viewIdx+1))
	return marker + gutter + m.renderRecord(m.session.At(viewIdx), selected)
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		// case folding changed byte offsets; fall back to exact matching
		lowerText, lowerQuery = text, q
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + termenv.ResetSeq + "m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
