package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	Country  string
	Division string
	Date     string

	Page       int
	TotalPages int
	Row        int
	TotalRows  int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#4ecdc4"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

const defaultLegend = "(? help · c country · v division · t date · / search · e export)"

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Country == "" {
		st.Country = "All"
	}
	if st.Division == "" {
		st.Division = "All"
	}
	if st.Date == "" {
		st.Date = "Any"
	}
	if st.Legend == "" {
		st.Legend = defaultLegend
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}
	if st.TotalPages < 1 {
		st.TotalPages = 1
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func filterSummary(st FooterState, valueW int) string {
	return fmt.Sprintf("[COUNTRY: %s] · [DIV: %s] · [DATE: %s]",
		truncatePlain(st.Country, valueW),
		truncatePlain(st.Division, valueW),
		truncatePlain(st.Date, len("2006-01-02")),
	)
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	filterValW := 14

	rightPlain := fmt.Sprintf(" Page %d/%d  Rows %d/%d", st.Page, st.TotalPages, st.Row, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 12, 36)
	statusColW := runeWidth(filterSummary(st, filterValW))
	fileColW := leftW - modeColW - statusColW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 10 {
			shrink := min(deficit, modeColW-10)
			modeColW -= shrink
		}
		fileColW = leftW - modeColW - statusColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	modeText := commandLabel(st.Mode)
	innerModeW := max(0, modeColW-2)
	modePillW := modeColW
	if runeWidth(modeText) <= innerModeW {
		modePillW = runeWidth(modeText) + 2
	}
	if slack := modeColW - modePillW; slack > 0 {
		modeColW = modePillW
		fileColW += slack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := renderFilterSegment(statusColW, st, styles, filterValW)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	if used := modeColW + fileColW + statusColW + 2*gapW; used < leftW {
		left += strings.Repeat(" ", leftW-used)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(commandLabel(st.Mode), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runeWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}

	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func renderFilterSegment(colW int, st FooterState, styles FooterStyles, valueW int) string {
	if colW <= 0 {
		return ""
	}
	plain := truncatePlain(filterSummary(st, valueW), colW)
	plain = padRightPlain(plain, colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdDate:
		return "DATE"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

// ansiColor emits a 24-bit colour sequence; the footer always renders in
// true colour regardless of the detected profile.
func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return ""
	}
	tc := termenv.TrueColor.Color(s)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
