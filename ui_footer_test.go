package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderFooter_ZeroWidth(t *testing.T) {
	if got := RenderFooter(0, FooterState{}, DefaultFooterStyles()); got != "" {
		t.Errorf("RenderFooter(0) = %q, want empty", got)
	}
}

func TestRenderFooter(t *testing.T) {
	st := FooterState{
		FileName:      "predictions.csv",
		Country:       "England",
		Division:      "E0",
		Page:          2,
		TotalPages:    3,
		Row:           3,
		TotalRows:     5,
		StatusMessage: "✓ Data filtered successfully!",
	}
	out := RenderFooter(120, st, DefaultFooterStyles())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 120 {
			t.Errorf("line %d width = %d, want 120", i, w)
		}
	}

	for _, want := range []string{
		"NORMAL",
		"predictions.csv",
		"[COUNTRY: England]",
		"[DIV: E0]",
		"[DATE: Any]",
		"Page 2/3",
		"Rows 3/5",
		"Data filtered successfully!",
		defaultLegend,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestRenderFooter_CommandInput(t *testing.T) {
	st := FooterState{Mode: CmdSearch, ModeInput: "[SEARCH] search: celta"}
	out := RenderFooter(140, st, DefaultFooterStyles())
	if !strings.Contains(out, "SEARCH") || !strings.Contains(out, "celta") {
		t.Errorf("footer does not show the command line:\n%s", out)
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		in    string
		w     int
		trunc string
		pad   string
	}{
		{"abcdef", 3, "abc", "abcdef"},
		{"ab", 4, "ab", "ab  "},
		{"ab", 0, "", ""},
	}
	for _, tt := range tests {
		if got := truncatePlain(tt.in, tt.w); got != tt.trunc {
			t.Errorf("truncatePlain(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.trunc)
		}
		if got := padRightPlain(tt.in, tt.w); got != tt.pad {
			t.Errorf("padRightPlain(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.pad)
		}
	}
}

func TestAnsiColor(t *testing.T) {
	if got := ansiFg("#ff0000"); got != "\x1b[38;2;255;0;0m" {
		t.Errorf("ansiFg = %q", got)
	}
	if got := ansiBg(""); got != "\x1b[49m" {
		t.Errorf("ansiBg(\"\") = %q", got)
	}
	if got := ansiFg("240"); got != "" {
		t.Errorf("non-hex colour should be ignored, got %q", got)
	}
}
