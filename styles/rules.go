// Package styles maps table cells to visual styles. A rule is a pure
// function from the cell text to a Style and is only evaluated at render
// time.
package styles

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/glavchev79/xExpEff/dataset"
)

const (
	ResultHomeColor = "#28a745"
	ResultDrawColor = "#ffc107"
	ResultAwayColor = "#dc3545"

	// rgb(0, 123, 255)
	OutcomeColor = "#007bff"
	// rgb(255, 193, 7)
	GoalsColor = "#ffc107"

	DefaultThreshold = 0.1
)

// Style is the visual hint for one cell. Empty colours mean "unstyled".
type Style struct {
	Foreground string
	Background string
	// Alpha is the intensity used for Background, 0 when not an intensity style.
	Alpha float64
}

func (s Style) IsZero() bool {
	return s.Foreground == "" && s.Background == ""
}

// Apply layers s over base.
func (s Style) Apply(base lipgloss.Style) lipgloss.Style {
	if s.Foreground != "" {
		base = base.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		base = base.Background(lipgloss.Color(s.Background))
	}
	return base
}

// Rule computes the style of a cell from its text.
type Rule func(value string) Style

// Rules maps column names to their rule.
type Rules map[string]Rule

// Options parameterise Default.
type Options struct {
	// Threshold is the value a probability must exceed to get a background.
	Threshold float64
	// Background is the table background the intensity colours blend into.
	Background string
}

// Default returns the dashboard rules: result colouring plus probability
// intensity for the 1X2 and under/over columns.
func Default(opts Options) Rules {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	outcome := Intensity(OutcomeColor, opts.Background, opts.Threshold)
	goals := Intensity(GoalsColor, opts.Background, opts.Threshold)

	return Rules{
		dataset.ColResult:  ResultRule,
		dataset.ColProb1:   outcome,
		dataset.ColProbX:   outcome,
		dataset.ColProb2:   outcome,
		dataset.ColProbU25: goals,
		dataset.ColProbO25: goals,
	}
}

// Style evaluates the rule for column, a zero Style when there is none.
func (r Rules) Style(column, value string) Style {
	rule, ok := r[column]
	if !ok || rule == nil {
		return Style{}
	}
	return rule(value)
}

// ResultRule colours the match outcome label.
func ResultRule(value string) Style {
	switch value {
	case "Home":
		return Style{Foreground: ResultHomeColor}
	case "Draw":
		return Style{Foreground: ResultDrawColor}
	case "Away":
		return Style{Foreground: ResultAwayColor}
	}
	return Style{}
}

// Intensity returns a rule that paints numeric cells above threshold with
// color at an opacity equal to the value, blended over background.
func Intensity(color, background string, threshold float64) Rule {
	c, err := colorful.Hex(color)
	if err != nil {
		return func(string) Style { return Style{} }
	}
	bg, err := colorful.Hex(background)
	hasBG := err == nil

	return func(value string) Style {
		v, ok := numeric(value)
		if !ok || v <= threshold {
			return Style{}
		}
		alpha := v
		if alpha > 1 {
			alpha = 1
		}
		if !hasBG {
			return Style{Background: c.Hex(), Alpha: alpha}
		}
		return Style{Background: bg.BlendRgb(c, alpha).Clamped().Hex(), Alpha: alpha}
	}
}

func numeric(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == dataset.Placeholder {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
