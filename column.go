package main

import (
	"github.com/glavchev79/xExpEff/dataset"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // derived match link
	RoleSecondary
	RoleNumeric
	RoleHidden
)

type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func detectRole(name string) ColumnRole {
	switch name {
	case dataset.ColLink:
		return RolePrimary
	case dataset.ColHomeTeam, dataset.ColAwayTeam, dataset.ColCountry:
		return RoleSecondary
	case dataset.ColProb1, dataset.ColProbX, dataset.ColProb2, dataset.ColProbU25, dataset.ColProbO25:
		return RoleNumeric
	case dataset.ColMatchURL:
		// shown through the link column
		return RoleHidden
	default:
		return RoleNormal
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 24
	case RoleSecondary:
		return 12
	case RoleNumeric:
		return 11
	case RoleHidden:
		return 0
	default:
		return 10
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 4.0
	case RoleSecondary:
		return 2.0
	case RoleHidden:
		return 0
	default:
		return 1.0
	}
}

func newColumns(names []string) []ColumnMeta {
	cols := make([]ColumnMeta, len(names))
	for i, name := range names {
		role := detectRole(name)
		cols[i] = ColumnMeta{
			Name:     name,
			Role:     role,
			Visible:  role != RoleHidden,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		}
	}
	return cols
}

// markEmptyColumns hides extra columns that hold nothing but placeholders.
// The known prediction columns always stay visible so an empty table still
// shows its header.
func markEmptyColumns(cols []ColumnMeta, records []dataset.Record) {
	if len(records) == 0 {
		return
	}
	for i := range cols {
		if cols[i].Role == RoleHidden || isKnownColumn(cols[i].Name) {
			continue
		}
		hasData := false
		for _, r := range records {
			if r.Value(cols[i].Name) != dataset.Placeholder {
				hasData = true
				break
			}
		}
		if !hasData {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

func isKnownColumn(name string) bool {
	if name == dataset.ColLink {
		return true
	}
	for _, c := range dataset.RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: every visible column gets its MinWidth and the viewport
		// scrolls horizontally.
		for i := range cols {
			if !cols[i].Visible {
				cols[i].Width = 0
				continue
			}
			cols[i].Width = cols[i].MinWidth
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}

func visibleWidth(cols []ColumnMeta) int {
	w := 0
	for _, c := range cols {
		if c.Visible {
			w += c.Width
		}
	}
	return w
}
