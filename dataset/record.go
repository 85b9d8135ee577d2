package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column names the loader expects in the input file.
const (
	ColHomeTeam = "Home Team"
	ColAwayTeam = "Away Team"
	ColCountry  = "Country"
	ColDivision = "Division"
	ColDate     = "Date"
	ColMatchURL = "Match URL"
	ColResult   = "Result"
	ColProb1    = "Prob 1"
	ColProbX    = "Prob X"
	ColProb2    = "Prob 2"
	ColProbU25  = "Prob U2.5"
	ColProbO25  = "Prob O2.5"

	// ColLink is derived at load time from the team names and the match URL.
	ColLink = "URL"
)

// Placeholder replaces every missing cell.
const Placeholder = "-"

// NoLink is the derived link label for records without a match URL.
const NoLink = "No Link"

// RequiredColumns lists the columns every input file must carry.
var RequiredColumns = []string{
	ColHomeTeam, ColAwayTeam, ColCountry, ColDivision, ColDate, ColMatchURL,
	ColResult, ColProb1, ColProbX, ColProb2, ColProbU25, ColProbO25,
}

// Cell is a probability value as read from the file.
type Cell struct {
	Raw     string
	Num     float64
	Numeric bool
}

func parseCell(raw string) Cell {
	c := Cell{Raw: raw}
	if raw == Placeholder {
		return c
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsNaN(f) {
		c.Num = f
		c.Numeric = true
	}
	return c
}

// Record is one row of the predictions file.
type Record struct {
	Line int // 1-based data row number in the source file

	HomeTeam string
	AwayTeam string
	Country  string
	Division string
	Date     string
	MatchURL string
	Result   string

	Prob1   Cell
	ProbX   Cell
	Prob2   Cell
	ProbU25 Cell
	ProbO25 Cell

	// DateKey is Date normalised to YYYY-MM-DD (or the trimmed raw text when
	// it does not parse as a date).
	DateKey string

	extra map[string]string
}

// HasLink reports whether the record carries a match URL.
func (r Record) HasLink() bool {
	return r.MatchURL != "" && r.MatchURL != Placeholder
}

// LinkLabel is the human part of the derived link column.
func (r Record) LinkLabel() string {
	if !r.HasLink() {
		return NoLink
	}
	return fmt.Sprintf("%s vs %s", r.HomeTeam, r.AwayTeam)
}

// Link renders the derived column as a markdown link.
func (r Record) Link() string {
	if !r.HasLink() {
		return NoLink
	}
	return fmt.Sprintf("[%s](%s)", r.LinkLabel(), r.MatchURL)
}

// Value returns the cell of the named column, Placeholder for unknown names.
func (r Record) Value(column string) string {
	switch column {
	case ColHomeTeam:
		return r.HomeTeam
	case ColAwayTeam:
		return r.AwayTeam
	case ColCountry:
		return r.Country
	case ColDivision:
		return r.Division
	case ColDate:
		return r.Date
	case ColMatchURL:
		return r.MatchURL
	case ColResult:
		return r.Result
	case ColProb1:
		return r.Prob1.Raw
	case ColProbX:
		return r.ProbX.Raw
	case ColProb2:
		return r.Prob2.Raw
	case ColProbU25:
		return r.ProbU25.Raw
	case ColProbO25:
		return r.ProbO25.Raw
	case ColLink:
		return r.Link()
	}
	if v, ok := r.extra[column]; ok {
		return v
	}
	return Placeholder
}

// Values returns the cells in the given column order.
func (r Record) Values(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = r.Value(c)
	}
	return out
}
