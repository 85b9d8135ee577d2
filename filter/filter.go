// Package filter derives the visible subset of a dataset from the user's
// country, division and date selection.
package filter

import (
	"time"

	"github.com/glavchev79/xExpEff/dataset"
)

// All is the "no restriction" choice for country and division.
const All = dataset.All

// State is the current selection. A zero Date means no date filter.
type State struct {
	Country  string
	Division string
	Date     time.Time
}

// DefaultState selects everything.
func DefaultState() State {
	return State{Country: All, Division: All}
}

func (s State) HasDate() bool { return !s.Date.IsZero() }

// DateKey is the selected date as YYYY-MM-DD, or "" when unset.
func (s State) DateKey() string {
	if !s.HasDate() {
		return ""
	}
	return dataset.DayKey(s.Date)
}

// IsDefault reports whether no filter is active.
func (s State) IsDefault() bool {
	return s.Country == All && s.Division == All && !s.HasDate()
}

// Result is the outcome of one filter pass.
type Result struct {
	// State is the selection after normalisation: with country "All" the
	// division is forced back to "All".
	State State
	// Indices are dataset positions of the matching records, ascending.
	Indices []int
	// Divisions is the valid division list for State.Country.
	Divisions []string
}

// Apply runs the filter chain country -> division -> date over ds. It never
// modifies ds and returns the same result for the same input.
func Apply(ds *dataset.Dataset, st State) Result {
	if st.Country == "" {
		st.Country = All
	}
	if st.Division == "" {
		st.Division = All
	}

	res := Result{Divisions: []string{All}}
	if st.Country != All {
		res.Divisions = ds.DivisionsFor(st.Country)
	} else {
		st.Division = All
	}
	res.State = st

	dateKey := st.DateKey()
	res.Indices = make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		if includeRecord(ds.At(i), st, dateKey) {
			res.Indices = append(res.Indices, i)
		}
	}
	return res
}

func includeRecord(r dataset.Record, st State, dateKey string) bool {
	if st.Country != All && r.Country != st.Country {
		return false
	}
	if st.Division != All && r.Division != st.Division {
		return false
	}
	if dateKey != "" && r.DateKey != dateKey {
		return false
	}
	return true
}

// Records resolves indices against ds.
func Records(ds *dataset.Dataset, indices []int) []dataset.Record {
	out := make([]dataset.Record, 0, len(indices))
	for _, i := range indices {
		out = append(out, ds.At(i))
	}
	return out
}
