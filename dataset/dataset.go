package dataset

import (
	"sort"
	"time"
)

// All is the sentinel choice meaning "no restriction".
const All = "All"

// Dataset is the read-only table loaded at startup.
type Dataset struct {
	path    string
	columns []string
	records []Record
}

// Empty returns the dataset used when nothing could be loaded.
func Empty() *Dataset {
	return New(nil, nil)
}

// New builds a dataset from already parsed records. columns may be nil, in
// which case the required columns plus the derived link column are used.
func New(columns []string, records []Record) *Dataset {
	if columns == nil {
		columns = append(append([]string(nil), RequiredColumns...), ColLink)
	}
	return &Dataset{
		columns: columns,
		records: records,
	}
}

// Path is the file the dataset was read from, if any.
func (d *Dataset) Path() string { return d.path }

// Columns returns the display column order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) IsEmpty() bool { return len(d.records) == 0 }

// At returns the record at position i.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of the record slice.
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

// Countries is "All" followed by the sorted distinct countries.
func (d *Dataset) Countries() []string {
	seen := make(map[string]struct{})
	for _, r := range d.records {
		seen[r.Country] = struct{}{}
	}
	return withSentinel(seen)
}

// DivisionsFor is "All" followed by the sorted distinct divisions of the
// given country. For "All" the list is just the sentinel.
func (d *Dataset) DivisionsFor(country string) []string {
	if country == All {
		return []string{All}
	}
	seen := make(map[string]struct{})
	for _, r := range d.records {
		if r.Country == country {
			seen[r.Division] = struct{}{}
		}
	}
	return withSentinel(seen)
}

// HasCountry reports whether any record belongs to country.
func (d *Dataset) HasCountry(country string) bool {
	for _, r := range d.records {
		if r.Country == country {
			return true
		}
	}
	return false
}

// DateRange returns the earliest and latest parseable record dates.
func (d *Dataset) DateRange() (min, max time.Time, ok bool) {
	for _, r := range d.records {
		t, parsed := ParseDate(r.DateKey)
		if !parsed {
			continue
		}
		if !ok {
			min, max, ok = t, t, true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return min, max, ok
}

func withSentinel(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{All}, values...)
}
