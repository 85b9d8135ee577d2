package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glavchev79/xExpEff/logging"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrNoHeader      = errors.New("file has no header row")
	ErrMissingColumn = errors.New("required column missing")
)

// Cells pandas-style readers treat as missing.
var missingMarkers = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
	"#N/A": {},
}

func isMissing(v string) bool {
	_, ok := missingMarkers[strings.TrimSpace(v)]
	return ok
}

// Load reads the predictions file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	ds.path = path
	logging.Infof("dataset: loaded %d records from %s", ds.Len(), path)
	return ds, nil
}

// Read parses delimited text with a header row. A UTF-8 byte order mark is
// dropped before parsing.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Dataset, error) {
	header := make([]string, len(rows[0]))
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		header[i] = name
		index[name] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cell := func(name string) (string, bool) {
			idx := index[name]
			if idx >= len(row) || isMissing(row[idx]) {
				return Placeholder, false
			}
			return row[idx], true
		}
		get := func(name string) string {
			v, _ := cell(name)
			return v
		}

		rec := Record{
			Line:     i + 1,
			HomeTeam: get(ColHomeTeam),
			AwayTeam: get(ColAwayTeam),
			Country:  get(ColCountry),
			Division: get(ColDivision),
			Date:     get(ColDate),
			Result:   get(ColResult),
			Prob1:    parseCell(get(ColProb1)),
			ProbX:    parseCell(get(ColProbX)),
			Prob2:    parseCell(get(ColProb2)),
			ProbU25:  parseCell(get(ColProbU25)),
			ProbO25:  parseCell(get(ColProbO25)),
		}
		// the link is derived from the URL before placeholders are applied
		if url, ok := cell(ColMatchURL); ok {
			rec.MatchURL = strings.TrimSpace(url)
		} else {
			rec.MatchURL = Placeholder
		}
		rec.DateKey = NormalizeDate(rec.Date)

		for _, name := range header {
			if isRequired(name) || name == ColLink {
				continue
			}
			if rec.extra == nil {
				rec.extra = make(map[string]string)
			}
			rec.extra[name] = get(name)
		}
		records = append(records, rec)
	}

	columns := append([]string(nil), header...)
	if _, ok := index[ColLink]; !ok {
		columns = append(columns, ColLink)
	}
	return New(columns, records), nil
}

func isRequired(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}
