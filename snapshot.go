package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/filter"
	"github.com/glavchev79/xExpEff/session"
)

// --- Wire format ---

const snapshotVersion = 1

type filterDTO struct {
	Country  string `json:"country"`
	Division string `json:"division"`
	Date     string `json:"date,omitempty"`
}

type snapshotDTO struct {
	Version int        `json:"version"`
	Source  string     `json:"source,omitempty"`
	Filters filterDTO  `json:"filters"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func toFilterDTO(st filter.State) filterDTO {
	return filterDTO{
		Country:  st.Country,
		Division: st.Division,
		Date:     st.DateKey(),
	}
}

// --- Public API ---

var errOverwriteSource = errors.New("export would overwrite the loaded data file")

// ExportView writes the currently filtered records to path. A .json suffix
// selects the JSON snapshot format, anything else is written as CSV.
func ExportView(s *session.Session, path string) error {
	if samePath(path, s.Dataset().Path()) {
		return fmt.Errorf("export to %s: %w", path, errOverwriteSource)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = writeJSONView(f, s)
	} else {
		err = writeCSVView(f, s)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close export file: %w", cerr)
	}
	return err
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func writeCSVView(out io.Writer, s *session.Session) error {
	w := csv.NewWriter(out)
	columns := s.Dataset().Columns()
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range s.View() {
		if err := w.Write(r.Values(columns)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeJSONView(out io.Writer, s *session.Session) error {
	columns := s.Dataset().Columns()
	view := s.View()
	dto := snapshotDTO{
		Version: snapshotVersion,
		Source:  s.Dataset().Path(),
		Filters: toFilterDTO(s.State()),
		Columns: columns,
		Rows:    make([][]string, 0, len(view)),
	}
	for _, r := range view {
		dto.Rows = append(dto.Rows, r.Values(columns))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a JSON export.
func ReadSnapshot(r io.Reader) (*snapshotDTO, error) {
	var dto snapshotDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return nil, err
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	return &dto, nil
}

// datasetFromSnapshot rebuilds a dataset from a JSON export.
func datasetFromSnapshot(dto *snapshotDTO) (*dataset.Dataset, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(dto.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(dto.Rows); err != nil {
		return nil, err
	}
	return dataset.Read(strings.NewReader(b.String()))
}
