package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const sampleCSV = "\ufeffHome Team,Away Team,Country,Division,Date,Match URL,Result,Prob 1,Prob X,Prob 2,Prob U2.5,Prob O2.5,Odds\n" +
	"Arsenal,Chelsea,England,E0,2024-01-01,https://example.com/m/1,Home,0.55,0.25,0.20,0.40,0.60,1.8\n" +
	"Leeds,Hull,England,E1,2024-01-02,,Draw,0.35,0.30,0.35,0.52,0.48,\n" +
	"Betis,Celta,Spain,SP1,02/01/2024,https://example.com/m/3,,0.45,NaN,0.25,0.50,0.50,2.1\n"

func readSample(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return ds
}

func TestRead_ParsesRecords(t *testing.T) {
	ds := readSample(t)

	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}

	first := ds.At(0)
	if first.HomeTeam != "Arsenal" {
		t.Errorf("HomeTeam = %q, want %q (BOM should be stripped from header)", first.HomeTeam, "Arsenal")
	}
	if !first.Prob1.Numeric || first.Prob1.Num != 0.55 {
		t.Errorf("Prob1 = %+v, want numeric 0.55", first.Prob1)
	}
	if first.Line != 1 {
		t.Errorf("Line = %d, want 1", first.Line)
	}
	if got := first.Value("Odds"); got != "1.8" {
		t.Errorf("Value(Odds) = %q, want %q", got, "1.8")
	}
}

func TestRead_MissingCellsBecomePlaceholder(t *testing.T) {
	ds := readSample(t)

	second := ds.At(1)
	if second.MatchURL != Placeholder {
		t.Errorf("MatchURL = %q, want placeholder", second.MatchURL)
	}
	if second.Value("Odds") != Placeholder {
		t.Errorf("Odds = %q, want placeholder", second.Value("Odds"))
	}

	third := ds.At(2)
	if third.Result != Placeholder {
		t.Errorf("Result = %q, want placeholder", third.Result)
	}
	if third.ProbX.Raw != Placeholder || third.ProbX.Numeric {
		t.Errorf("ProbX = %+v, want non-numeric placeholder", third.ProbX)
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw     string
		numeric bool
		num     float64
	}{
		{"0.45", true, 0.45},
		{" 2.1 ", true, 2.1},
		{"NAN", false, 0},
		{"Nan", false, 0},
		{"abc", false, 0},
		{Placeholder, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parseCell(tt.raw)
			if got.Numeric != tt.numeric || got.Num != tt.num {
				t.Errorf("parseCell(%q) = %+v, want numeric=%v num=%v", tt.raw, got, tt.numeric, tt.num)
			}
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

func TestRead_DerivedLinkColumn(t *testing.T) {
	ds := readSample(t)

	cols := ds.Columns()
	if cols[len(cols)-1] != ColLink {
		t.Fatalf("last column = %q, want %q", cols[len(cols)-1], ColLink)
	}

	tests := []struct {
		idx  int
		want string
	}{
		{0, "[Arsenal vs Chelsea](https://example.com/m/1)"},
		{1, NoLink},
		{2, "[Betis vs Celta](https://example.com/m/3)"},
	}
	for _, tt := range tests {
		if got := ds.At(tt.idx).Value(ColLink); got != tt.want {
			t.Errorf("record %d link = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestRead_NormalisesDates(t *testing.T) {
	ds := readSample(t)

	if got := ds.At(2).DateKey; got != "2024-01-02" {
		t.Errorf("DateKey = %q, want 2024-01-02", got)
	}
	if got := ds.At(2).Date; got != "02/01/2024" {
		t.Errorf("Date = %q, raw value should be kept", got)
	}
}

func TestRead_MissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Home Team,Away Team\nA,B\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err = %v, want ErrNoHeader", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Path() != path {
		t.Errorf("Path() = %q, want %q", ds.Path(), path)
	}
	if ds.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ds.Len())
	}
}

func TestCountriesAndDivisions(t *testing.T) {
	ds := readSample(t)

	if got, want := ds.Countries(), []string{All, "England", "Spain"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Countries() = %v, want %v", got, want)
	}
	if got, want := ds.DivisionsFor("England"), []string{All, "E0", "E1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DivisionsFor(England) = %v, want %v", got, want)
	}
	if got, want := ds.DivisionsFor(All), []string{All}; !reflect.DeepEqual(got, want) {
		t.Errorf("DivisionsFor(All) = %v, want %v", got, want)
	}
	if !ds.HasCountry("Spain") || ds.HasCountry("Italy") {
		t.Error("HasCountry gave the wrong answer")
	}
}

func TestEmpty(t *testing.T) {
	ds := Empty()
	if !ds.IsEmpty() {
		t.Fatal("Empty() should have no records")
	}
	if got, want := ds.Countries(), []string{All}; !reflect.DeepEqual(got, want) {
		t.Errorf("Countries() = %v, want %v", got, want)
	}
	if _, _, ok := ds.DateRange(); ok {
		t.Error("DateRange() should report no dates")
	}
}

func TestDateRange(t *testing.T) {
	ds := readSample(t)
	min, max, ok := ds.DateRange()
	if !ok {
		t.Fatal("DateRange() found no dates")
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !min.Equal(want) {
		t.Errorf("min = %v, want %v", min, want)
	}
	if want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC); !max.Equal(want) {
		t.Errorf("max = %v, want %v", max, want)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-09", "2024-03-09"},
		{"2024-03-09 18:30:00", "2024-03-09"},
		{"09/03/2024", "2024-03-09"},
		{"09.03.2024", "2024-03-09"},
		{" 2024/03/09 ", "2024-03-09"},
		{"soon", "soon"},
		{"-", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
