package session

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/filter"
)

type recorder struct {
	events []string
}

func (r *recorder) Notify(level Level, msg string) {
	r.events = append(r.events, string(level)+":"+msg)
}

func rec(country, division, date string) dataset.Record {
	return dataset.Record{
		Country:  country,
		Division: division,
		Date:     date,
		DateKey:  dataset.NormalizeDate(date),
	}
}

func day(s string) time.Time {
	t, err := time.Parse(dataset.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func exampleDataset() *dataset.Dataset {
	return dataset.New(nil, []dataset.Record{
		rec("England", "D1", "2024-01-01"),
		rec("Spain", "D1", "2024-01-02"),
	})
}

func richDataset() *dataset.Dataset {
	return dataset.New(nil, []dataset.Record{
		rec("England", "E0", "2024-01-01"),
		rec("England", "E1", "2024-01-01"),
		rec("Spain", "SP1", "2024-01-02"),
		rec("Spain", "SP2", "2024-01-03"),
	})
}

func TestNew_Defaults(t *testing.T) {
	s := New(richDataset())

	if st := s.State(); !st.IsDefault() {
		t.Errorf("State() = %+v, want defaults", st)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if got, want := s.Countries(), []string{filter.All, "England", "Spain"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Countries() = %v, want %v", got, want)
	}
	if got, want := s.Divisions(), []string{filter.All}; !reflect.DeepEqual(got, want) {
		t.Errorf("Divisions() = %v, want %v", got, want)
	}
}

func TestNew_NilDataset(t *testing.T) {
	s := New(nil)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got, want := s.Countries(), []string{filter.All}; !reflect.DeepEqual(got, want) {
		t.Errorf("Countries() = %v, want %v", got, want)
	}
}

func TestExampleScenario(t *testing.T) {
	s := New(exampleDataset())

	if err := s.SetCountry("England"); err != nil {
		t.Fatalf("SetCountry() error = %v", err)
	}
	if s.Len() != 1 || s.At(0).Country != "England" {
		t.Fatalf("view = %+v, want the England record", s.View())
	}
	if got, want := s.Divisions(), []string{filter.All, "D1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Divisions() = %v, want %v", got, want)
	}

	s.SetDate(day("2024-01-01"))
	if s.Len() != 1 || s.At(0).Country != "England" {
		t.Fatalf("view = %+v, want the England record", s.View())
	}

	s.SetDate(day("2024-01-02"))
	if s.Len() != 0 {
		t.Fatalf("view = %+v, want empty", s.View())
	}
}

func TestEmptyDatasetScenario(t *testing.T) {
	s := New(dataset.Empty())
	if got, want := s.Countries(), []string{filter.All}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Countries() = %v, want %v", got, want)
	}

	s.SetDate(day("2024-01-01"))
	if err := s.SetCountry(filter.All); err != nil {
		t.Fatalf("SetCountry(All) error = %v", err)
	}
	if err := s.SetDivision(filter.All); err != nil {
		t.Fatalf("SetDivision(All) error = %v", err)
	}
	s.ClearDate()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got, want := s.Divisions(), []string{filter.All}; !reflect.DeepEqual(got, want) {
		t.Errorf("Divisions() = %v, want %v", got, want)
	}
}

func TestSetCountry_ResetsDivision(t *testing.T) {
	s := New(richDataset())
	if err := s.SetCountry("England"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDivision("E1"); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	for _, country := range []string{"Spain", "England"} {
		if err := s.SetCountry(country); err != nil {
			t.Fatal(err)
		}
		if got := s.State().Division; got != filter.All {
			t.Errorf("after SetCountry(%q) division = %q, want All", country, got)
		}
		if s.Len() != 2 {
			t.Errorf("after SetCountry(%q) Len() = %d, want 2", country, s.Len())
		}
	}
}

func TestSetCountry_AllClearsDivision(t *testing.T) {
	s := New(richDataset())
	_ = s.SetCountry("Spain")
	_ = s.SetDivision("SP2")

	if err := s.SetCountry(filter.All); err != nil {
		t.Fatal(err)
	}
	if st := s.State(); st.Division != filter.All {
		t.Errorf("Division = %q, want All", st.Division)
	}
	if got, want := s.Divisions(), []string{filter.All}; !reflect.DeepEqual(got, want) {
		t.Errorf("Divisions() = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSetters_RejectUnknownValues(t *testing.T) {
	s := New(richDataset())

	if err := s.SetCountry("Italy"); !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("SetCountry(Italy) error = %v, want ErrUnknownCountry", err)
	}
	if err := s.SetDivision("E0"); !errors.Is(err, ErrUnknownDivision) {
		t.Errorf("SetDivision(E0) with country All error = %v, want ErrUnknownDivision", err)
	}

	_ = s.SetCountry("Spain")
	if err := s.SetDivision("E0"); !errors.Is(err, ErrUnknownDivision) {
		t.Errorf("SetDivision(E0) for Spain error = %v, want ErrUnknownDivision", err)
	}
	if st := s.State(); st.Country != "Spain" || st.Division != filter.All {
		t.Errorf("rejected values changed state: %+v", st)
	}
}

func TestSetDate_TruncatesToDay(t *testing.T) {
	s := New(richDataset())
	s.SetDate(time.Date(2024, 1, 3, 21, 45, 0, 0, time.FixedZone("X", 3600)))

	if got := s.State().DateKey(); got != "2024-01-03" {
		t.Errorf("DateKey() = %q, want 2024-01-03", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	s.ClearDate()
	if s.State().HasDate() || s.Len() != 4 {
		t.Errorf("ClearDate() left %+v with %d records", s.State(), s.Len())
	}
}

func TestReset(t *testing.T) {
	s := New(richDataset())
	_ = s.SetCountry("England")
	_ = s.SetDivision("E0")
	s.SetDate(day("2024-01-01"))

	s.Reset()

	if !s.State().IsDefault() {
		t.Errorf("State() = %+v, want defaults", s.State())
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestOnFilterChanged(t *testing.T) {
	r := &recorder{}
	s := New(richDataset(), WithNotifier(r))

	if handled := s.OnFilterChanged(Field("theme"), "dark"); handled {
		t.Error("untracked field should not be handled")
	}
	if len(r.events) != 0 {
		t.Errorf("untracked field produced notifications: %v", r.events)
	}

	if handled := s.OnFilterChanged(FieldDivision, filter.All); !handled {
		t.Error("tracked field should be handled")
	}
	want := []string{"info:" + msgFilterStarted, "success:" + msgFilterSucceeded}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
}

func TestOnFilterChanged_CountryResetsDivisionFirst(t *testing.T) {
	s := New(richDataset())
	_ = s.SetCountry("England")
	_ = s.SetDivision("E0")

	// simulate an external binding that writes the field then notifies
	s.state.Country = "Spain"
	s.OnFilterChanged(FieldCountry, "Spain")

	if st := s.State(); st.Division != filter.All {
		t.Errorf("Division = %q, want All", st.Division)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 Spanish records", s.Len())
	}
}

func TestNotificationsWrapEverySetter(t *testing.T) {
	r := &recorder{}
	s := New(richDataset())
	s.SetNotifier(r)

	_ = s.SetCountry("England")
	_ = s.SetDivision("E1")
	s.SetDate(day("2024-01-01"))
	s.ClearDate()

	if len(r.events) != 8 {
		t.Fatalf("got %d notifications, want 8: %v", len(r.events), r.events)
	}
	for i := 0; i < len(r.events); i += 2 {
		if r.events[i] != "info:"+msgFilterStarted || r.events[i+1] != "success:"+msgFilterSucceeded {
			t.Errorf("unexpected pair %v", r.events[i:i+2])
		}
	}
}

func TestViewIsSubsequenceOfDataset(t *testing.T) {
	ds := richDataset()
	s := New(ds)
	_ = s.SetCountry("Spain")

	idx := s.Indices()
	view := s.View()
	for i, r := range view {
		if !reflect.DeepEqual(r, ds.At(idx[i])) {
			t.Errorf("view[%d] does not match dataset[%d]", i, idx[i])
		}
		if i > 0 && idx[i] <= idx[i-1] {
			t.Errorf("indices %v not ascending", idx)
		}
	}
}
