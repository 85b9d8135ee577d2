package session

import (
	"github.com/glavchev79/xExpEff/filter"
	"github.com/glavchev79/xExpEff/logging"
)

// Field names a tracked filter field.
type Field string

const (
	FieldCountry  Field = "selected_country"
	FieldDivision Field = "selected_division"
	FieldDate     Field = "selected_date"
)

// Tracked reports whether changes to f trigger a refilter.
func (f Field) Tracked() bool {
	switch f {
	case FieldCountry, FieldDivision, FieldDate:
		return true
	}
	return false
}

// OnFilterChanged is invoked after a field has been updated. A new country
// resets the division before the filter runs, so the division list is
// rebuilt for that country first. Untracked fields are ignored and false is
// returned.
func (s *Session) OnFilterChanged(field Field, value any) bool {
	if !field.Tracked() {
		logging.Debugf("session: ignoring change to untracked field %q", field)
		return false
	}
	if field == FieldCountry {
		if country, ok := value.(string); ok && country != filter.All {
			s.state.Division = filter.All
		}
	}
	logging.Debugf("session: %s changed to %v", field, value)
	s.refilter()
	return true
}

func (s *Session) refilter() {
	s.notifier.Notify(LevelInfo, msgFilterStarted)

	res := filter.Apply(s.data, s.state)
	s.state = res.State
	s.indices = res.Indices
	s.divisions = res.Divisions

	logging.Infof("session: filter country=%q division=%q date=%q -> %d/%d records",
		s.state.Country, s.state.Division, s.state.DateKey(), len(s.indices), s.data.Len())
	s.notifier.Notify(LevelSuccess, msgFilterSucceeded)
}
