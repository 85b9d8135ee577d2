// Package session holds the state of one interactive dashboard session:
// the loaded dataset, the current filter selection and the view derived
// from it. Every mutation goes through a setter that synchronously runs the
// change dispatcher, so the view is always consistent with the selection.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/filter"
	"github.com/glavchev79/xExpEff/logging"
)

var (
	ErrUnknownCountry  = errors.New("unknown country")
	ErrUnknownDivision = errors.New("unknown division")
)

// Level classifies a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

const (
	msgFilterStarted   = "Filtering data..."
	msgFilterSucceeded = "Data filtered successfully!"
)

// Notifier receives progress notifications. Implementations must not call
// back into the session.
type Notifier interface {
	Notify(level Level, msg string)
}

type discard struct{}

func (discard) Notify(Level, string) {}

// Session is not safe for concurrent use; the UI drives it from a single
// goroutine.
type Session struct {
	data      *dataset.Dataset
	countries []string
	notifier  Notifier

	state     filter.State
	indices   []int
	divisions []string
}

type Option func(*Session)

// WithNotifier routes the filtering notifications to n.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New starts a session over ds with every filter at its default. A nil ds
// is treated as an empty dataset.
func New(ds *dataset.Dataset, opts ...Option) *Session {
	if ds == nil {
		ds = dataset.Empty()
	}
	s := &Session{
		data:      ds,
		countries: ds.Countries(),
		notifier:  discard{},
		state:     filter.DefaultState(),
		divisions: []string{filter.All},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.indices = filter.Apply(ds, s.state).Indices
	logging.Debugf("session: started with %d records, %d countries", ds.Len(), len(s.countries)-1)
	return s
}

// SetNotifier replaces the notifier; nil silences notifications.
func (s *Session) SetNotifier(n Notifier) {
	if n == nil {
		n = discard{}
	}
	s.notifier = n
}

func (s *Session) Dataset() *dataset.Dataset { return s.data }

func (s *Session) State() filter.State { return s.state }

// Countries is the country choice list, "All" first.
func (s *Session) Countries() []string {
	return append([]string(nil), s.countries...)
}

// Divisions is the division choice list for the selected country.
func (s *Session) Divisions() []string {
	return append([]string(nil), s.divisions...)
}

// Indices are the dataset positions of the visible records.
func (s *Session) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Len is the number of visible records.
func (s *Session) Len() int { return len(s.indices) }

// At returns the i-th visible record.
func (s *Session) At(i int) dataset.Record {
	return s.data.At(s.indices[i])
}

// View returns the visible records in dataset order.
func (s *Session) View() []dataset.Record {
	return filter.Records(s.data, s.indices)
}

// SetCountry selects a country ("All" clears the restriction).
func (s *Session) SetCountry(country string) error {
	if country != filter.All && !s.data.HasCountry(country) {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	s.state.Country = country
	s.OnFilterChanged(FieldCountry, country)
	return nil
}

// SetDivision selects a division of the current country.
func (s *Session) SetDivision(division string) error {
	if division != filter.All && !contains(s.divisions, division) {
		return fmt.Errorf("%w: %q", ErrUnknownDivision, division)
	}
	s.state.Division = division
	s.OnFilterChanged(FieldDivision, division)
	return nil
}

// SetDate restricts the view to one calendar day. A zero time clears it.
func (s *Session) SetDate(day time.Time) {
	if !day.IsZero() {
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	}
	s.state.Date = day
	s.OnFilterChanged(FieldDate, day)
}

// ClearDate removes the date restriction.
func (s *Session) ClearDate() {
	s.SetDate(time.Time{})
}

// Reset puts every filter back to its default.
func (s *Session) Reset() {
	s.state.Date = time.Time{}
	s.state.Division = filter.All
	if err := s.SetCountry(filter.All); err != nil {
		// "All" is always accepted
		logging.Errorf("session: reset: %v", err)
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
