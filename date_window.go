package main

import (
	"strings"
	"time"

	"github.com/glavchev79/xExpEff/dataset"
)

const (
	dateStepDay  = 24 * time.Hour
	dateStepWeek = 7 * dateStepDay
)

// dateBounds is the inclusive day range covered by the loaded dataset.
type dateBounds struct {
	min time.Time
	max time.Time
	ok  bool
}

func computeDateBounds(ds *dataset.Dataset) dateBounds {
	min, max, ok := ds.DateRange()
	return dateBounds{min: min, max: max, ok: ok}
}

func clampDateToBounds(t time.Time, b dateBounds) time.Time {
	if !b.ok {
		return t
	}
	if t.Before(b.min) {
		return b.min
	}
	if t.After(b.max) {
		return b.max
	}
	return t
}

// parseDateInput accepts the picker's YYYY-MM-DD layout plus whatever the
// dataset loader understands. Empty input means "no date".
func parseDateInput(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(dataset.DateLayout, raw); err == nil {
		return t, true
	}
	return dataset.ParseDate(raw)
}

func stepDate(t time.Time, delta time.Duration, b dateBounds) time.Time {
	if t.IsZero() {
		if delta < 0 {
			return b.max
		}
		return b.min
	}
	return clampDateToBounds(t.Add(delta), b)
}
