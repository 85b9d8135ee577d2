package main

import (
	"testing"
	"time"

	"github.com/glavchev79/xExpEff/dataset"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dataset.DateLayout, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestComputeDateBounds(t *testing.T) {
	b := computeDateBounds(testDataset(t))
	if !b.ok || dataset.DayKey(b.min) != "2024-01-01" || dataset.DayKey(b.max) != "2024-01-05" {
		t.Errorf("bounds = %+v", b)
	}
	if b := computeDateBounds(dataset.Empty()); b.ok {
		t.Error("empty dataset should have no bounds")
	}
}

func TestStepDate(t *testing.T) {
	b := dateBounds{min: mustDay(t, "2024-01-01"), max: mustDay(t, "2024-01-10"), ok: true}

	tests := []struct {
		name  string
		from  string
		delta time.Duration
		want  string
	}{
		{"zero forward starts at min", "", dateStepDay, "2024-01-01"},
		{"zero backward starts at max", "", -dateStepDay, "2024-01-10"},
		{"one day", "2024-01-03", dateStepDay, "2024-01-04"},
		{"week clamps at max", "2024-01-05", dateStepWeek, "2024-01-10"},
		{"week clamps at min", "2024-01-05", -dateStepWeek, "2024-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var from time.Time
			if tt.from != "" {
				from = mustDay(t, tt.from)
			}
			if got := dataset.DayKey(stepDate(from, tt.delta, b)); got != tt.want {
				t.Errorf("stepDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDateInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-01", "2024-03-01", true},
		{" 01/03/2024 ", "2024-03-01", true},
		{"", "", true},
		{"tomorrow", "", false},
	}
	for _, tt := range tests {
		got, ok := parseDateInput(tt.in)
		if ok != tt.ok {
			t.Errorf("parseDateInput(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		key := ""
		if !got.IsZero() {
			key = dataset.DayKey(got)
		}
		if key != tt.want {
			t.Errorf("parseDateInput(%q) = %q, want %q", tt.in, key, tt.want)
		}
	}
}
