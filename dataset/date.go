package dataset

import (
	"strings"
	"time"
)

// DateLayout is the normalised calendar-day form used for date matching.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"02.01.2006",
	"02/01/06",
}

// ParseDate parses the date formats found in prediction exports.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == Placeholder {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate renders raw as YYYY-MM-DD. Text that is not a date comes
// back trimmed so it can still be compared for equality.
func NormalizeDate(raw string) string {
	if t, ok := ParseDate(raw); ok {
		return t.Format(DateLayout)
	}
	return strings.TrimSpace(raw)
}

// DayKey is the normalised form of an already parsed date.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
