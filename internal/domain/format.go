package domain

import (
	"strings"
	"time"
)

// Fallback strings for per-field degradation when backend data is
// missing or malformed.
const (
	NotSet           = "Not set"
	DateNotAvailable = "Date not available"
	NoDescription    = "No description available"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDateSafely renders a raw backend timestamp for display. Empty
// values render as "Not set" and unparsable ones as "Date not
// available"; formatting never fails a screen.
func FormatDateSafely(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NotSet
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006, 3:04 PM")
		}
	}
	return DateNotAvailable
}
