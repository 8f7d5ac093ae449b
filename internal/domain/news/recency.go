package news

import (
	"fmt"
	"time"
)

// FormatRecency renders a publication time relative to now.
func FormatRecency(ts, now time.Time) string {
	if ts.IsZero() {
		return RecentlyLabel
	}

	diff := now.Sub(ts)
	// Feed clocks run ahead at times; a future timestamp reads as "0m ago".
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		y, m, d := ts.Date()
		return fmt.Sprintf("%d/%d/%d", int(m), d, y)
	}
}

// ParseRecency parses an RFC 3339 timestamp and formats it, falling back to
// "Recently" when the value is empty or malformed.
func ParseRecency(raw string, now time.Time) string {
	if raw == "" {
		return RecentlyLabel
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return RecentlyLabel
	}

	return FormatRecency(ts, now)
}
