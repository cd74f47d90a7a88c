// Package dateutil parses and formats the loosely-typed date strings that
// arrive with project records, and computes day counts against deadlines.
package dateutil

import (
	"fmt"
	"math"
	"time"
)

// PastDue is returned by DaysLeft once a deadline has passed.
const PastDue = "Past due"

// layouts covers the formats seen in project exports: structured RFC3339
// values and plain calendar dates, with or without a time component.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse interprets a raw date string. The second return is false for
// absent or unparseable input; Parse never returns an error.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a raw date string as "Jan 2, 2006". Absent or
// unparseable input yields "", which callers display as unspecified.
func FormatDate(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// DaysUntil returns the signed whole-day count from now to t, rounded up,
// so a deadline later today still counts as day zero or one partial day
// rather than already elapsed.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// DaysLeft renders the time remaining until a raw deadline as seen from
// now. Absent or unparseable deadlines yield ""; elapsed deadlines yield
// PastDue; otherwise "<n> days" with n possibly zero.
func DaysLeft(raw string, now time.Time) string {
	deadline, ok := Parse(raw)
	if !ok {
		return ""
	}
	n := DaysUntil(deadline, now)
	if n < 0 {
		return PastDue
	}
	return fmt.Sprintf("%d days", n)
}
