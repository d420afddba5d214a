package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the clock format used to display times of day.
// The zero value is the 24-hour format.
type TimeFormat int

const (
	Format24Hour TimeFormat = iota
	Format12Hour
)

// NotAvailable is displayed for times that do not exist, e.g. a moonrise on
// a day the moon does not rise.
const NotAvailable = "N/A"

// ParseTimeFormat parses "24h" or "12h" (the trailing 'h' is optional).
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "h") {
	case "24", "":
		return Format24Hour, nil
	case "12":
		return Format12Hour, nil
	}
	return Format24Hour, fmt.Errorf("unknown time format '%s' (expected '12h' or '24h')", s)
}

// Toggled returns the other format.
func (f TimeFormat) Toggled() TimeFormat {
	if f == Format12Hour {
		return Format24Hour
	}
	return Format12Hour
}

func (f TimeFormat) String() string {
	if f == Format12Hour {
		return "12h"
	}
	return "24h"
}

// ToggleLabel describes what toggling would switch to.
func (f TimeFormat) ToggleLabel() string {
	if f == Format12Hour {
		return "Use 24H Time"
	}
	return "Use 12H Time"
}

// FormatClock formats the time of day of t (in t's location) with two-digit
// hours and minutes, e.g. "07:45" or "07:45 PM".
// A zero time yields NotAvailable.
func FormatClock(t time.Time, f TimeFormat) string {
	if t.IsZero() {
		return NotAvailable
	}
	if f == Format12Hour {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

// FormatShortDate formats a date as e.g. "Jan 2".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatThousands formats a non-negative number rounded to an integer with
// comma thousands separators, e.g. 384400.4 -> "384,400".
func FormatThousands(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	negative := n < 0
	if negative {
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
