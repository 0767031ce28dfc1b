package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatUSD formats a float64 amount as US currency with thousands grouping
// and exactly 2 decimal places (e.g. $1,234.56). Negative amounts get a
// leading minus, never clamping: -$25.39.
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatTimestamp renders a time as "MM/DD/YYYY HH:MM:SS AM/PM" in the given
// location, the style claim documents carry in their running header.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("01/02/2006 03:04:05 PM")
}

// FormatReportDate renders a date as "MM/DD/YYYY".
func FormatReportDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("01/02/2006")
}
