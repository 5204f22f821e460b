// Package core holds the ledger domain types and the parsing helpers
// shared by the command and import paths.
package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-supplied amount string into a signed
// decimal. It accepts both dot (12.34) and comma (12,34) decimal
// separators and an optional leading sign. The sign is the sole
// income/expense discriminator, so negative and zero values are legal.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	// A comma counts as the decimal separator only in its unambiguous
	// form: exactly one, no dot alongside it, at most two digits after
	// it. Anything else is likely a thousands separator and rejected.
	if i := strings.IndexByte(s, ','); i >= 0 {
		if strings.Count(s, ",") > 1 || strings.ContainsRune(s, '.') || len(s)-i-1 > 2 {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		s = s[:i] + "." + s[i+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// ParseDate parses a date-only bound in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Timestamp layouts accepted on bulk import, most specific first. The
// last two are how xlsx readers render native date and datetime cells.
var importTimestampLayouts = []string{
	TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
	"2006/01/02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"1/2/06 15:04",
	"01-02-06",
}

// ParseTimestamp parses an imported date field using the layouts above,
// truncating to second precision. Date-only values land at midnight.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range importTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DayStart widens a date-only bound down to 00:00:00.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd widens a date-only bound up to 23:59:59.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
