package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultCategory labels transactions recorded without an explicit one.
	DefaultCategory = "other"

	// TimestampLayout is the storage form of transaction timestamps,
	// second precision. Range queries compare these as strings, so the
	// layout must sort chronologically.
	TimestampLayout = "2006-01-02 15:04:05"

	// DateLayout is the date-only form accepted on report bounds.
	DateLayout = "2006-01-02"
)

type (
	// Transaction is one signed monetary event. Positive amounts are
	// income, negative amounts are expenses. Records are immutable after
	// insertion; the only destructive operation is a per-user bulk clear.
	Transaction struct {
		ID          int64
		UserID      int64
		Username    string
		Timestamp   time.Time
		Amount      decimal.Decimal
		Category    string
		Description string
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrMissingArgument = errors.New("missing required argument")
	ErrUnknownLanguage = errors.New("unknown language code")
)

// IsIncome reports whether the transaction counts as income. A zero
// amount is neither income nor expense.
func (t Transaction) IsIncome() bool {
	return t.Amount.Sign() > 0
}

// IsExpense reports whether the transaction counts as an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount.Sign() < 0
}

// NormalizeCategory lowercases a free-text category label, substituting
// DefaultCategory when it is blank. Categories are hints, not a closed
// vocabulary.
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCategory
	}
	return s
}
