// Package ledger computes balances, reports and series over a user's
// transactions. It owns the single sign-based income/expense
// classification rule shared by the summary, report and export paths.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/core"
)

// DefaultHistoryLimit is how many transactions recent history shows.
const DefaultHistoryLimit = 10

// ErrNoTransactions signals an empty ledger (or an empty report
// window). Callers render a distinct "no transactions" state instead of
// zero values.
var ErrNoTransactions = errors.New("no transactions")

// Store is the slice of the transaction store the engine reads from.
type Store interface {
	ListByUser(ctx context.Context, userID int64, ascending bool) ([]core.Transaction, error)
	ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time, category string) ([]core.Transaction, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]core.Transaction, error)
	SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

// Summary is the whole-ledger balance view. Expenses is a positive
// magnitude, so Income - Expenses == Balance.
type Summary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Count    int
}

// Report aggregates a date-range window. Net is the algebraic total
// (income plus the negative expense sum), Expenses a positive
// magnitude.
type Report struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Count    int
}

// RunningEntry pairs a transaction with the cumulative balance after
// it, in chronological order.
type RunningEntry struct {
	Transaction core.Transaction
	Balance     decimal.Decimal
}

type Service struct {
	store        Store
	historyLimit int
}

func NewService(store Store) *Service {
	return &Service{
		store:        store,
		historyLimit: DefaultHistoryLimit,
	}
}

// split classifies amounts by sign. income is the sum of positive
// amounts, expenseSum the (negative) sum of negative amounts; zero
// amounts contribute to neither.
func split(txs []core.Transaction) (income, expenseSum decimal.Decimal) {
	income, expenseSum = decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch {
		case t.IsIncome():
			income = income.Add(t.Amount)
		case t.IsExpense():
			expenseSum = expenseSum.Add(t.Amount)
		}
	}
	return income, expenseSum
}

// BalanceSummary computes the full-ledger summary for a user. Returns
// ErrNoTransactions for an empty ledger.
func (s *Service) BalanceSummary(ctx context.Context, userID int64) (Summary, error) {
	txs, err := s.store.ListByUser(ctx, userID, true)
	if err != nil {
		return Summary{}, fmt.Errorf("balance summary: %w", err)
	}
	if len(txs) == 0 {
		return Summary{}, ErrNoTransactions
	}

	income, expenseSum := split(txs)
	return Summary{
		Balance:  income.Add(expenseSum),
		Income:   income,
		Expenses: expenseSum.Abs(),
		Count:    len(txs),
	}, nil
}

// DateRangeReport aggregates the transactions between start and end
// (date bounds widened to full days by the store), optionally filtered
// by category. Returns ErrNoTransactions when the window is empty,
// which is distinct from a window whose amounts sum to zero.
func (s *Service) DateRangeReport(ctx context.Context, userID int64, start, end time.Time, category string) (Report, error) {
	txs, err := s.store.ListByUserAndDateRange(ctx, userID, start, end, category)
	if err != nil {
		return Report{}, fmt.Errorf("date range report: %w", err)
	}
	if len(txs) == 0 {
		return Report{}, ErrNoTransactions
	}

	income, expenseSum := split(txs)
	return Report{
		Income:   income,
		Expenses: expenseSum.Abs(),
		Net:      income.Add(expenseSum),
		Count:    len(txs),
	}, nil
}

// RecentHistory returns the newest transactions, truncated to the
// history limit, along with the total count so callers can say how many
// records were omitted.
func (s *Service) RecentHistory(ctx context.Context, userID int64) ([]core.Transaction, int64, error) {
	txs, err := s.store.RecentByUser(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("recent history: %w", err)
	}
	total, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("recent history count: %w", err)
	}
	return txs, total, nil
}

// RunningBalanceSeries pairs each transaction with the cumulative
// balance up to and including it, oldest first. The last entry's
// balance equals the store's full sum.
func (s *Service) RunningBalanceSeries(ctx context.Context, userID int64) ([]RunningEntry, error) {
	txs, err := s.store.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("running balance series: %w", err)
	}

	series := make([]RunningEntry, len(txs))
	running := decimal.Zero
	for i, t := range txs {
		running = running.Add(t.Amount)
		series[i] = RunningEntry{Transaction: t, Balance: running}
	}
	return series, nil
}

// Balance returns the current algebraic balance, zero for an empty
// ledger.
func (s *Service) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	sum, err := s.store.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance: %w", err)
	}
	return sum, nil
}
