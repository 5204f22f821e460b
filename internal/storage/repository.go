package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/core"

	_ "modernc.org/sqlite"
)

// StorageError marks a failed store operation. Each store call is
// atomic, so a StorageError means no partial state was committed for
// that call.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Repository owns the transactions and user_preferences tables. No
// other component writes to them.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dbPath and
// brings the schema up to date.
func Open(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert appends a new immutable transaction and returns its id. The
// category is lowercased and defaulted here so the stored form is
// always normalized; the timestamp is truncated to second precision.
func (r *Repository) Insert(ctx context.Context, t core.Transaction) (int64, error) {
	category := core.NormalizeCategory(t.Category)
	description := strings.TrimSpace(t.Description)
	if description == "" {
		description = category
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, username, recorded_at, amount, category, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.UserID, t.Username, t.Timestamp.Truncate(time.Second).Format(core.TimestampLayout),
		t.Amount.String(), category, description)
	if err != nil {
		return 0, storageErr("insert transaction", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert transaction id", err)
	}

	slog.DebugContext(ctx, "Transaction saved",
		"id", id,
		"user_id", t.UserID,
		"amount", t.Amount.String(),
		"category", category)

	return id, nil
}

const transactionColumns = `id, user_id, username, recorded_at, amount, category, description`

// ListByUser returns every transaction for a user ordered by timestamp.
// A user with no transactions yields an empty slice, not an error.
func (r *Repository) ListByUser(ctx context.Context, userID int64, ascending bool) ([]core.Transaction, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE user_id = ? ORDER BY recorded_at `+order+`, id `+order,
		userID)
	if err != nil {
		return nil, storageErr("list transactions", err)
	}
	return scanTransactions(rows, "list transactions")
}

// ListByUserAndDateRange filters by timestamp range, both bounds
// widened to the full day, and optionally by exact category. Category
// comparison is case-insensitive; stored categories are lowercase.
func (r *Repository) ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time, category string) ([]core.Transaction, error) {
	lo := core.DayStart(start).Format(core.TimestampLayout)
	hi := core.DayEnd(end).Format(core.TimestampLayout)

	query := `SELECT ` + transactionColumns + ` FROM transactions
		 WHERE user_id = ? AND recorded_at BETWEEN ? AND ?`
	args := []any{userID, lo, hi}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, strings.ToLower(category))
	}
	query += ` ORDER BY recorded_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list transactions by range", err)
	}
	return scanTransactions(rows, "list transactions by range")
}

// RecentByUser returns up to limit transactions, newest first.
func (r *Repository) RecentByUser(ctx context.Context, userID int64, limit int) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE user_id = ? ORDER BY recorded_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, storageErr("list recent transactions", err)
	}
	return scanTransactions(rows, "list recent transactions")
}

// SumByUser returns the algebraic sum of all amounts, zero for an empty
// ledger. Amounts are summed as decimals, not floats.
func (r *Repository) SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT amount FROM transactions WHERE user_id = ?`, userID)
	if err != nil {
		return decimal.Zero, storageErr("sum transactions", err)
	}
	defer rows.Close()

	sum := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, storageErr("sum transactions", err)
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, storageErr("sum transactions", err)
		}
		sum = sum.Add(d)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, storageErr("sum transactions", err)
	}
	return sum, nil
}

// CountByUser returns the number of transactions for a user.
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, storageErr("count transactions", err)
	}
	return count, nil
}

// DeleteAllForUser removes every transaction for the user and returns
// how many were removed. Irreversible; a no-op returning 0 when the
// ledger is already empty.
func (r *Repository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE user_id = ?`, userID)
	if err != nil {
		return 0, storageErr("delete transactions", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete transactions count", err)
	}

	slog.InfoContext(ctx, "Transactions cleared", "user_id", userID, "removed", removed)
	return removed, nil
}

// Language returns the user's stored language preference, or the
// default fallback when none is stored.
func (r *Repository) Language(ctx context.Context, userID int64) (string, error) {
	var lang string
	err := r.db.QueryRowContext(ctx,
		`SELECT language FROM user_preferences WHERE user_id = ?`, userID).Scan(&lang)
	if err == sql.ErrNoRows {
		return core.DefaultLanguage, nil
	}
	if err != nil {
		return "", storageErr("get language", err)
	}
	return lang, nil
}

// SetLanguage upserts the user's language preference, overwriting
// unconditionally.
func (r *Repository) SetLanguage(ctx context.Context, userID int64, code string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, language) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET language = excluded.language`,
		userID, code)
	if err != nil {
		return storageErr("set language", err)
	}
	return nil
}

func scanTransactions(rows *sql.Rows, op string) ([]core.Transaction, error) {
	defer rows.Close()

	result := []core.Transaction{}
	for rows.Next() {
		var (
			t        core.Transaction
			recorded string
			amount   string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Username, &recorded, &amount, &t.Category, &t.Description); err != nil {
			return nil, storageErr(op, err)
		}
		ts, err := time.Parse(core.TimestampLayout, recorded)
		if err != nil {
			return nil, storageErr(op, err)
		}
		t.Timestamp = ts
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, storageErr(op, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return result, nil
}
