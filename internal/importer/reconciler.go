// Package importer turns uploaded spreadsheets into ledger
// transactions, skipping malformed rows without aborting the batch.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finledger/internal/core"
)

// ErrMissingColumns rejects a whole batch whose header row lacks a
// recognizable Date or Amount column. This is the only structural
// failure; everything past it degrades per row.
var ErrMissingColumns = errors.New("missing required Date and Amount columns")

// Recognized column names, matched case-insensitively.
const (
	colDate        = "Date"
	colAmount      = "Amount"
	colCategory    = "Category"
	colDescription = "Description"
)

// Writer is the slice of the store the reconciler inserts through.
type Writer interface {
	Insert(ctx context.Context, t core.Transaction) (int64, error)
}

// Result reports how a batch reconciled.
type Result struct {
	Inserted int
	Skipped  int
}

// Reconciler validates and inserts bulk-uploaded candidate
// transactions. It is stateless per call; nothing persists between
// invocations beyond what lands in the store.
type Reconciler struct {
	store Writer
}

func New(store Writer) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile inserts the table's rows for one user. Rows with a missing
// or unparseable date or amount are skipped and counted; absent
// categories default to "other" and absent descriptions to the
// resolved category. Unlike the single-add path, a bad row never fails
// the batch; only a structurally unusable table (ErrMissingColumns)
// or a store failure does. On a store failure the counts cover the
// rows processed before it.
func (r *Reconciler) Reconcile(ctx context.Context, userID int64, username string, tbl Table) (Result, error) {
	dateCol := tbl.Column(colDate)
	amountCol := tbl.Column(colAmount)
	if dateCol < 0 || amountCol < 0 {
		return Result{}, ErrMissingColumns
	}
	categoryCol := tbl.Column(colCategory)
	descriptionCol := tbl.Column(colDescription)

	var res Result
	for _, row := range tbl.Rows {
		if rowEmpty(row) {
			continue
		}

		ts, err := core.ParseTimestamp(tbl.cell(row, dateCol))
		if err != nil {
			res.Skipped++
			continue
		}
		amount, err := core.ParseAmount(tbl.cell(row, amountCol))
		if err != nil {
			res.Skipped++
			continue
		}

		category := core.NormalizeCategory(tbl.cell(row, categoryCol))
		description := tbl.cell(row, descriptionCol)
		if description == "" {
			description = category
		}

		if _, err := r.store.Insert(ctx, core.Transaction{
			UserID:      userID,
			Username:    username,
			Timestamp:   ts,
			Amount:      amount,
			Category:    category,
			Description: description,
		}); err != nil {
			return res, fmt.Errorf("insert imported row: %w", err)
		}
		res.Inserted++
	}

	slog.InfoContext(ctx, "Import reconciled",
		"user_id", userID,
		"inserted", res.Inserted,
		"skipped", res.Skipped)

	return res, nil
}
