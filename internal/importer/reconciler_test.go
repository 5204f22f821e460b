package importer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"finledger/internal/core"
)

type fakeWriter struct {
	inserted []core.Transaction
	failAt   int // 1-based insert index to fail on, 0 disables
}

var errWriter = errors.New("store down")

func (f *fakeWriter) Insert(_ context.Context, t core.Transaction) (int64, error) {
	if f.failAt > 0 && len(f.inserted)+1 == f.failAt {
		return 0, errWriter
	}
	f.inserted = append(f.inserted, t)
	return int64(len(f.inserted)), nil
}

func table(headers []string, rows ...[]string) Table {
	return Table{Headers: headers, Rows: rows}
}

func TestReconcileMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{name: "no amount", headers: []string{"Date", "Category"}},
		{name: "no date", headers: []string{"Amount", "Category"}},
		{name: "neither", headers: []string{"Merchant", "Category"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{}
			_, err := New(w).Reconcile(context.Background(), 1, "alice",
				table(tt.headers, []string{"2025-08-01", "10"}))
			if !errors.Is(err, ErrMissingColumns) {
				t.Fatalf("expected ErrMissingColumns, got %v", err)
			}
			if len(w.inserted) != 0 {
				t.Errorf("no row may be processed before the columns check")
			}
		})
	}
}

func TestReconcileSkipsBadRows(t *testing.T) {
	w := &fakeWriter{}
	tbl := table(
		[]string{"Date", "Amount", "Category", "Description"},
		[]string{"2025-08-01", "1000", "Salary", "August pay"},
		[]string{"", "10", "food", ""},            // missing date
		[]string{"not-a-date", "10", "food", ""},  // bad date
		[]string{"2025-08-02", "", "food", ""},    // missing amount
		[]string{"2025-08-02", "oops", "food", ""}, // bad amount
		[]string{"2025-08-03", "-250.50", "", ""}, // defaults kick in
	)

	res, err := New(w).Reconcile(context.Background(), 1, "alice", tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inserted != 2 || res.Skipped != 4 {
		t.Fatalf("result = %+v, want inserted=2 skipped=4", res)
	}

	first := w.inserted[0]
	if first.Category != "salary" || first.Description != "August pay" {
		t.Errorf("first row = %q/%q, want normalized category and kept description", first.Category, first.Description)
	}
	if got := first.Timestamp.Format(core.TimestampLayout); got != "2025-08-01 00:00:00" {
		t.Errorf("first row timestamp = %s", got)
	}

	second := w.inserted[1]
	if second.Category != "other" || second.Description != "other" {
		t.Errorf("defaults = %q/%q, want other/other", second.Category, second.Description)
	}
	if !second.Amount.Equal(decimal.RequireFromString("-250.50")) {
		t.Errorf("amount = %s, want -250.50", second.Amount)
	}

	// Accepted rows must carry the caller's identity.
	for _, tx := range w.inserted {
		if tx.UserID != 1 || tx.Username != "alice" {
			t.Errorf("row missing caller identity: %+v", tx)
		}
	}
}

func TestReconcileAcceptedSum(t *testing.T) {
	w := &fakeWriter{}
	tbl := table(
		[]string{"Date", "Amount"},
		[]string{"2025-08-01", "100"},
		[]string{"2025-08-01", "bad"},
		[]string{"2025-08-02", "-40"},
		[]string{"2025-08-03", "2.50"},
	)

	res, err := New(w).Reconcile(context.Background(), 1, "alice", tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inserted != 3 || res.Skipped != 1 {
		t.Fatalf("result = %+v", res)
	}

	sum := decimal.Zero
	for _, tx := range w.inserted {
		sum = sum.Add(tx.Amount)
	}
	if !sum.Equal(decimal.RequireFromString("62.50")) {
		t.Errorf("accepted sum = %s, want 62.50", sum)
	}
}

func TestReconcileIgnoresBlankRows(t *testing.T) {
	w := &fakeWriter{}
	tbl := table(
		[]string{"Date", "Amount"},
		[]string{"", ""},
		[]string{"2025-08-01", "5"},
	)

	res, err := New(w).Reconcile(context.Background(), 1, "alice", tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inserted != 1 || res.Skipped != 0 {
		t.Errorf("blank rows must not count as skipped: %+v", res)
	}
}

func TestReconcileStoreFailure(t *testing.T) {
	w := &fakeWriter{failAt: 2}
	tbl := table(
		[]string{"Date", "Amount"},
		[]string{"2025-08-01", "1"},
		[]string{"2025-08-02", "2"},
	)

	res, err := New(w).Reconcile(context.Background(), 1, "alice", tbl)
	if !errors.Is(err, errWriter) {
		t.Fatalf("expected store error, got %v", err)
	}
	if res.Inserted != 1 {
		t.Errorf("counts must cover rows processed before the failure: %+v", res)
	}
}

func TestDecodeCSV(t *testing.T) {
	input := "Date,Amount,Category\n2025-08-01,1000,salary\n2025-08-02,-250,food\n"

	tbl, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Column("date") != 0 || tbl.Column("AMOUNT") != 1 {
		t.Errorf("column lookup must be case-insensitive: %+v", tbl.Headers)
	}
	if tbl.Column("Description") != -1 {
		t.Errorf("absent column must report -1")
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(tbl.Rows))
	}
}

func TestDecodeXLSXMatchesCSV(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	records := [][]any{
		{"Date", "Amount", "Category"},
		{"2025-08-01", "1000", "salary"},
		{"2025-08-02", "-250", "food"},
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rec); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("encode workbook: %v", err)
	}

	fromXLSX, err := DecodeXLSX(buf)
	if err != nil {
		t.Fatalf("decode xlsx: %v", err)
	}
	fromCSV, err := DecodeCSV(strings.NewReader("Date,Amount,Category\n2025-08-01,1000,salary\n2025-08-02,-250,food\n"))
	if err != nil {
		t.Fatalf("decode csv: %v", err)
	}

	wa := &fakeWriter{}
	wb := &fakeWriter{}
	resA, err := New(wa).Reconcile(context.Background(), 1, "alice", fromXLSX)
	if err != nil {
		t.Fatalf("reconcile xlsx: %v", err)
	}
	resB, err := New(wb).Reconcile(context.Background(), 1, "alice", fromCSV)
	if err != nil {
		t.Fatalf("reconcile csv: %v", err)
	}
	if resA != resB {
		t.Errorf("xlsx result %+v != csv result %+v", resA, resB)
	}
	if len(wa.inserted) != len(wb.inserted) {
		t.Fatalf("insert counts differ: %d vs %d", len(wa.inserted), len(wb.inserted))
	}
	for i := range wa.inserted {
		if !wa.inserted[i].Amount.Equal(wb.inserted[i].Amount) {
			t.Errorf("row %d amounts differ: %s vs %s", i, wa.inserted[i].Amount, wb.inserted[i].Amount)
		}
	}
}

func TestReconcileXLSXNativeDateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []any{"Date", "Amount"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	// A date-typed cell, not a string; readers render it in the short
	// numeric form rather than any ISO layout.
	if err := f.SetCellValue(sheet, "A2", time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("write date cell: %v", err)
	}
	if err := f.SetCellValue(sheet, "B2", "1000"); err != nil {
		t.Fatalf("write amount cell: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("encode workbook: %v", err)
	}

	tbl, err := DecodeXLSX(buf)
	if err != nil {
		t.Fatalf("decode xlsx: %v", err)
	}

	w := &fakeWriter{}
	res, err := New(w).Reconcile(context.Background(), 1, "alice", tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inserted != 1 || res.Skipped != 0 {
		t.Fatalf("result = %+v, want inserted=1 skipped=0", res)
	}

	ts := w.inserted[0].Timestamp
	if ts.Year() != 2025 || ts.Month() != time.August || ts.Day() != 19 {
		t.Errorf("timestamp = %v, want 2025-08-19", ts)
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode("statement.pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeEmptyCSV(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
