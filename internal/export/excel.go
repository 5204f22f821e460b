// Package export encodes a user's ledger into a downloadable XLSX
// workbook with a running-balance column and a closing summary block.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"finledger/internal/ledger"
)

const sheetName = "Transactions"

var headers = []any{"Date", "Time", "Amount", "Category", "Type", "Description", "Running Balance"}

// Filename builds the export file name from the export time.
func Filename(now time.Time) string {
	return fmt.Sprintf("financial_transactions_%s.xlsx", now.Format("20060102_150405"))
}

// Workbook renders the running-balance series and its summary into an
// in-memory XLSX workbook. The series must be in chronological order;
// the summary is appended as a labelled block after the data rows.
func Workbook(series []ledger.RunningEntry, summary ledger.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, fmt.Errorf("style headers: %w", err)
	}

	row := 2
	for _, e := range series {
		t := e.Transaction
		kind := "Expense"
		if t.IsIncome() {
			kind = "Income"
		}
		cells := []any{
			t.Timestamp.Format("2006-01-02"),
			t.Timestamp.Format("15:04:05"),
			t.Amount.InexactFloat64(),
			t.Category,
			kind,
			t.Description,
			e.Balance.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "B", 12); err != nil {
		return nil, fmt.Errorf("size columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "E", 14); err != nil {
		return nil, fmt.Errorf("size columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "F", "G", 24); err != nil {
		return nil, fmt.Errorf("size columns: %w", err)
	}

	if err := writeSummary(f, row+1, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf, nil
}

func writeSummary(f *excelize.File, row int, summary ledger.Summary) error {
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create summary style: %w", err)
	}

	label := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(sheetName, label, "SUMMARY"); err != nil {
		return fmt.Errorf("write summary label: %w", err)
	}
	if err := f.SetCellStyle(sheetName, label, label, boldStyle); err != nil {
		return fmt.Errorf("style summary label: %w", err)
	}

	lines := []struct {
		label string
		value float64
	}{
		{"Total Income:", summary.Income.InexactFloat64()},
		{"Total Expenses:", summary.Expenses.InexactFloat64()},
		{"Final Balance:", summary.Balance.InexactFloat64()},
	}
	for i, line := range lines {
		r := row + 1 + i
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), line.label); err != nil {
			return fmt.Errorf("write summary line: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), line.value); err != nil {
			return fmt.Errorf("write summary value: %w", err)
		}
	}
	return nil
}
