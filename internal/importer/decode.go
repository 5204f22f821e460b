package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyFile         = errors.New("file is empty")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Table is an uploaded spreadsheet reduced to a header row and data
// rows. Short rows are allowed; missing cells read as empty fields.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Column returns the index of the named header, case-insensitive, or
// -1 when the table has no such column.
func (t Table) Column(name string) int {
	for i, h := range t.Headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func (t Table) cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Decode parses an uploaded document into a Table, choosing the codec
// from the filename extension. Supported: .csv, .xlsx, .xls.
func Decode(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(r)
	case ".xlsx", ".xls":
		return DecodeXLSX(r)
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// DecodeCSV reads a CSV stream whose first non-empty record is the
// header row.
func DecodeCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	return tableFromRecords(records)
}

// DecodeXLSX reads the first sheet of an Excel workbook, first
// non-empty row as headers.
func DecodeXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, ErrEmptyFile
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (Table, error) {
	start := -1
	for i, rec := range records {
		if !rowEmpty(rec) {
			start = i
			break
		}
	}
	if start == -1 {
		return Table{}, ErrEmptyFile
	}
	return Table{
		Headers: records[start],
		Rows:    records[start+1:],
	}, nil
}

func rowEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
