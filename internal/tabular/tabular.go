// Package tabular reads roster data from delimited text and spreadsheet
// files into a uniform in-memory table.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors for table loading.
var (
	ErrNoHeader = errors.New("input has no header row")
	ErrNoSheet  = errors.New("workbook has no sheets")
)

// utf8BOM is stripped from the first header cell; spreadsheet tools often
// prepend it when exporting CSV.
const utf8BOM = "\ufeff"

// Table is an ordered tabular dataset: one header row and zero or more data
// rows. Every row is padded to the header width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads a tabular file, choosing the reader by extension.
// .xlsx is read as a spreadsheet; everything else is treated as CSV.
func Load(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses CSV data into a Table. The first record is the header.
// Quoting is lenient and records may have varying field counts; short rows
// are padded with empty strings.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	return newTable(header, records[1:]), nil
}

// ReadXLSX reads the first sheet of a workbook into a Table.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	return newTable(rows[0], rows[1:]), nil
}

// newTable pads every data row to the header width and drops fully empty
// rows (trailing blank spreadsheet rows).
func newTable(header []string, rows [][]string) *Table {
	t := &Table{Header: header}
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		padded := make([]string, len(header))
		copy(padded, row)
		t.Rows = append(t.Rows, padded)
	}
	return t
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
