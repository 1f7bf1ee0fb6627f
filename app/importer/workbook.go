package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// openWorkbook opens an uploaded spreadsheet for reading.
func openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return f, nil
}

// sheetMatrix reads a whole sheet as a raw cell matrix for pre-header
// scanning.
func sheetMatrix(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	return rows, nil
}

// findHeaderRow scans the matrix for the first row containing a cell the
// match function recognizes. Source spreadsheets routinely carry title and
// decoration rows above the real header, so the header position cannot be
// assumed. Returns -1 when no row matches.
func findHeaderRow(matrix [][]string, match func(cell string) bool) int {
	for i, row := range matrix {
		for _, cell := range row {
			if cell != "" && match(cell) {
				return i
			}
		}
	}
	return -1
}

// dataRows re-reads the sheet using the given header row as the field-name
// row, yielding one Row per data row below it.
func dataRows(matrix [][]string, headerIdx int) []Row {
	if headerIdx < 0 || headerIdx >= len(matrix) {
		return nil
	}
	headers := matrix[headerIdx]
	var rows []Row
	for _, cells := range matrix[headerIdx+1:] {
		row := NewRow(headers, cells)
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
