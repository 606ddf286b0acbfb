// Package export persists reconstructed tables as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/scantab/model"
)

// maxColWidth caps autosized column widths so one long cell cannot blow up
// the layout.
const maxColWidth = 60

// WriteWorkbook writes the tables to w as an XLSX workbook, one sheet per
// table. Each sheet starts with a bold header row of column labels followed
// by the normalized cell rows.
func WriteWorkbook(w io.Writer, tables []*model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, table := range tables {
		sheet := fmt.Sprintf("Table %d", i+1)
		if i == 0 {
			// Rename the default sheet rather than leaving an empty Sheet1.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, table, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the tables to an XLSX file at path.
func SaveWorkbook(path string, tables []*model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteWorkbook(f, tables); err != nil {
		return err
	}
	return f.Close()
}

// writeSheet fills one sheet with a table's header and rows and autosizes
// the columns.
func writeSheet(f *excelize.File, sheet string, table *model.Table, headerStyle int) error {
	headers := table.Headers()
	widths := make([]int, len(headers))

	for col, label := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("invalid header coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header cell %s: %w", cell, err)
		}
		widths[col] = len(label)
	}

	for rowIdx, row := range table.Rows {
		for col, c := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, c.Text); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			if col < len(widths) && len(c.Text) > widths[col] {
				widths[col] = len(c.Text)
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("invalid column number: %w", err)
		}
		w := float64(width + 2)
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}
