package model

import (
	"math"
	"strings"
)

// DataType is the semantic type inferred for a table column. All cells in a
// column share one type, which drives type-specific cleanup.
type DataType int

const (
	TypeText DataType = iota
	TypeNumeric
	TypeIdentifier
	TypeTolerance
)

func (dt DataType) String() string {
	switch dt {
	case TypeNumeric:
		return "Numeric"
	case TypeIdentifier:
		return "Identifier"
	case TypeTolerance:
		return "Tolerance"
	default:
		return "Text"
	}
}

// Band is a horizontal coordinate interval [Left, Right). A fragment belongs
// to the column whose band contains its x-centroid. The outermost bands of a
// column grid are open (−Inf / +Inf) so stray fragments still map to the
// nearest column.
type Band struct {
	Left  float64
	Right float64
}

// Contains reports whether x falls within the band.
func (b Band) Contains(x float64) bool {
	return x >= b.Left && x < b.Right
}

// Center returns the midpoint of the band. For a band open on one side the
// finite edge is returned, so nearest-center tie-breaks stay meaningful.
func (b Band) Center() float64 {
	switch {
	case math.IsInf(b.Left, -1) && math.IsInf(b.Right, 1):
		return 0
	case math.IsInf(b.Left, -1):
		return b.Right
	case math.IsInf(b.Right, 1):
		return b.Left
	}
	return (b.Left + b.Right) / 2
}

// ColumnSpec describes one detected table column.
type ColumnSpec struct {
	Label        string // header text
	XBand        Band   // horizontal interval claimed by this column
	OrderIndex   int    // left-to-right rank
	InferredType DataType
}

// Cell holds one table cell's text and the union of the bounding boxes of
// the fragments that produced it. Text is the raw concatenation until the
// normalizer rewrites it in place.
type Cell struct {
	Text string
	BBox BBox
}

// IsEmpty reports whether the cell holds no text.
func (c Cell) IsEmpty() bool {
	return c.Text == ""
}

// Table is a reconstructed row-major table: an ordered set of columns and
// rows of cells aligned to them. Every row has exactly one cell per column.
type Table struct {
	Columns    []ColumnSpec
	Rows       [][]Cell
	BBox       BBox
	Confidence float64 // header detection score (0-1)
}

// NewTable creates an empty table over the given columns.
func NewTable(columns []ColumnSpec) *Table {
	return &Table{Columns: columns}
}

// RowCount returns the number of data rows (the header is not a row).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// if out of bounds.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// Headers returns the column labels in order.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	return headers
}

// ColumnValues returns the cell texts of one column, top to bottom.
func (t *Table) ColumnValues(col int) []string {
	if col < 0 || col >= len(t.Columns) {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[col].Text)
	}
	return values
}

// GetText returns the table as tab-separated text, header row first.
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Headers(), "\t"))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
