package model

import (
	"fmt"
	"strings"
)

// Table represents a table with cells organized in rows and columns
type Table struct {
	// StyleID is the source table style reference (w:tblStyle), if any.
	StyleID string

	// StyleName is the resolved display name of StyleID.
	StyleName string

	// Cols is the declared grid width. It may exceed the widest row.
	Cols int

	Rows [][]Cell
}

func (t *Table) Kind() BlockKind { return KindTable }

// NewTable creates a new table with given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows: make([][]Cell, rows),
		Cols: cols,
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
		for j := 0; j < cols; j++ {
			table.Rows[i][j] = Cell{Span: 1}
		}
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the grid width: the declared column count, or the widest
// row when nothing was declared.
func (t *Table) ColCount() int {
	n := t.Cols
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cell returns the cell at the given row and column (0-indexed), or nil
// when the position is out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// CellText returns the text of the cell at (row, col), paragraphs joined by
// newlines. Out-of-range positions yield "".
func (t *Table) CellText(row, col int) string {
	c := t.Cell(row, col)
	if c == nil {
		return ""
	}
	return c.Text()
}

// Cell represents a table cell.
//
// A cell spanning several grid columns occupies the first position with
// Span > 1; the positions it covers hold zero-value cells with Span 0.
type Cell struct {
	Paragraphs []Paragraph
	Span       int
}

// Text joins the cell's paragraph texts with newlines.
func (c *Cell) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i := range c.Paragraphs {
		parts[i] = c.Paragraphs[i].Text
	}
	return strings.Join(parts, "\n")
}

// Covered reports whether the cell is a placeholder for a preceding span.
func (c *Cell) Covered() bool {
	return c.Span == 0
}
