package docx

import (
	"strconv"

	"github.com/tsawler/paperlayout/model"
)

// processTable converts a decoded table to the model.
//
// The grid width comes from <w:tblGrid>; when the grid is missing it is the
// widest row measured in spanned columns. A cell spanning n columns occupies
// its first grid position and leaves the next n-1 positions covered.
func (r *Reader) processTable(tbl tableXML) *model.Table {
	colCount := len(tbl.Grid.Cols)
	if colCount == 0 {
		for _, row := range tbl.Rows {
			count := 0
			for _, cell := range row.Cells {
				count += cellSpan(cell)
			}
			if count > colCount {
				colCount = count
			}
		}
	}

	table := &model.Table{
		StyleID: tbl.Properties.Style.Val,
		Cols:    colCount,
		Rows:    make([][]model.Cell, len(tbl.Rows)),
	}
	table.StyleName = r.styleName(table.StyleID)

	for rowIdx, row := range tbl.Rows {
		cells := make([]model.Cell, colCount)
		colIdx := 0
		for _, cell := range row.Cells {
			if colIdx >= colCount {
				break
			}
			span := cellSpan(cell)
			mc := model.Cell{Span: span}
			for _, p := range cell.Paragraphs {
				mc.Paragraphs = append(mc.Paragraphs, *r.processParagraph(p))
			}
			cells[colIdx] = mc
			colIdx += span
		}
		// Positions past the row's last cell are real, empty cells.
		for ; colIdx < colCount; colIdx++ {
			cells[colIdx] = model.Cell{Span: 1}
		}
		table.Rows[rowIdx] = cells
	}

	return table
}

// cellSpan returns the gridSpan of a cell, at least 1.
func cellSpan(cell tableCellXML) int {
	if cell.Properties.GridSpan.Val != "" {
		if span, err := strconv.Atoi(cell.Properties.GridSpan.Val); err == nil && span > 0 {
			return span
		}
	}
	return 1
}
