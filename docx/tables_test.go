package docx

import (
	"testing"

	"github.com/tsawler/paperlayout/model"
)

func tableAt(t *testing.T, r *Reader, i int) *model.Table {
	t.Helper()
	blocks := r.Blocks()
	if i >= len(blocks) {
		t.Fatalf("block %d requested, only %d blocks", i, len(blocks))
	}
	tbl, ok := blocks[i].(*model.Table)
	if !ok {
		t.Fatalf("block %d is %v, want table", i, blocks[i].Kind())
	}
	return tbl
}

func TestTableParsing_Simple(t *testing.T) {
	// Simple 2x2 table
	tableXML := `
<w:tbl>
  <w:tblPr><w:tblStyle w:val="TableGrid"/></w:tblPr>
  <w:tblGrid>
    <w:gridCol w:w="2000"/>
    <w:gridCol w:w="2000"/>
  </w:tblGrid>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A1</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>B1</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A2</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>B2</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	tbl := tableAt(t, openTestDOCX(t, createTestDOCX(t, tableXML)), 0)

	if tbl.RowCount() != 2 || tbl.ColCount() != 2 {
		t.Fatalf("table is %dx%d, want 2x2", tbl.RowCount(), tbl.ColCount())
	}
	if tbl.StyleID != "TableGrid" {
		t.Errorf("StyleID = %q, want TableGrid", tbl.StyleID)
	}

	expected := [][]string{{"A1", "B1"}, {"A2", "B2"}}
	for r, row := range expected {
		for c, want := range row {
			if got := tbl.CellText(r, c); got != want {
				t.Errorf("cell(%d,%d) = %q, want %q", r, c, got, want)
			}
		}
	}
}

func TestTableParsing_GridSpan(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tblGrid><w:gridCol/><w:gridCol/><w:gridCol/></w:tblGrid>
  <w:tr>
    <w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>Wide</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>C1</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A2</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	tbl := tableAt(t, openTestDOCX(t, createTestDOCX(t, tableXML)), 0)

	if tbl.ColCount() != 3 {
		t.Fatalf("ColCount = %d, want 3", tbl.ColCount())
	}
	if c := tbl.Cell(0, 0); c.Span != 2 || c.Text() != "Wide" {
		t.Errorf("cell(0,0) = %+v", c)
	}
	if !tbl.Cell(0, 1).Covered() {
		t.Error("cell(0,1) should be covered by the span")
	}
	if got := tbl.CellText(0, 2); got != "C1" {
		t.Errorf("cell(0,2) = %q, want C1", got)
	}
	// Short rows are padded with empty cells.
	if c := tbl.Cell(1, 2); c == nil || c.Covered() || c.Text() != "" {
		t.Errorf("cell(1,2) = %+v, want empty uncovered cell", c)
	}
}

func TestTableParsing_NoGrid(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc>
    <w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>C</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	tbl := tableAt(t, openTestDOCX(t, createTestDOCX(t, tableXML)), 0)
	if tbl.ColCount() != 3 {
		t.Errorf("ColCount = %d, want 3 (widest row in spanned columns)", tbl.ColCount())
	}
}

func TestTableParsing_CellParagraphs(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tblGrid><w:gridCol/></w:tblGrid>
  <w:tr>
    <w:tc>
      <w:p><w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>Head</w:t></w:r></w:p>
      <w:p><w:r><w:rPr><w:sz w:val="18"/><w:rFonts w:ascii="Courier New"/></w:rPr><w:t>code</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
</w:tbl>`

	tbl := tableAt(t, openTestDOCX(t, createTestDOCX(t, tableXML)), 0)
	cell := tbl.Cell(0, 0)
	if len(cell.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(cell.Paragraphs))
	}
	if r := cell.Paragraphs[0].Runs[0]; !r.Bold || !r.Italic {
		t.Errorf("first run = %+v, want bold italic", r)
	}
	if r := cell.Paragraphs[1].Runs[0]; r.Size != 18 || r.FontName != "Courier New" {
		t.Errorf("second run = %+v", r)
	}
	if got := cell.Text(); got != "Head\ncode" {
		t.Errorf("cell text = %q", got)
	}
}
