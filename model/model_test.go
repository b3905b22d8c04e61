package model

import "testing"

func TestNewParagraph(t *testing.T) {
	p := NewParagraph(
		Run{Text: "Hello, ", Bold: true},
		Run{HasGraphic: true},
		Run{Text: "world"},
	)
	if p.Text != "Hello, world" {
		t.Errorf("Text = %q, want %q", p.Text, "Hello, world")
	}
	if !p.HasGraphic {
		t.Error("HasGraphic = false, want true")
	}
	if p.Kind() != KindParagraph {
		t.Errorf("Kind = %v, want paragraph", p.Kind())
	}
}

func TestTableDimensions(t *testing.T) {
	tests := []struct {
		name     string
		table    *Table
		wantRows int
		wantCols int
	}{
		{"empty", &Table{}, 0, 0},
		{"new", NewTable(3, 2), 3, 2},
		{"declared wider", &Table{Cols: 4, Rows: [][]Cell{{{Span: 1}}}}, 1, 4},
		{"ragged", &Table{Rows: [][]Cell{{{Span: 1}}, {{Span: 1}, {Span: 1}, {Span: 1}}}}, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.RowCount(); got != tt.wantRows {
				t.Errorf("RowCount = %d, want %d", got, tt.wantRows)
			}
			if got := tt.table.ColCount(); got != tt.wantCols {
				t.Errorf("ColCount = %d, want %d", got, tt.wantCols)
			}
		})
	}
}

func TestTableCellText(t *testing.T) {
	tbl := NewTable(2, 2)
	if err := tbl.SetCell(0, 1, Cell{Span: 1, Paragraphs: []Paragraph{{Text: "a"}, {Text: "b"}}}); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if got := tbl.CellText(0, 1); got != "a\nb" {
		t.Errorf("CellText = %q, want %q", got, "a\nb")
	}
	if got := tbl.CellText(5, 0); got != "" {
		t.Errorf("out of range CellText = %q, want empty", got)
	}
	if tbl.Cell(-1, 0) != nil {
		t.Error("Cell(-1, 0) should be nil")
	}
	if err := tbl.SetCell(0, 9, Cell{}); err == nil {
		t.Error("SetCell out of bounds should fail")
	}
	if tbl.Kind() != KindTable {
		t.Errorf("Kind = %v, want table", tbl.Kind())
	}
}

func TestCellCovered(t *testing.T) {
	if (&Cell{Span: 2}).Covered() {
		t.Error("spanning cell reported as covered")
	}
	if !(&Cell{}).Covered() {
		t.Error("zero cell should be covered")
	}
}

func TestAlignmentString(t *testing.T) {
	tests := map[Alignment]string{
		AlignInherit: "inherit",
		AlignLeft:    "left",
		AlignCenter:  "center",
		AlignRight:   "right",
		AlignJustify: "justify",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", a, got, want)
		}
	}
}
