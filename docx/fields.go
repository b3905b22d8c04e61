package docx

// Field is a complex field written as fldChar begin, instrText, fldChar end.
type Field struct {
	Instruction string
}

// PageField returns a field that renders the current page number.
func PageField() Field {
	return Field{Instruction: "PAGE"}
}

// TabAlign is the alignment of a custom tab stop.
type TabAlign string

const (
	TabLeft   TabAlign = "left"
	TabCenter TabAlign = "center"
	TabRight  TabAlign = "right"
)

// TabStop is a custom paragraph tab stop.
type TabStop struct {
	Align    TabAlign
	Position Length
}

// RightTab returns a right-aligned tab stop at pos from the left margin.
func RightTab(pos Length) TabStop {
	return TabStop{Align: TabRight, Position: pos}
}

func (f Field) markup() []any {
	return []any{
		xFldChar{Type: "begin"},
		xInstrText{Space: "preserve", Text: f.Instruction},
		xFldChar{Type: "end"},
	}
}

func (t TabStop) markup() xTabStop {
	return xTabStop{Val: string(t.Align), Pos: t.Position.Twips()}
}

// colsMarkup renders the column declaration of a section.
func colsMarkup(s *Section) xCols {
	return xCols{Num: s.Columns, Space: s.ColumnSpace.Twips()}
}
