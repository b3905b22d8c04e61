package paperlayout

import (
	"github.com/tsawler/paperlayout/docx"
	"github.com/tsawler/paperlayout/model"
)

// styleSource resolves style definitions of the source document.
type styleSource interface {
	TableStyle(id string) (docx.StyleDef, bool)
	StyleChain(id string) []docx.StyleDef
}

// copyTable appends a table with the same grid, style and cell text as src,
// followed by an empty paragraph. Covered positions of spanned cells stay
// empty; borders, shading and widths are not carried over.
func (e *emitter) copyTable(src *model.Table, block int) {
	rows, cols := src.RowCount(), src.ColCount()
	dst := e.doc.AddTable(rows, cols)
	if id := e.tableStyle(src, block); id != "" {
		dst.SetStyle(id)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := src.Cell(r, c)
			if cell == nil || cell.Covered() {
				continue
			}
			out := dst.Cell(r, c)
			for i := range cell.Paragraphs {
				p := out.Paragraphs()[0]
				if i > 0 {
					p = out.AddParagraph()
				}
				copyParagraph(p, &cell.Paragraphs[i])
			}
		}
	}

	e.doc.AddParagraph()
}

// copyParagraph copies alignment and runs with their bold, italic, size and
// font settings.
func copyParagraph(dst *docx.Paragraph, src *model.Paragraph) {
	dst.SetAlignment(src.Alignment)
	if len(src.Runs) == 0 {
		if src.Text != "" {
			dst.AddRun(src.Text)
		}
		return
	}
	for _, r := range src.Runs {
		if r.Text == "" {
			continue
		}
		dst.AddRun(r.Text).
			Bold(r.Bold).
			Italic(r.Italic).
			Size(r.Size).
			Font(r.FontName)
	}
}

// tableStyle returns the style ID to apply to the copy of t, copying the
// source definition and the styles it is based on into the output when
// needed. It returns "" when the style cannot be used.
func (e *emitter) tableStyle(t *model.Table, block int) string {
	id := t.StyleID
	if id == "" {
		return ""
	}
	if e.doc.HasStyle(id) {
		return id
	}
	if e.styles == nil {
		return ""
	}
	if _, ok := e.styles.TableStyle(id); !ok {
		e.warn(WarnTableStyle, block, nil, "table style %q is not defined in the source", id)
		return ""
	}

	chain := e.styles.StyleChain(id)
	for i := len(chain) - 1; i >= 0; i-- {
		e.doc.AddStyle(chain[i])
	}
	if !e.doc.HasStyle(id) {
		e.warn(WarnTableStyle, block, nil, "table style %q could not be copied", id)
		return ""
	}
	return id
}
