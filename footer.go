package paperlayout

import (
	"strings"

	"github.com/tsawler/paperlayout/docx"
)

// FooterSize is the footer run size in half-points.
const FooterSize = 20

// footerTabPosition is where the custom footer text is right-aligned.
var footerTabPosition = docx.Inches(6.5)

// decorateFooter replaces the footer content with "Page " and a live page
// number field, followed by a right tab and text when text is not blank.
func decorateFooter(f *docx.Footer, text string) {
	f.Clear()
	p := f.Paragraph()
	p.AddRun("Page ").Size(FooterSize).AddField(docx.PageField())

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p.AddTabStop(docx.RightTab(footerTabPosition))
	p.AddRun("\t").Size(FooterSize)
	p.AddRun(text).Size(FooterSize)
}

// configureSection applies the standard page layout, the column count and
// a fresh footer to s.
func configureSection(s *docx.Section, columns int, footer string) {
	s.Columns = columns
	s.ColumnSpace = docx.DefaultColumnSpace
	s.Margins = docx.StandardMargins()
	decorateFooter(s.Footer, footer)
}
