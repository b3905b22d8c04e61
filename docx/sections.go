package docx

import "fmt"

// Length is a distance in English Metric Units (914400 per inch).
type Length int64

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
	emuPerTwip  = 635
)

// Inches returns a Length of n inches.
func Inches(n float64) Length { return Length(n*emuPerInch + 0.5) }

// Pt returns a Length of n points.
func Pt(n float64) Length { return Length(n*emuPerPoint + 0.5) }

// Twips returns a Length of n twentieths of a point.
func Twips(n int64) Length { return Length(n * emuPerTwip) }

// EMU returns the length in English Metric Units.
func (l Length) EMU() int64 { return int64(l) }

// Twips returns the length rounded to twentieths of a point.
func (l Length) Twips() int64 { return (int64(l) + emuPerTwip/2) / emuPerTwip }

// Inches returns the length in inches.
func (l Length) Inches() float64 { return float64(l) / emuPerInch }

func (l Length) String() string { return fmt.Sprintf("%.2fin", l.Inches()) }

// SectionStart is how a section begins relative to the previous one.
type SectionStart int

const (
	StartNewPage SectionStart = iota
	StartContinuous
)

func (s SectionStart) String() string {
	if s == StartContinuous {
		return "continuous"
	}
	return "nextPage"
}

// Margins are the page margins of a section.
type Margins struct {
	Top, Bottom, Left, Right Length
	Header, Footer           Length
}

// StandardMargins are 1in top and bottom, 0.75in left and right.
func StandardMargins() Margins {
	return Margins{
		Top:    Inches(1),
		Bottom: Inches(1),
		Left:   Inches(0.75),
		Right:  Inches(0.75),
		Header: Inches(0.5),
		Footer: Inches(0.5),
	}
}

// Default page geometry: US Letter with a 0.5in column gap.
var (
	LetterWidth        = Inches(8.5)
	LetterHeight       = Inches(11)
	DefaultColumnSpace = Inches(0.5)
)

// Section is a run of body content sharing page layout and footer.
type Section struct {
	Columns     int
	ColumnSpace Length
	Margins     Margins
	PageWidth   Length
	PageHeight  Length
	Start       SectionStart
	Footer      *Footer

	doc     *Document
	content []bodyItem
}

// bodyItem is a *Paragraph or *Table.
type bodyItem interface {
	markup(*Section) any
}

func newSection(doc *Document, columns int, start SectionStart) *Section {
	if columns < 1 {
		columns = 1
	}
	return &Section{
		Columns:     columns,
		ColumnSpace: DefaultColumnSpace,
		Margins:     StandardMargins(),
		PageWidth:   LetterWidth,
		PageHeight:  LetterHeight,
		Start:       start,
		Footer:      &Footer{},
		doc:         doc,
	}
}

// Len returns the number of paragraphs and tables in the section.
func (s *Section) Len() int { return len(s.content) }

// Paragraphs returns the section's body paragraphs in order, excluding
// those inside tables.
func (s *Section) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, item := range s.content {
		if p, ok := item.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the section's tables in order.
func (s *Section) Tables() []*Table {
	var out []*Table
	for _, item := range s.content {
		if t, ok := item.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Footer is the default footer of a section.
type Footer struct {
	paragraphs []*Paragraph
}

// Clear removes all footer content.
func (f *Footer) Clear() {
	f.paragraphs = nil
}

// Paragraph returns the first footer paragraph, creating it if needed.
func (f *Footer) Paragraph() *Paragraph {
	if len(f.paragraphs) == 0 {
		f.paragraphs = append(f.paragraphs, &Paragraph{})
	}
	return f.paragraphs[0]
}

// Paragraphs returns the footer paragraphs.
func (f *Footer) Paragraphs() []*Paragraph {
	return f.paragraphs
}

// Text returns the footer's visible text, paragraphs joined by newlines.
func (f *Footer) Text() string {
	var s string
	for i, p := range f.paragraphs {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}
