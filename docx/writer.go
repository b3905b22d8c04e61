package docx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/paperlayout/model"
)

// ErrNoPictureTarget is returned when a picture is added to a run that does
// not belong to a document body.
var ErrNoPictureTarget = errors.New("picture requires a body run")

// Document is an output DOCX package under construction.
//
// A new Document holds one single-column section that starts on a new page.
// Content is always appended to the last section. A Document is not safe
// for concurrent use.
type Document struct {
	sections []*Section
	styles   []StyleDef
	media    []*mediaPart
}

// mediaPart is an image stored under word/media.
type mediaPart struct {
	name  string // file name inside word/media
	ext   string // lower-case, without dot
	data  []byte
	relID string
}

// New creates an empty document with one single-column section.
func New() *Document {
	d := &Document{}
	d.sections = []*Section{newSection(d, 1, StartNewPage)}
	return d
}

// Sections returns the document's sections in order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// Section returns the last section, where new content is appended.
func (d *Document) Section() *Section {
	return d.sections[len(d.sections)-1]
}

// AddSection starts a new section with the given column count and start
// type. Page geometry and margins are standard; the footer is empty.
func (d *Document) AddSection(columns int, start SectionStart) *Section {
	s := newSection(d, columns, start)
	d.sections = append(d.sections, s)
	return s
}

// AddParagraph appends an empty paragraph to the current section.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{doc: d}
	s := d.Section()
	s.content = append(s.content, p)
	return p
}

// AddTable appends a rows x cols table to the current section. Every cell
// starts with one empty paragraph.
func (d *Document) AddTable(rows, cols int) *Table {
	t := &Table{cols: cols, rows: make([][]*TableCell, rows)}
	for i := range t.rows {
		t.rows[i] = make([]*TableCell, cols)
		for j := range t.rows[i] {
			t.rows[i][j] = &TableCell{paragraphs: []*Paragraph{{doc: d}}, doc: d}
		}
	}
	s := d.Section()
	s.content = append(s.content, t)
	return t
}

// AddStyle registers a style definition to be written into styles.xml.
// Styles whose ID is already defined, built-in or added, are ignored, as
// are definitions whose markup uses prefixes other than w and r.
func (d *Document) AddStyle(def StyleDef) bool {
	if def.ID == "" || d.HasStyle(def.ID) || !def.portable() {
		return false
	}
	d.styles = append(d.styles, def)
	return true
}

// HasStyle reports whether a style ID is defined in the output.
func (d *Document) HasStyle(id string) bool {
	for _, b := range builtinStyles {
		if b.id == id {
			return true
		}
	}
	for _, s := range d.styles {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Pictures returns the number of images embedded so far.
func (d *Document) Pictures() int {
	return len(d.media)
}

// Paragraph is an output paragraph.
type Paragraph struct {
	doc        *Document
	style      string
	align      model.Alignment
	spaceAfter *Length
	tabs       []TabStop
	runs       []*Run
}

// AddRun appends a run with the given text. Tabs and newlines in text are
// written as tab and break elements.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text, doc: p.doc}
	p.runs = append(p.runs, r)
	return r
}

// Clear removes all runs and tab stops, keeping style and alignment.
func (p *Paragraph) Clear() {
	p.runs = nil
	p.tabs = nil
}

// SetAlignment sets the paragraph justification.
func (p *Paragraph) SetAlignment(a model.Alignment) *Paragraph {
	p.align = a
	return p
}

// SetStyle sets the paragraph style by ID.
func (p *Paragraph) SetStyle(id string) *Paragraph {
	p.style = id
	return p
}

// SetSpaceAfter sets the spacing after the paragraph.
func (p *Paragraph) SetSpaceAfter(l Length) *Paragraph {
	p.spaceAfter = &l
	return p
}

// AddTabStop adds a custom tab stop.
func (p *Paragraph) AddTabStop(t TabStop) *Paragraph {
	p.tabs = append(p.tabs, t)
	return p
}

func (p *Paragraph) Alignment() model.Alignment { return p.align }
func (p *Paragraph) Style() string              { return p.style }
func (p *Paragraph) Runs() []*Run               { return p.runs }
func (p *Paragraph) TabStops() []TabStop        { return p.tabs }

// SpaceAfter returns the explicit spacing after the paragraph, if set.
func (p *Paragraph) SpaceAfter() (Length, bool) {
	if p.spaceAfter == nil {
		return 0, false
	}
	return *p.spaceAfter, true
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// Run is an output run.
type Run struct {
	doc     *Document
	text    string
	bold    bool
	italic  bool
	size    int
	font    string
	field   *Field
	picture *Picture
}

// Bold sets bold formatting.
func (r *Run) Bold(on bool) *Run { r.bold = on; return r }

// Italic sets italic formatting.
func (r *Run) Italic(on bool) *Run { r.italic = on; return r }

// Size sets the font size in half-points. Zero inherits.
func (r *Run) Size(halfPoints int) *Run { r.size = halfPoints; return r }

// Font sets the font name. Empty inherits.
func (r *Run) Font(name string) *Run { r.font = name; return r }

// AddField appends a field after the run's text.
func (r *Run) AddField(f Field) *Run {
	r.field = &f
	return r
}

func (r *Run) Text() string      { return r.text }
func (r *Run) IsBold() bool      { return r.bold }
func (r *Run) IsItalic() bool    { return r.italic }
func (r *Run) FontSize() int     { return r.size }
func (r *Run) FontName() string  { return r.font }
func (r *Run) Field() *Field     { return r.field }
func (r *Run) Picture() *Picture { return r.picture }

// Picture is an inline image placed in a run.
type Picture struct {
	Width, Height Length
	Description   string

	media *mediaPart
	id    int
}

// Name returns the picture's part name inside word/media.
func (pic *Picture) Name() string { return pic.media.name }

// AddPicture embeds image data in the document and places it inline in the
// run at the given display size. ext is the image file extension, with or
// without the dot.
func (r *Run) AddPicture(data []byte, ext string, width, height Length) (*Picture, error) {
	if r.doc == nil {
		return nil, ErrNoPictureTarget
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	if ext == "tif" {
		ext = "tiff"
	}
	if _, ok := imageContentTypes[ext]; !ok {
		return nil, fmt.Errorf("unsupported picture type %q", ext)
	}
	if len(data) == 0 {
		return nil, errors.New("empty picture data")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid picture size %v x %v", width, height)
	}

	d := r.doc
	n := len(d.media) + 1
	part := &mediaPart{
		name:  fmt.Sprintf("image%d.%s", n, ext),
		ext:   ext,
		data:  data,
		relID: fmt.Sprintf("rId%d", firstMediaRel+n-1),
	}
	d.media = append(d.media, part)
	pic := &Picture{Width: width, Height: height, media: part, id: n}
	r.picture = pic
	return pic, nil
}

// Table is an output table.
type Table struct {
	style string
	cols  int
	rows  [][]*TableCell
}

// SetStyle sets the table style by ID.
func (t *Table) SetStyle(id string) *Table {
	t.style = id
	return t
}

func (t *Table) Style() string { return t.style }
func (t *Table) RowCount() int { return len(t.rows) }
func (t *Table) ColCount() int { return t.cols }

// Cell returns the cell at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row]) {
		return nil
	}
	return t.rows[row][col]
}

// TableCell is a cell of an output table.
type TableCell struct {
	doc        *Document
	paragraphs []*Paragraph
}

// Paragraphs returns the cell paragraphs. A new cell has one empty paragraph.
func (c *TableCell) Paragraphs() []*Paragraph { return c.paragraphs }

// AddParagraph appends an empty paragraph to the cell.
func (c *TableCell) AddParagraph() *Paragraph {
	p := &Paragraph{doc: c.doc}
	c.paragraphs = append(c.paragraphs, p)
	return p
}

// Text joins the cell paragraph texts with newlines.
func (c *TableCell) Text() string {
	parts := make([]string, len(c.paragraphs))
	for i, p := range c.paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}
