package model

import "strings"

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindParagraph
	KindTable
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is one paragraph or table in document reading order.
type Block interface {
	Kind() BlockKind
}

// Paragraph is a run of text with per-run formatting.
type Paragraph struct {
	// Text is the concatenated text of all runs, untrimmed.
	Text string

	// Runs are the style runs in order.
	Runs []Run

	// HasGraphic is true when any run carries an embedded drawing.
	HasGraphic bool

	// StyleID is the paragraph style reference, if any.
	StyleID string

	// Alignment is the direct paragraph justification.
	Alignment Alignment
}

func (p *Paragraph) Kind() BlockKind { return KindParagraph }

// NewParagraph builds a paragraph from runs, deriving Text and HasGraphic.
func NewParagraph(runs ...Run) *Paragraph {
	p := &Paragraph{Runs: runs}
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
		if r.HasGraphic {
			p.HasGraphic = true
		}
	}
	p.Text = sb.String()
	return p
}

// Run is a span of text with uniform formatting.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	Size     int // half-points; 0 inherits
	FontName string

	// HasGraphic marks a run holding an inline or anchored drawing.
	HasGraphic bool
}

// Alignment is horizontal paragraph alignment.
type Alignment int

const (
	AlignInherit Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "inherit"
	}
}
