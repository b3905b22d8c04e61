package paperlayout

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/paperlayout/docx"
	"github.com/tsawler/paperlayout/layout"
	"github.com/tsawler/paperlayout/media"
	"github.com/tsawler/paperlayout/model"
)

// ImagePlaceholder replaces images that could not be inserted.
const ImagePlaceholder = "[Image placeholder]"

// emitter re-emits classified blocks into an output document.
type emitter struct {
	doc    *docx.Document
	inv    *media.Inventory
	styles styleSource
	opts   FormatOptions
	log    *slog.Logger

	// mediaFailed is set when extraction failed, which already produced a
	// warning covering every image.
	mediaFailed bool

	warnings []Warning
}

func newEmitter(inv *media.Inventory, styles styleSource, opts FormatOptions) *emitter {
	return &emitter{
		doc:    docx.New(),
		inv:    inv,
		styles: styles,
		opts:   opts,
		log:    opts.log(),
	}
}

func (e *emitter) warn(code WarningCode, block int, err error, format string, args ...any) {
	w := Warning{Code: code, Message: fmt.Sprintf(format, args...), Block: block, Err: err}
	if err != nil {
		w.Message += ": " + err.Error()
	}
	e.log.Warn(w.Message, "code", code.String(), "block", block)
	e.warnings = append(e.warnings, w)
}

// run makes one pass over blocks. A panic during the pass is returned as
// an error wrapping ErrProcessing.
func (e *emitter) run(blocks []model.Block) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProcessing, r)
		}
	}()

	configureSection(e.doc.Section(), 1, e.opts.footer)

	pass := layout.NewPassWithClassifier(e.opts.classifier)
	for i, b := range blocks {
		step, ok := pass.Next(i, b)
		if !ok {
			continue
		}

		if step.NewSection {
			s := e.doc.AddSection(step.Columns, docx.StartContinuous)
			configureSection(s, step.Columns, e.opts.footer)
			e.log.Debug("opened section", "block", i, "columns", step.Columns)
		}

		switch step.Kind {
		case layout.StepImage:
			e.image(step)
		case layout.StepTable:
			e.copyTable(step.Table, step.Index)
		default:
			e.paragraph(step)
		}
	}
	return nil
}

// paragraph emits a classified text paragraph. Headings are followed by an
// empty paragraph.
func (e *emitter) paragraph(step layout.Step) {
	c := step.Classification
	p := e.doc.AddParagraph()

	if c.Numbered {
		p.SetStyle(docx.ListNumberStyle)
		p.AddRun(step.Text)
		return
	}

	p.SetAlignment(c.Alignment)
	if c.SpaceAfter > 0 {
		p.SetSpaceAfter(docx.Pt(c.SpaceAfter))
	}
	p.AddRun(step.Text).Bold(c.Bold).Size(c.Size)

	if c.Category.IsHeading() {
		e.doc.AddParagraph()
	}
}

// image emits a centered picture, or a placeholder, then the caption and
// an empty paragraph.
func (e *emitter) image(step layout.Step) {
	p := e.doc.AddParagraph().SetAlignment(model.AlignCenter)
	if !e.insertImage(p, step.Index) {
		p.AddRun(ImagePlaceholder)
	}

	if step.Text != "" {
		caption := e.doc.AddParagraph().SetAlignment(model.AlignCenter)
		caption.AddRun(step.Text).Italic(true).Size(layout.CaptionSize)
	}

	e.doc.AddParagraph()
}

// insertImage takes the first remaining image and places it in p. The
// image's temp file is released whether or not insertion succeeds.
func (e *emitter) insertImage(p *docx.Paragraph, block int) bool {
	entry, ok := e.inv.Take()
	if !ok {
		if !e.mediaFailed {
			e.warn(WarnNoImage, block, nil, "no extracted image left for image paragraph")
		}
		return false
	}
	defer func() {
		if err := e.inv.Discard(entry); err != nil {
			e.warn(WarnCleanup, block, err, "releasing image %s", entry.Name)
		}
	}()

	img, err := media.Load(entry, e.opts.maxImagePixels)
	if err != nil {
		e.imageFailed(&ImageError{Name: entry.Name, Block: block, Err: err})
		return false
	}

	w, h := media.DisplaySize(img.Width, img.Height)
	pic, err := p.AddRun("").AddPicture(img.Data, img.Ext, docx.Inches(w), docx.Inches(h))
	if err != nil {
		p.Clear()
		e.imageFailed(&ImageError{Name: entry.Name, Block: block, Err: err})
		return false
	}
	pic.Description = e.describe(img.Data, entry.Name, block)

	e.log.Debug("inserted image", "name", entry.Name, "block", block,
		"width", pic.Width.String(), "height", pic.Height.String(), "reencoded", img.Reencoded)
	return true
}

func (e *emitter) imageFailed(err *ImageError) {
	e.warn(WarnImage, err.Block, err.Err, "image %s replaced by placeholder", err.Name)
	e.warnings[len(e.warnings)-1].Err = err
}

// describe returns the picture description: OCR text when an AltTexter is
// configured and finds any, the original file name otherwise.
func (e *emitter) describe(data []byte, name string, block int) string {
	if e.opts.altText == nil {
		return name
	}
	text, err := e.opts.altText.AltText(data)
	if err != nil {
		e.warn(WarnAltText, block, err, "describing image %s", name)
		return name
	}
	if text == "" {
		return name
	}
	return text
}
