package paperlayout

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/paperlayout/docx"
	"github.com/tsawler/paperlayout/format"
	"github.com/tsawler/paperlayout/layout"
	"github.com/tsawler/paperlayout/media"
)

// Formatter provides a fluent interface for reformatting one DOCX file.
// Each configuration method returns a new Formatter instance, so a
// configured Formatter can be shared and reused.
type Formatter struct {
	input   string
	options FormatOptions
}

// clone creates a copy of the Formatter with a deep copy of options.
func (f *Formatter) clone() *Formatter {
	return &Formatter{
		input:   f.input,
		options: f.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Formatter instance)
// ============================================================================

// Footer sets the custom footer text shown right-aligned after the page
// number. Blank text renders the page number only.
func (f *Formatter) Footer(text string) *Formatter {
	newF := f.clone()
	newF.options.footer = text
	return newF
}

// Logger sets the logger. The default is slog.Default().
func (f *Formatter) Logger(l *slog.Logger) *Formatter {
	newF := f.clone()
	newF.options.logger = l
	return newF
}

// MaxImagePixels downscales images whose long edge exceeds n pixels.
// Zero, the default, keeps images at their original size.
func (f *Formatter) MaxImagePixels(n int) *Formatter {
	newF := f.clone()
	newF.options.maxImagePixels = n
	return newF
}

// Extensions replaces the list of image file extensions picked up from
// the source media folder.
func (f *Formatter) Extensions(exts ...string) *Formatter {
	newF := f.clone()
	newF.options.extensions = append([]string(nil), exts...)
	return newF
}

// TempDir sets the parent directory for extracted media.
func (f *Formatter) TempDir(dir string) *Formatter {
	newF := f.clone()
	newF.options.tempDir = dir
	return newF
}

// AltText sets the generator of picture descriptions.
//
// Example:
//
//	client, err := ocr.New()
//	if err == nil {
//	    defer client.Close()
//	    f = f.AltText(client)
//	}
func (f *Formatter) AltText(a AltTexter) *Formatter {
	newF := f.clone()
	newF.options.altText = a
	return newF
}

// Classifier replaces the default classification rules.
func (f *Formatter) Classifier(c *layout.Classifier) *Formatter {
	newF := f.clone()
	newF.options.classifier = c
	return newF
}

// ============================================================================
// Terminal Methods
// ============================================================================

// open checks and loads the input document.
func (f *Formatter) open() (*docx.Reader, error) {
	if err := format.Check(f.input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	r, err := docx.Open(f.input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocumentLoad, f.input, err)
	}
	return r, nil
}

// Plan classifies the input without producing a document.
//
// Example:
//
//	plan, err := paperlayout.Open("paper.docx").Plan()
//	for _, step := range plan.Steps {
//	    fmt.Println(step.Index, step.Kind, step.Classification.Category)
//	}
func (f *Formatter) Plan() (layout.Plan, error) {
	r, err := f.open()
	if err != nil {
		return layout.Plan{}, err
	}
	defer r.Close()

	c := f.options.classifier
	if c == nil {
		c = layout.NewClassifier()
	}
	return layout.BuildPlanWithClassifier(r.Blocks(), c), nil
}

// Document builds the reformatted document in memory.
func (f *Formatter) Document() (*docx.Document, []Warning, error) {
	log := f.options.log()

	r, err := f.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	inv, extractErr := media.Extract(f.input, media.Options{
		Extensions: f.options.extensions,
		TempDir:    f.options.tempDir,
		Logger:     log,
	})
	defer inv.Close()

	e := newEmitter(inv, r, f.options)
	if extractErr != nil {
		e.mediaFailed = true
		e.warn(WarnMedia, -1, extractErr, "continuing without images")
	}
	log.Debug("loaded document", "path", f.input, "blocks", len(r.Blocks()), "sections", len(r.Sections()), "images", inv.Len())

	if err := e.run(r.Blocks()); err != nil {
		return nil, e.warnings, err
	}

	if n := inv.Len(); n > 0 {
		log.Debug("unused images", "count", n, "names", inv.Names())
	}
	return e.doc, e.warnings, nil
}

// SaveAs reformats the input and writes the result to output. The file is
// replaced atomically; on error no output file is created.
//
// Example:
//
//	warnings, err := paperlayout.Open("in.docx").Footer("Draft").SaveAs("out.docx")
func (f *Formatter) SaveAs(output string) ([]Warning, error) {
	doc, warnings, err := f.Document()
	if err != nil {
		return warnings, err
	}
	if err := doc.Save(output); err != nil {
		return warnings, fmt.Errorf("%w: %s: %w", ErrDocumentSave, output, err)
	}

	f.options.log().Info("formatted document",
		"input", f.input,
		"output", output,
		"sections", len(doc.Sections()),
		"pictures", doc.Pictures(),
		"warnings", len(warnings))
	return warnings, nil
}
