// Package paperlayout reformats a DOCX document into a two-column academic
// paper layout.
//
// One ordered pass over the source paragraphs and tables classifies each
// block by its text, opens continuous sections when the column count has to
// change, and re-emits the content with heading, caption and reference
// formatting. Every section gets a footer with a live page number.
//
// Basic usage:
//
//	ok := paperlayout.Process("in.docx", "out.docx", "Journal of Examples")
//
// With options:
//
//	warnings, err := paperlayout.Open("in.docx").
//	    Footer("Journal of Examples").
//	    MaxImagePixels(2000).
//	    Logger(logger).
//	    SaveAs("out.docx")
//	if err != nil {
//	    // errors.Is(err, paperlayout.ErrDocumentLoad) etc.
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", paperlayout.FormatWarnings(warnings))
//	}
//
// Missing or unreadable images never fail a run; they are replaced by a
// placeholder and reported as warnings.
package paperlayout

import (
	"log/slog"
)

// Open returns a Formatter for the DOCX file at input.
//
// Example:
//
//	warnings, err := paperlayout.Open("paper.docx").SaveAs("paper_processed.docx")
func Open(input string) *Formatter {
	return &Formatter{
		input:   input,
		options: defaultOptions(),
	}
}

// Process reformats input into output with the given footer text and
// reports success. Failures are logged with slog.Default(); no output file
// is left behind on failure.
func Process(input, output, footer string) bool {
	warnings, err := Open(input).Footer(footer).SaveAs(output)
	log := slog.Default()
	for _, w := range warnings {
		log.Debug("formatting warning", "warning", w.String())
	}
	if err != nil {
		log.Error("formatting failed", "input", input, "error", err)
		return false
	}
	return true
}
