package paperlayout

import (
	"log/slog"

	"github.com/tsawler/paperlayout/layout"
)

// AltTexter produces a description for picture data. Implementations are
// typically backed by OCR.
type AltTexter interface {
	AltText(imageData []byte) (string, error)
}

// FormatOptions holds configuration for a formatting run.
type FormatOptions struct {
	// Footer text rendered after the page number. Blank means page number only.
	footer string

	// Logging
	logger *slog.Logger

	// Image handling
	maxImagePixels int      // 0 disables downscaling
	extensions     []string // nil means media.DefaultExtensions
	tempDir        string   // parent of the media working directory
	altText        AltTexter

	// Classification
	classifier *layout.Classifier
}

// defaultOptions returns the default formatting options.
func defaultOptions() FormatOptions {
	return FormatOptions{
		footer:         "",
		logger:         nil, // nil means slog.Default()
		maxImagePixels: 0,
		extensions:     nil,
		classifier:     nil, // nil means the default rule list
	}
}

// clone creates a deep copy of FormatOptions.
func (o FormatOptions) clone() FormatOptions {
	newOpts := o

	// Deep copy extensions slice
	if o.extensions != nil {
		newOpts.extensions = make([]string, len(o.extensions))
		copy(newOpts.extensions, o.extensions)
	}

	return newOpts
}

func (o FormatOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
