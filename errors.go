package paperlayout

import (
	"errors"
	"fmt"
)

// Fatal error classes. Errors returned by SaveAs and Plan wrap one of these.
var (
	// ErrDocumentLoad reports an input that could not be opened or parsed.
	ErrDocumentLoad = errors.New("loading document")

	// ErrDocumentSave reports an output that could not be written.
	ErrDocumentSave = errors.New("saving document")

	// ErrProcessing reports any other failure during the layout pass,
	// including recovered panics.
	ErrProcessing = errors.New("processing document")
)

// ImageError reports an extracted image that could not be inserted. It is
// never fatal: the image is replaced by a placeholder.
type ImageError struct {
	// Name is the original file name inside word/media.
	Name string

	// Block is the index of the source paragraph.
	Block int

	Err error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("inserting image %s at block %d: %v", e.Name, e.Block, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }
