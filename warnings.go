package paperlayout

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal issue.
type WarningCode int

const (
	// WarnMedia means embedded images could not be extracted; every image
	// paragraph becomes a placeholder.
	WarnMedia WarningCode = iota
	// WarnImage means one image could not be inserted.
	WarnImage
	// WarnNoImage means an image paragraph found no extracted image left.
	WarnNoImage
	// WarnTableStyle means a table style could not be copied.
	WarnTableStyle
	// WarnAltText means alt text generation failed for an image.
	WarnAltText
	// WarnCleanup means temporary media could not be removed.
	WarnCleanup
)

func (c WarningCode) String() string {
	switch c {
	case WarnMedia:
		return "media"
	case WarnImage:
		return "image"
	case WarnNoImage:
		return "no-image"
	case WarnTableStyle:
		return "table-style"
	case WarnAltText:
		return "alt-text"
	case WarnCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while formatting.
type Warning struct {
	Code    WarningCode
	Message string

	// Block is the source block index, or -1 when the warning is not tied
	// to a block.
	Block int

	// Err is the underlying error, if any.
	Err error
}

func (w Warning) String() string {
	if w.Block >= 0 {
		return fmt.Sprintf("[%s] block %d: %s", w.Code, w.Block, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
