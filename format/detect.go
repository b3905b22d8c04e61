// Package format decides whether an input file is a document paperlayout
// can process.
package format

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupported is returned for inputs that are not DOCX documents.
var ErrUnsupported = errors.New("unsupported document format")

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized file.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// OtherZIP indicates a ZIP container that is not a Word document,
	// such as a spreadsheet, a presentation or an OpenDocument file.
	OtherZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case OtherZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// AllowedExtensions lists the accepted file extensions, lower-case.
var AllowedExtensions = []string{".docx"}

// IsAllowed reports whether filename carries an accepted extension.
// The check is case-insensitive and requires a dot in the name.
func IsAllowed(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	ext := strings.ToLower(filename[i:])
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// Detect determines the format from the filename extension alone.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".xlsx", ".pptx", ".odt", ".ods", ".odp", ".zip":
		return OtherZIP
	default:
		return Unknown
	}
}

// zipMagic is the local file header signature: PK\x03\x04.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// DetectFromReader inspects content to determine the format. A ZIP archive
// is a DOCX only when it holds word/document.xml.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(zipMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if n < len(zipMagic) || string(magic) != string(zipMagic) {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, fmt.Errorf("reading ZIP directory: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return DOCX, nil
		}
	}
	return OtherZIP, nil
}

// DetectFile opens path and inspects its content.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, err
	}
	return DetectFromReader(f, info.Size())
}

// Check returns nil when path is a DOCX document by content, and an error
// wrapping ErrUnsupported otherwise.
func Check(path string) error {
	f, err := DetectFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if f != DOCX {
		return fmt.Errorf("%w: %s is %s, not DOCX", ErrUnsupported, filepath.Base(path), f)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded filename to a safe ASCII base name.
// Accents are stripped, path separators and whitespace become underscores,
// and leading or trailing dots and underscores are removed. The result may
// be empty.
func SanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < 0x80 {
			sb.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", `\`, " ").Replace(sb.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
