package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Display bounds, in inches.
const (
	MaxWidth  = 4.5
	MaxHeight = 3.0
	MinWidth  = 2.0
)

// Probe decodes only the header of an image and returns its pixel size and
// format name ("png", "jpeg", "gif", "bmp" or "tiff").
func Probe(data []byte) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, "", fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, format, nil
}

// DisplaySize returns the display width and height in inches for an image
// of the given pixel size. The aspect ratio is kept: the width starts at
// MaxWidth, shrinks so the height stays within MaxHeight, and never drops
// below MinWidth, even if the height then exceeds MaxHeight.
func DisplaySize(pxWidth, pxHeight int) (width, height float64) {
	aspect := float64(pxHeight) / float64(pxWidth)

	width = MaxWidth
	height = width * aspect

	if height > MaxHeight {
		height = MaxHeight
		width = height / aspect
	}

	if width < MinWidth {
		width = MinWidth
		height = width * aspect
	}

	return width, height
}
