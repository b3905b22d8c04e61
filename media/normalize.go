package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const jpegQuality = 90

// Image is image data ready for embedding.
type Image struct {
	Data []byte

	// Ext is the extension matching Data, without the dot.
	Ext string

	// Width and Height are the pixel dimensions of Data.
	Width, Height int

	// Reencoded is true when Data differs from the source bytes.
	Reencoded bool
}

// Load reads an extracted entry and normalizes it with maxPixels.
func Load(e Entry, maxPixels int) (Image, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return Image{}, fmt.Errorf("reading %s: %w", e.Name, err)
	}
	img, err := Normalize(data, maxPixels)
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	return img, nil
}

// Normalize prepares image data for embedding. TIFF images are converted
// to PNG. When maxPixels is positive and the long edge exceeds it, the image
// is downscaled with Catmull-Rom resampling and re-encoded in its own format
// (JPEG stays JPEG, everything else becomes PNG). Other images pass through
// unchanged.
func Normalize(data []byte, maxPixels int) (Image, error) {
	cfg, format, err := Probe(data)
	if err != nil {
		return Image{}, err
	}

	oversized := maxPixels > 0 && max(cfg.Width, cfg.Height) > maxPixels
	if !oversized && format != "tiff" {
		return Image{Data: data, Ext: format, Width: cfg.Width, Height: cfg.Height}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decoding image: %w", err)
	}

	var out image.Image = src
	if oversized {
		out = scale(src, maxPixels)
	}

	var buf bytes.Buffer
	ext := "png"
	if format == "jpeg" {
		ext = "jpeg"
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality})
	} else {
		err = png.Encode(&buf, out)
	}
	if err != nil {
		return Image{}, fmt.Errorf("encoding %s: %w", ext, err)
	}

	b := out.Bounds()
	return Image{
		Data:      buf.Bytes(),
		Ext:       ext,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Reencoded: true,
	}, nil
}

// scale shrinks src so its long edge equals maxPixels.
func scale(src image.Image, maxPixels int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w >= h {
		h = max(1, h*maxPixels/w)
		w = maxPixels
	} else {
		w = max(1, w*maxPixels/h)
		h = maxPixels
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
