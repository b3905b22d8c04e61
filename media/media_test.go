package media

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// zipEntry is one file of a test archive. Raw entries are stored with the
// deflate method but written without compression, so reading them fails.
type zipEntry struct {
	name string
	data []byte
	raw  bool
}

func createTestArchive(t *testing.T, entries []zipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	zw := zip.NewWriter(f)
	for _, e := range entries {
		if e.raw {
			w, err := zw.CreateRaw(&zip.FileHeader{
				Name:               e.name,
				Method:             zip.Deflate,
				CompressedSize64:   uint64(len(e.data)),
				UncompressedSize64: uint64(len(e.data)) * 4,
			})
			if err != nil {
				t.Fatalf("CreateRaw: %v", err)
			}
			w.Write(e.data)
			continue
		}
		w, _ := zw.Create(e.name)
		w.Write(e.data)
	}
	zw.Close()
	f.Close()
	return path
}

func TestExtract(t *testing.T) {
	path := createTestArchive(t, []zipEntry{
		{name: "word/document.xml", data: []byte("<w:document/>")},
		{name: "word/media/image2.PNG", data: encodePNG(t, 4, 4)},
		{name: "word/media/notes.txt", data: []byte("ignored")},
		{name: "word/media/image1.jpeg", data: []byte("jpeg bytes")},
		{name: "word/embeddings/image9.png", data: encodePNG(t, 2, 2)},
	})

	inv, err := Extract(path, Options{TempDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	defer inv.Close()

	// Archive order, not name order.
	names := inv.Names()
	if len(names) != 2 || names[0] != "image2.PNG" || names[1] != "image1.jpeg" {
		t.Fatalf("Names() = %v", names)
	}

	e, ok := inv.Take()
	if !ok {
		t.Fatal("Take() returned nothing")
	}
	if e.Name != "image2.PNG" || e.Ext() != ".png" {
		t.Errorf("entry = %+v, ext %q", e, e.Ext())
	}
	if inv.Len() != 1 {
		t.Errorf("Len() after Take = %d, want 1", inv.Len())
	}
	if _, err := os.Stat(e.Path); err != nil {
		t.Fatalf("taken entry file missing: %v", err)
	}
	if err := inv.Discard(e); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}
	if _, err := os.Stat(e.Path); !os.IsNotExist(err) {
		t.Error("Discard() should remove the temp file")
	}

	rest, _ := inv.Take()
	dir := filepath.Dir(rest.Path)
	if err := inv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Close() should remove the working directory")
	}
	if err := inv.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, ok := inv.Take(); ok {
		t.Error("Take() on empty inventory should fail")
	}
}

func TestExtract_CustomExtensions(t *testing.T) {
	path := createTestArchive(t, []zipEntry{
		{name: "word/media/a.png", data: []byte("x")},
		{name: "word/media/b.emf", data: []byte("y")},
	})

	inv, err := Extract(path, Options{Extensions: []string{".EMF"}, TempDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	defer inv.Close()

	if names := inv.Names(); len(names) != 1 || names[0] != "b.emf" {
		t.Errorf("Names() = %v", names)
	}
}

func TestExtract_NoMedia(t *testing.T) {
	path := createTestArchive(t, []zipEntry{
		{name: "word/document.xml", data: []byte("<w:document/>")},
	})

	inv, err := Extract(path, Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if inv.Len() != 0 {
		t.Errorf("Len() = %d, want 0", inv.Len())
	}
	if err := inv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestExtract_Failures(t *testing.T) {
	notZip := filepath.Join(t.TempDir(), "plain.docx")
	os.WriteFile(notZip, []byte("not a zip file"), 0o644)

	corrupt := createTestArchive(t, []zipEntry{
		{name: "word/media/image1.png", data: encodePNG(t, 2, 2)},
		{name: "word/media/image2.png", data: []byte{0xff, 0xfe, 0xfd, 0xfc, 0x00, 0x01}, raw: true},
	})

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.docx")},
		{"not a zip", notZip},
		{"corrupt entry", corrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			inv, err := Extract(tt.path, Options{TempDir: tmp})
			var ce *ContainerError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ContainerError", err)
			}
			if inv == nil || inv.Len() != 0 {
				t.Fatalf("inventory should be empty, got %v", inv)
			}
			entries, _ := os.ReadDir(tmp)
			if len(entries) != 0 {
				t.Errorf("partial copies left behind: %d entries", len(entries))
			}
		})
	}
}

func TestDisplaySize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW float64
		wantH float64
	}{
		{"landscape fits", 200, 100, 4.5, 2.25},
		{"square height bound", 100, 100, 3, 3},
		{"very wide", 1000, 100, 4.5, 0.45},
		{"tall hits minimum width", 100, 400, 2, 8},
		{"exactly at height bound", 150, 100, 4.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := DisplaySize(tt.w, tt.h)
			if math.Abs(w-tt.wantW) > 1e-9 || math.Abs(h-tt.wantH) > 1e-9 {
				t.Errorf("DisplaySize(%d, %d) = (%v, %v), want (%v, %v)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	var bmpBuf, tiffBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, testImage(3, 5)); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	if err := tiff.Encode(&tiffBuf, testImage(7, 2), nil); err != nil {
		t.Fatalf("tiff.Encode: %v", err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
		w, h   int
	}{
		{"png", encodePNG(t, 10, 20), "png", 10, 20},
		{"bmp", bmpBuf.Bytes(), "bmp", 3, 5},
		{"tiff", tiffBuf.Bytes(), "tiff", 7, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, format, err := Probe(tt.data)
			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if format != tt.format || cfg.Width != tt.w || cfg.Height != tt.h {
				t.Errorf("Probe() = %s %dx%d, want %s %dx%d", format, cfg.Width, cfg.Height, tt.format, tt.w, tt.h)
			}
		})
	}

	if _, _, err := Probe([]byte("garbage")); err == nil {
		t.Error("Probe() should fail on garbage")
	}
}

func TestNormalize(t *testing.T) {
	small := encodePNG(t, 20, 10)

	t.Run("passthrough", func(t *testing.T) {
		img, err := Normalize(small, 100)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if img.Reencoded || !bytes.Equal(img.Data, small) || img.Ext != "png" {
			t.Errorf("small png should pass through, got %+v", img.Ext)
		}
	})

	t.Run("downscale png", func(t *testing.T) {
		img, err := Normalize(encodePNG(t, 400, 200), 100)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if !img.Reencoded || img.Width != 100 || img.Height != 50 || img.Ext != "png" {
			t.Errorf("got %dx%d %s reencoded=%v", img.Width, img.Height, img.Ext, img.Reencoded)
		}
		cfg, format, err := Probe(img.Data)
		if err != nil || format != "png" || cfg.Width != 100 {
			t.Errorf("re-encoded data = %s %dx%d, err %v", format, cfg.Width, cfg.Height, err)
		}
	})

	t.Run("downscale jpeg stays jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		jpeg.Encode(&buf, testImage(50, 300), nil)
		img, err := Normalize(buf.Bytes(), 60)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if img.Ext != "jpeg" || img.Height != 60 || img.Width != 10 {
			t.Errorf("got %dx%d %s", img.Width, img.Height, img.Ext)
		}
	})

	t.Run("tiff becomes png", func(t *testing.T) {
		var buf bytes.Buffer
		tiff.Encode(&buf, testImage(8, 8), nil)
		img, err := Normalize(buf.Bytes(), 0)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if img.Ext != "png" || !img.Reencoded || img.Width != 8 {
			t.Errorf("got %dx%d %s", img.Width, img.Height, img.Ext)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		if _, err := Normalize([]byte("not an image"), 100); err == nil {
			t.Error("Normalize() should fail")
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "000-image1.png")
	os.WriteFile(p, encodePNG(t, 5, 5), 0o600)

	img, err := Load(Entry{Name: "image1.png", Path: p}, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Width != 5 || img.Ext != "png" {
		t.Errorf("got %dx%d %s", img.Width, img.Height, img.Ext)
	}

	if _, err := Load(Entry{Name: "gone.png", Path: filepath.Join(dir, "gone.png")}, 0); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
