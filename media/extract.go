// Package media extracts embedded raster images from a DOCX container and
// prepares them for re-embedding.
//
// Extraction is best effort. A container that cannot be read yields an empty
// [Inventory] together with a [*ContainerError]; callers treat the error as a
// warning and carry on without images.
package media

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// mediaPrefix is the package folder holding embedded media.
const mediaPrefix = "word/media/"

// DefaultExtensions are the raster formats picked up by Extract.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// Options configures Extract.
type Options struct {
	// Extensions lists the recognized file extensions, matched
	// case-insensitively. Nil means DefaultExtensions.
	Extensions []string

	// TempDir is the parent of the per-call working directory.
	// Empty means os.TempDir().
	TempDir string

	// Logger receives progress messages. Nil means slog.Default().
	Logger *slog.Logger
}

// ContainerError reports a container that could not be read or copied.
type ContainerError struct {
	Path string
	Err  error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("reading media from %s: %v", e.Path, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// Extract copies every recognized image under word/media/ of the DOCX at
// docPath into a fresh temporary directory, in archive order.
//
// The returned Inventory is never nil. On failure it is empty, every file
// copied so far has been removed, and the error is a *ContainerError. A
// container without a media folder is not an error.
func Extract(docPath string, opts Options) (*Inventory, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	exts := opts.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}

	inv := &Inventory{}

	zr, err := zip.OpenReader(docPath)
	if err != nil {
		return inv, &ContainerError{Path: docPath, Err: fmt.Errorf("opening ZIP archive: %w", err)}
	}
	defer zr.Close()

	var files []*zip.File
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, mediaPrefix) || f.FileInfo().IsDir() {
			continue
		}
		name := strings.TrimPrefix(f.Name, mediaPrefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		if !hasExtension(name, exts) {
			log.Debug("skipping unrecognized media", "name", name)
			continue
		}
		files = append(files, f)
	}

	if len(files) == 0 {
		log.Debug("no embedded images", "path", docPath)
		return inv, nil
	}

	dir, err := os.MkdirTemp(opts.TempDir, "paperlayout-media-*")
	if err != nil {
		return inv, &ContainerError{Path: docPath, Err: fmt.Errorf("creating temp directory: %w", err)}
	}
	inv.dir = dir

	for i, f := range files {
		name := path.Base(f.Name)
		dst := filepath.Join(dir, fmt.Sprintf("%03d-%s", i, name))
		if err := copyEntry(f, dst); err != nil {
			inv.Close()
			return &Inventory{}, &ContainerError{Path: docPath, Err: fmt.Errorf("copying %s: %w", f.Name, err)}
		}
		inv.entries = append(inv.entries, Entry{Name: name, Path: dst})
	}

	log.Debug("extracted images", "path", docPath, "count", len(inv.entries))
	return inv, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// copyEntry writes the decompressed content of f to dst.
func copyEntry(f *zip.File, dst string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
