package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one extracted image.
type Entry struct {
	// Name is the original file name inside word/media.
	Name string

	// Path is the temporary copy on disk.
	Path string
}

// Ext returns the lower-case extension of the original name, with the dot.
func (e Entry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Name))
}

// Inventory is an ordered set of extracted images backed by temp files.
// It is not safe for concurrent use.
type Inventory struct {
	dir     string
	entries []Entry
}

// Len returns the number of images not yet taken.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// Names returns the original names of the remaining images, in order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.entries))
	for i, e := range inv.entries {
		names[i] = e.Name
	}
	return names
}

// Take removes and returns the first remaining image. The caller owns the
// entry's temp file and releases it with Discard.
func (inv *Inventory) Take() (Entry, bool) {
	if len(inv.entries) == 0 {
		return Entry{}, false
	}
	e := inv.entries[0]
	inv.entries = inv.entries[1:]
	return e, true
}

// Discard deletes the temp file of a taken entry.
func (inv *Inventory) Discard(e Entry) error {
	if e.Path == "" {
		return nil
	}
	if err := os.Remove(e.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", e.Name, err)
	}
	return nil
}

// Close deletes every remaining temp file and the working directory.
// It is safe to call more than once.
func (inv *Inventory) Close() error {
	inv.entries = nil
	if inv.dir == "" {
		return nil
	}
	dir := inv.dir
	inv.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing media directory: %w", err)
	}
	return nil
}
