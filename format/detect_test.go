package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, "DOCX"},
		{OtherZIP, "ZIP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"paper.docx", true},
		{"paper.DOCX", true},
		{"my.paper.Docx", true},
		{"paper.doc", false},
		{"paper.pdf", false},
		{"docx", false},
		{"", false},
		{".docx", true},
	}

	for _, tt := range tests {
		if got := IsAllowed(tt.filename); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.docx", DOCX},
		{"document.DOCX", DOCX},
		{"/path/to/file.docx", DOCX},
		{"sheet.xlsx", OtherZIP},
		{"slides.pptx", OtherZIP},
		{"text.odt", OtherZIP},
		{"document.pdf", Unknown},
		{"document", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func createZIP(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		w.Write([]byte("<x/>"))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"docx", createZIP(t, "[Content_Types].xml", "word/document.xml"), DOCX},
		{"word folder without document", createZIP(t, "word/styles.xml"), OtherZIP},
		{"xlsx", createZIP(t, "[Content_Types].xml", "xl/workbook.xml"), OtherZIP},
		{"pdf", []byte("%PDF-1.7\n"), Unknown},
		{"short", []byte("PK"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader(tt.data), int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_TruncatedZIP(t *testing.T) {
	data := createZIP(t, "word/document.xml")[:10]
	if _, err := DetectFromReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("expected error for truncated archive")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	docx := filepath.Join(dir, "paper.docx")
	os.WriteFile(docx, createZIP(t, "word/document.xml"), 0o644)
	fake := filepath.Join(dir, "fake.docx")
	os.WriteFile(fake, []byte("plain text"), 0o644)

	if err := Check(docx); err != nil {
		t.Errorf("Check(docx) error = %v", err)
	}
	if err := Check(fake); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Check(fake) error = %v, want ErrUnsupported", err)
	}
	if err := Check(filepath.Join(dir, "missing.docx")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Check(missing) error = %v, want ErrUnsupported", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"paper.docx", "paper.docx"},
		{"My paper.docx", "My_paper.docx"},
		{"../../etc/passwd", "etc_passwd"},
		{`C:\Users\me\thesis.docx`, "C_Users_me_thesis.docx"},
		{"r\u00e9sum\u00e9 final.docx", "resume_final.docx"},
		{"  spaced   out  .docx", "spaced_out_.docx"},
		{"what?*<>.docx", "what.docx"},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
