package docx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/paperlayout/model"
)

const testRootNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture" ` +
	`xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"`

// paragraphText joins the text of every body paragraph with newlines.
func paragraphText(r *Reader) string {
	var parts []string
	for _, b := range r.Blocks() {
		if p, ok := b.(*model.Paragraph); ok {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// createTestDOCX creates a minimal DOCX file for testing.
func createTestDOCX(t *testing.T, content string) string {
	t.Helper()
	return createTestDOCXWithParts(t, content, nil)
}

// createTestDOCXWithStyles creates a DOCX with a styles.xml part.
func createTestDOCXWithStyles(t *testing.T, content, styles string) string {
	t.Helper()
	return createTestDOCXWithParts(t, content, map[string]string{
		"word/styles.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + styles + `</w:styles>`,
	})
}

// createTestDOCXWithParts creates a DOCX whose body is content, plus any
// extra parts keyed by name.
func createTestDOCXWithParts(t *testing.T, content string, extra map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "test.docx")

	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	// [Content_Types].xml
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	// _rels/.rels
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	// word/document.xml
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + testRootNamespaces + `>
  <w:body>` + content + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	for name, data := range extra {
		w, _ = zw.Create(name)
		w.Write([]byte(data))
	}

	zw.Close()
	f.Close()

	return docxPath
}

func openTestDOCX(t *testing.T, path string) *Reader {
	t.Helper()
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func paragraphAt(t *testing.T, r *Reader, i int) *model.Paragraph {
	t.Helper()
	blocks := r.Blocks()
	if i >= len(blocks) {
		t.Fatalf("block %d requested, only %d blocks", i, len(blocks))
	}
	p, ok := blocks[i].(*model.Paragraph)
	if !ok {
		t.Fatalf("block %d is %v, want paragraph", i, blocks[i].Kind())
	}
	return p
}

func TestOpen(t *testing.T) {
	content := `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`
	r := openTestDOCX(t, createTestDOCX(t, content))

	if len(r.Blocks()) != 1 {
		t.Errorf("expected 1 block, got %d", len(r.Blocks()))
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	// Create a file that's not a valid ZIP
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "invalid.docx")
	os.WriteFile(invalidPath, []byte("not a zip file"), 0644)

	_, err := Open(invalidPath)
	if err == nil {
		t.Error("Open() should return error for invalid ZIP")
	}
}

func TestOpen_MissingDocumentXML(t *testing.T) {
	// Create a ZIP without word/document.xml
	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "missing.docx")

	f, _ := os.Create(docxPath)
	zw := zip.NewWriter(f)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	zw.Close()
	f.Close()

	_, err := Open(docxPath)
	if err == nil {
		t.Error("Open() should return error when document.xml is missing")
	}
}

func TestOpen_MalformedDocumentXML(t *testing.T) {
	path := createTestDOCX(t, `<w:p><w:r><w:t>unterminated`)
	if _, err := Open(path); err == nil {
		t.Error("Open() should fail on malformed document.xml")
	}
}

func TestReader_Text(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple paragraph",
			content:  `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`,
			expected: "Hello World",
		},
		{
			name: "multiple paragraphs",
			content: `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>`,
			expected: "First paragraph\nSecond paragraph",
		},
		{
			name: "multiple runs",
			content: `<w:p>
  <w:r><w:t xml:space="preserve">Hello </w:t></w:r>
  <w:r><w:t>World</w:t></w:r>
</w:p>`,
			expected: "Hello World",
		},
		{
			name:     "tabs and breaks",
			content:  `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			expected: "a\tb\nc",
		},
		{
			name:     "empty document",
			content:  ``,
			expected: "",
		},
		{
			name:     "paragraph with no text",
			content:  `<w:p><w:r></w:r></w:p>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := openTestDOCX(t, createTestDOCX(t, tt.content))

			if text := paragraphText(r); text != tt.expected {
				t.Errorf("paragraph text = %q, want %q", text, tt.expected)
			}
		})
	}
}

func TestReader_BlockOrder(t *testing.T) {
	content := `<w:p><w:r><w:t>Before</w:t></w:r></w:p>
<w:tbl>
  <w:tblGrid><w:gridCol w:w="2000"/></w:tblGrid>
  <w:tr><w:tc><w:p><w:r><w:t>Cell</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>After</w:t></w:r></w:p>`

	r := openTestDOCX(t, createTestDOCX(t, content))

	want := []model.BlockKind{model.KindParagraph, model.KindTable, model.KindParagraph}
	blocks := r.Blocks()
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, k := range want {
		if blocks[i].Kind() != k {
			t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind(), k)
		}
	}
	if got := paragraphAt(t, r, 2).Text; got != "After" {
		t.Errorf("last paragraph = %q, want %q", got, "After")
	}
}

func TestReader_RunFormatting(t *testing.T) {
	content := `<w:p>
  <w:r><w:rPr><w:b/><w:sz w:val="28"/><w:rFonts w:ascii="Arial"/></w:rPr><w:t>Bold</w:t></w:r>
  <w:r><w:rPr><w:b w:val="0"/><w:i w:val="true"/></w:rPr><w:t>Italic</w:t></w:r>
  <w:r><w:rPr><w:rFonts w:hAnsi="Georgia"/></w:rPr><w:t>Plain</w:t></w:r>
</w:p>`

	p := paragraphAt(t, openTestDOCX(t, createTestDOCX(t, content)), 0)

	want := []model.Run{
		{Text: "Bold", Bold: true, Size: 28, FontName: "Arial"},
		{Text: "Italic", Italic: true},
		{Text: "Plain", FontName: "Georgia"},
	}
	if len(p.Runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(p.Runs), len(want))
	}
	for i := range want {
		if p.Runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, p.Runs[i], want[i])
		}
	}
}

func TestReader_HyperlinkRunsKeepOrder(t *testing.T) {
	content := `<w:p>
  <w:r><w:t xml:space="preserve">See </w:t></w:r>
  <w:hyperlink r:id="rId9"><w:r><w:t>the site</w:t></w:r></w:hyperlink>
  <w:r><w:t xml:space="preserve"> now</w:t></w:r>
</w:p>`

	p := paragraphAt(t, openTestDOCX(t, createTestDOCX(t, content)), 0)
	if p.Text != "See the site now" {
		t.Errorf("Text = %q, want %q", p.Text, "See the site now")
	}
}

func TestReader_Graphics(t *testing.T) {
	inline := `<w:drawing><wp:inline><wp:extent cx="100" cy="100"/><wp:docPr id="1" name="Picture 1"/>
<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">
<pic:pic><pic:blipFill><a:blip r:embed="rId5"/></pic:blipFill></pic:pic>
</a:graphicData></a:graphic></wp:inline></w:drawing>`

	tests := []struct {
		name    string
		content string
		want    bool
		text    string
	}{
		{
			name:    "inline drawing",
			content: `<w:p><w:r>` + inline + `</w:r><w:r><w:t>Figure 1</w:t></w:r></w:p>`,
			want:    true,
			text:    "Figure 1",
		},
		{
			name: "alternate content",
			content: `<w:p><w:r><mc:AlternateContent><mc:Choice Requires="wps">` + inline +
				`</mc:Choice><mc:Fallback/></mc:AlternateContent></w:r></w:p>`,
			want: true,
		},
		{
			name:    "drawing without graphic data",
			content: `<w:p><w:r><w:drawing><wp:inline/></w:drawing><w:t>x</w:t></w:r></w:p>`,
			want:    false,
			text:    "x",
		},
		{
			name:    "plain text",
			content: `<w:p><w:r><w:t>graphicData</w:t></w:r></w:p>`,
			want:    false,
			text:    "graphicData",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paragraphAt(t, openTestDOCX(t, createTestDOCX(t, tt.content)), 0)
			if p.HasGraphic != tt.want {
				t.Errorf("HasGraphic = %v, want %v", p.HasGraphic, tt.want)
			}
			if p.Text != tt.text {
				t.Errorf("Text = %q, want %q", p.Text, tt.text)
			}
		})
	}
}

func TestReader_Alignment(t *testing.T) {
	content := `<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>c</w:t></w:r></w:p>
<w:p><w:pPr><w:jc w:val="both"/></w:pPr><w:r><w:t>j</w:t></w:r></w:p>
<w:p><w:r><w:t>none</w:t></w:r></w:p>`

	r := openTestDOCX(t, createTestDOCX(t, content))
	want := []model.Alignment{model.AlignCenter, model.AlignJustify, model.AlignInherit}
	for i, a := range want {
		if got := paragraphAt(t, r, i).Alignment; got != a {
			t.Errorf("paragraph %d alignment = %v, want %v", i, got, a)
		}
	}
}

func TestReader_ContentControls(t *testing.T) {
	content := `<w:sdt><w:sdtPr><w:alias w:val="x"/></w:sdtPr><w:sdtContent>
<w:p><w:r><w:t>Inside</w:t></w:r></w:p>
</w:sdtContent></w:sdt>
<w:p><w:r><w:t>Outside</w:t></w:r></w:p>`

	r := openTestDOCX(t, createTestDOCX(t, content))
	if len(r.Blocks()) != 2 {
		t.Fatalf("got %d blocks, want 2", len(r.Blocks()))
	}
	if got := paragraphAt(t, r, 0).Text; got != "Inside" {
		t.Errorf("first block = %q, want %q", got, "Inside")
	}
}

func TestReader_Sections(t *testing.T) {
	content := `<w:p><w:r><w:t>Title</w:t></w:r></w:p>
<w:p><w:pPr><w:sectPr><w:footerReference w:type="default" r:id="rId7"/><w:cols w:space="720" w:num="1"/></w:sectPr></w:pPr></w:p>
<w:p><w:r><w:t>Body</w:t></w:r></w:p>
<w:sectPr><w:type w:val="continuous"/><w:cols w:space="720" w:num="2"/></w:sectPr>`

	extra := map[string]string{
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>
</Relationships>`,
		"word/footer1.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:p><w:r><w:t xml:space="preserve">Page </w:t><w:fldChar w:fldCharType="begin"/><w:instrText>PAGE</w:instrText><w:fldChar w:fldCharType="end"/></w:r></w:p>
</w:ftr>`,
	}

	r := openTestDOCX(t, createTestDOCXWithParts(t, content, extra))

	sections := r.Sections()
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Columns != 1 || sections[0].Continuous || sections[0].End != 2 {
		t.Errorf("section 0 = %+v", sections[0])
	}
	if sections[0].Footer != "Page " {
		t.Errorf("section 0 footer = %q, want %q", sections[0].Footer, "Page ")
	}
	if sections[1].Columns != 2 || !sections[1].Continuous || sections[1].End != 3 {
		t.Errorf("section 1 = %+v", sections[1])
	}
}

func TestReader_StyleChain(t *testing.T) {
	styles := `<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/></w:style>
<w:style w:type="table" w:styleId="Grid"><w:name w:val="Grid Table"/><w:basedOn w:val="TableNormal"/><w:tblPr><w:tblBorders/></w:tblPr></w:style>
<w:style w:type="paragraph" w:styleId="Loop"><w:name w:val="Loop"/><w:basedOn w:val="Loop"/></w:style>`

	content := `<w:tbl><w:tblPr><w:tblStyle w:val="Grid"/></w:tblPr><w:tblGrid><w:gridCol/></w:tblGrid>
<w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl>`

	r := openTestDOCX(t, createTestDOCXWithStyles(t, content, styles))

	tbl, ok := r.Blocks()[0].(*model.Table)
	if !ok {
		t.Fatal("first block should be a table")
	}
	if tbl.StyleID != "Grid" || tbl.StyleName != "Grid Table" {
		t.Errorf("table style = %q/%q", tbl.StyleID, tbl.StyleName)
	}

	def, ok := r.TableStyle("Grid")
	if !ok {
		t.Fatal("TableStyle(Grid) not found")
	}
	if def.BasedOn != "TableNormal" || !def.portable() {
		t.Errorf("def = %+v, portable = %v", def, def.portable())
	}
	if _, ok := r.TableStyle("Loop"); ok {
		t.Error("paragraph style returned as table style")
	}

	chain := r.StyleChain("Grid")
	if len(chain) != 2 || chain[0].ID != "Grid" || chain[1].ID != "TableNormal" {
		t.Errorf("chain = %+v", chain)
	}
	if got := r.StyleChain("Loop"); len(got) != 1 {
		t.Errorf("cyclic chain length = %d, want 1", len(got))
	}
	if got := r.StyleChain("Missing"); len(got) != 0 {
		t.Errorf("missing chain length = %d, want 0", len(got))
	}
}
