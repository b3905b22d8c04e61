// Package docx reads and writes DOCX (Office Open XML) documents.
//
// The reading side ([Open], [Reader]) produces the ordered block stream of a
// source document as [model.Block] values. The writing side ([New],
// [Document]) builds a fresh package with sections, paragraphs, tables,
// pictures and footers, and saves it atomically.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/tsawler/paperlayout/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.ReadCloser
	rels      *relationshipsXML
	styles    *stylesXML
	blocks    []model.Block
	sections  []SectionInfo
}

// SectionInfo describes one section of a loaded document.
type SectionInfo struct {
	// Columns is the declared column count, 1 when undeclared.
	Columns int

	// Continuous is true when the section starts without a page break.
	Continuous bool

	// Footer is the text of the section's default footer, if it has one.
	Footer string

	// End is the index in Blocks one past the section's last block.
	End int
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parseRelationships(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Styles are optional; table style names simply stay unresolved.
	_ = r.parseStyles()

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Blocks returns the body's paragraphs and tables in document order.
func (r *Reader) Blocks() []model.Block {
	return r.blocks
}

// Sections returns the document's sections in order.
func (r *Reader) Sections() []SectionInfo {
	return r.sections
}

// TableStyle returns the table style definition with the given ID.
func (r *Reader) TableStyle(id string) (StyleDef, bool) {
	s, ok := r.style(id)
	if !ok || s.Type != "table" {
		return StyleDef{}, false
	}
	return s.toDef(), true
}

// StyleChain returns the style with the given ID followed by the styles it
// is based on, nearest first. Missing parents and cycles end the chain.
func (r *Reader) StyleChain(id string) []StyleDef {
	var chain []StyleDef
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		seen[id] = true
		s, ok := r.style(id)
		if !ok {
			break
		}
		chain = append(chain, s.toDef())
		id = s.BasedOn.Val
	}
	return chain
}

func (r *Reader) style(id string) (styleDefXML, bool) {
	if r.styles == nil || id == "" {
		return styleDefXML{}, false
	}
	for _, s := range r.styles.Styles {
		if s.StyleID == id {
			return s, true
		}
	}
	return styleDefXML{}, false
}

func (r *Reader) styleName(id string) string {
	if s, ok := r.style(id); ok {
		return s.Name.Val
	}
	return ""
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships parses the document relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		// Relationships file is optional
		return nil
	}

	r.rels = &relationshipsXML{}
	return xml.Unmarshal(data, r.rels)
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return err
	}

	r.styles = &stylesXML{}
	return xml.Unmarshal(data, r.styles)
}

// parseDocument walks word/document.xml with a streaming decoder so that
// paragraphs and tables keep their relative order.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	inBody := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "body" && t.Name.Space == nsW {
				inBody = true
				continue
			}
			if !inBody {
				continue
			}

			switch t.Name.Local {
			case "p":
				var para paragraphXML
				if err := decoder.DecodeElement(&para, &t); err != nil {
					return fmt.Errorf("decoding paragraph: %w", err)
				}
				r.blocks = append(r.blocks, r.processParagraph(para))
				if para.Properties.SectPr != nil {
					r.addSection(para.Properties.SectPr)
				}

			case "tbl":
				var tbl tableXML
				if err := decoder.DecodeElement(&tbl, &t); err != nil {
					return fmt.Errorf("decoding table: %w", err)
				}
				r.blocks = append(r.blocks, r.processTable(tbl))

			case "sectPr":
				var sp sectPrXML
				if err := decoder.DecodeElement(&sp, &t); err != nil {
					return fmt.Errorf("decoding section properties: %w", err)
				}
				r.addSection(&sp)

			case "sdt", "sdtContent", "customXml":
				// Content controls wrap body blocks; descend into them.

			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if t.Name.Local == "body" && t.Name.Space == nsW {
				inBody = false
			}
		}
	}

	return nil
}

// processParagraph converts a decoded paragraph to the model.
func (r *Reader) processParagraph(p paragraphXML) *model.Paragraph {
	var runs []model.Run
	for _, run := range p.Runs {
		if run.Text == "" && !run.HasGraphic {
			continue
		}
		mr := model.Run{
			Text:       run.Text,
			Bold:       run.Properties.Bold.on(),
			Italic:     run.Properties.Italic.on(),
			FontName:   run.Properties.Font.name(),
			HasGraphic: run.HasGraphic,
		}
		if v := run.Properties.FontSize.Val; v != "" {
			if sz, err := strconv.Atoi(v); err == nil && sz > 0 {
				mr.Size = sz
			}
		}
		runs = append(runs, mr)
	}

	para := model.NewParagraph(runs...)
	para.StyleID = p.Properties.Style.Val
	para.Alignment = parseAlignment(p.Properties.Justification.Val)
	return para
}

func parseAlignment(val string) model.Alignment {
	switch val {
	case "left", "start":
		return model.AlignLeft
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "distribute":
		return model.AlignJustify
	default:
		return model.AlignInherit
	}
}

// addSection records a section ending at the current block.
func (r *Reader) addSection(sp *sectPrXML) {
	info := SectionInfo{
		Columns:    1,
		Continuous: sp.Type.Val == "continuous",
		End:        len(r.blocks),
	}
	if n, err := strconv.Atoi(sp.Cols.Num); err == nil && n > 0 {
		info.Columns = n
	}
	for _, ref := range sp.FooterRefs {
		if ref.Type == "" || ref.Type == "default" {
			info.Footer = r.footerText(ref.ID)
			break
		}
	}
	r.sections = append(r.sections, info)
}

// footerText resolves a footer relationship and returns its text.
func (r *Reader) footerText(relID string) string {
	if r.rels == nil {
		return ""
	}
	for _, rel := range r.rels.Relationships {
		if rel.ID != relID {
			continue
		}
		name := strings.TrimPrefix(rel.Target, "/")
		if !strings.HasPrefix(name, "word/") {
			name = path.Join("word", name)
		}
		data, err := r.getFileContent(name)
		if err != nil {
			return ""
		}
		var ftr footerXML
		if err := xml.Unmarshal(data, &ftr); err != nil {
			return ""
		}
		parts := make([]string, 0, len(ftr.Paragraphs))
		for _, p := range ftr.Paragraphs {
			parts = append(parts, r.processParagraph(p).Text)
		}
		return strings.Join(parts, "\n")
	}
	return ""
}
