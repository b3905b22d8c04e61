package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Relationship IDs 1-3 are fixed; media follow, then footers.
const (
	relStyles     = "rId1"
	relNumbering  = "rId2"
	relSettings   = "rId3"
	firstMediaRel = 4
)

const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"

	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctSettings  = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctFooter    = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// part is one file of the output package.
type part struct {
	name string
	data []byte
}

type xTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	NS        string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xRelationships struct {
	XMLName       xml.Name        `xml:"Relationships"`
	NS            string          `xml:"xmlns,attr"`
	Relationships []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// WriteTo writes the document as a DOCX package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	parts, err := d.parts()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finishing ZIP archive: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// footerRel returns the relationship ID of section i's footer.
func (d *Document) footerRel(i int) string {
	return fmt.Sprintf("rId%d", firstMediaRel+len(d.media)+i)
}

// parts serializes every package part in a stable order.
func (d *Document) parts() ([]part, error) {
	var parts []part
	add := func(name string, v any) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", name, err)
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}

	// [Content_Types].xml
	types := xTypes{
		NS: nsContentTypes,
		Defaults: []xDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xOverride{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/word/numbering.xml", ContentType: ctNumbering},
			{PartName: "/word/settings.xml", ContentType: ctSettings},
		},
	}
	exts := make(map[string]bool)
	for _, m := range d.media {
		exts[m.ext] = true
	}
	sorted := make([]string, 0, len(exts))
	for ext := range exts {
		sorted = append(sorted, ext)
	}
	sort.Strings(sorted)
	for _, ext := range sorted {
		types.Defaults = append(types.Defaults, xDefault{Extension: ext, ContentType: imageContentTypes[ext]})
	}
	for i := range d.sections {
		types.Overrides = append(types.Overrides, xOverride{
			PartName:    fmt.Sprintf("/word/footer%d.xml", i+1),
			ContentType: ctFooter,
		})
	}
	if err := add("[Content_Types].xml", types); err != nil {
		return nil, err
	}

	// _rels/.rels
	if err := add("_rels/.rels", xRelationships{
		NS: nsRelationships,
		Relationships: []xRelationship{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: "word/document.xml"},
		},
	}); err != nil {
		return nil, err
	}

	// word/_rels/document.xml.rels
	rels := xRelationships{
		NS: nsRelationships,
		Relationships: []xRelationship{
			{ID: relStyles, Type: relTypeStyles, Target: "styles.xml"},
			{ID: relNumbering, Type: relTypeNumbering, Target: "numbering.xml"},
			{ID: relSettings, Type: relTypeSettings, Target: "settings.xml"},
		},
	}
	for _, m := range d.media {
		rels.Relationships = append(rels.Relationships, xRelationship{
			ID: m.relID, Type: relTypeImage, Target: "media/" + m.name,
		})
	}
	for i := range d.sections {
		rels.Relationships = append(rels.Relationships, xRelationship{
			ID: d.footerRel(i), Type: relTypeFooter, Target: fmt.Sprintf("footer%d.xml", i+1),
		})
	}
	if err := add("word/_rels/document.xml.rels", rels); err != nil {
		return nil, err
	}

	if err := add("word/document.xml", d.documentMarkup()); err != nil {
		return nil, err
	}
	if err := add("word/styles.xml", d.stylesMarkup()); err != nil {
		return nil, err
	}
	if err := add("word/numbering.xml", numberingMarkup()); err != nil {
		return nil, err
	}
	if err := add("word/settings.xml", settingsMarkup()); err != nil {
		return nil, err
	}
	for i, s := range d.sections {
		if err := add(fmt.Sprintf("word/footer%d.xml", i+1), s.Footer.xml()); err != nil {
			return nil, err
		}
	}
	for _, m := range d.media {
		parts = append(parts, part{name: "word/media/" + m.name, data: m.data})
	}

	return parts, nil
}

func marshalPart(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// documentMarkup lays out the body. Every section but the last is closed by
// a trailing empty paragraph carrying its properties; the last section's
// properties are the body's own.
func (d *Document) documentMarkup() xDocument {
	doc := xDocument{NSW: nsW, NSR: nsR, NSWP: nsWP, NSA: nsA, NSPIC: nsPIC}
	last := len(d.sections) - 1
	for i, s := range d.sections {
		for _, item := range s.content {
			doc.Body.Content = append(doc.Body.Content, item.markup(s))
		}
		sp := s.sectPr(d.footerRel(i))
		if i < last {
			var closing *Paragraph
			doc.Body.Content = append(doc.Body.Content, closing.xml(sp))
		} else {
			doc.Body.SectPr = sp
		}
	}
	return doc
}
