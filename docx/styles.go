package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	Type    string       `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string       `xml:"styleId,attr"`
	Default string       `xml:"default,attr"` // "1" if default style
	Name    styleNameXML `xml:"name"`
	BasedOn styleNameXML `xml:"basedOn"`
	Inner   []byte       `xml:",innerxml"`
}

// styleNameXML represents a style name or parent reference.
type styleNameXML struct {
	Val string `xml:"val,attr"`
}

// StyleDef is a style definition carried from a source document into an
// output document.
type StyleDef struct {
	ID      string
	Name    string
	Type    string
	BasedOn string

	// Inner is the verbatim child markup of the source <w:style> element.
	// It must use the "w:" prefix for the main namespace.
	Inner []byte
}

// portable reports whether the raw markup can be embedded in a styles part
// that only declares the w and r prefixes.
func (s StyleDef) portable() bool {
	dec := xml.NewDecoder(bytes.NewReader(s.Inner))
	for {
		tok, err := dec.RawToken()
		if err != nil {
			return errors.Is(err, io.EOF)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Space != "w" {
				return false
			}
			for _, a := range se.Attr {
				if a.Name.Space != "" && a.Name.Space != "w" && a.Name.Space != "r" && a.Name.Space != "xml" {
					return false
				}
			}
		}
	}
}

func (s styleDefXML) toDef() StyleDef {
	return StyleDef{
		ID:      s.StyleID,
		Name:    s.Name.Val,
		Type:    s.Type,
		BasedOn: s.BasedOn.Val,
		Inner:   bytes.TrimSpace(s.Inner),
	}
}
