package docx

import (
	"encoding/xml"
	"strings"
)

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPIC = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// paragraphXML represents a paragraph element (<w:p>).
//
// Runs are collected in document order from the paragraph itself and from
// run containers (hyperlinks, insertions, smart tags, simple fields).
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// runContainers are paragraph children whose <w:r> children render inline.
var runContainers = map[string]bool{
	"hyperlink": true,
	"ins":       true,
	"smartTag":  true,
	"fldSimple": true,
	"customXml": true,
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.decodeChildren(d, start)
}

func (p *paragraphXML) decodeChildren(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case t.Name.Local == "r":
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case runContainers[t.Name.Local]:
				if err := p.decodeChildren(d, t); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	SectPr        *sectPrXML       `xml:"sectPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// runXML represents a text run (<w:r>) with its content flattened to text.
type runXML struct {
	Properties runPropsXML
	Text       string
	HasGraphic bool
}

func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
			case "t":
				var text string
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				sb.WriteString(text)
			case "tab":
				sb.WriteString("\t")
				if err := d.Skip(); err != nil {
					return err
				}
			case "br", "cr":
				sb.WriteString("\n")
				if err := d.Skip(); err != nil {
					return err
				}
			case "drawing", "AlternateContent", "pict", "object":
				found, err := containsGraphic(d, t)
				if err != nil {
					return err
				}
				if found {
					r.HasGraphic = true
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				r.Text = sb.String()
				return nil
			}
		}
	}
}

// containsGraphic consumes the element opened by start and reports whether
// its subtree holds a DrawingML graphic payload or picture.
func containsGraphic(d *xml.Decoder, start xml.StartElement) (bool, error) {
	found := false
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "graphicData" || (t.Name.Local == "pic" && t.Name.Space == nsPIC) {
				found = true
			}
		case xml.EndElement:
			depth--
		}
	}
	return found, nil
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold     *boolXML `xml:"b"`
	Italic   *boolXML `xml:"i"`
	FontSize sizeXML  `xml:"sz"`
	Font     fontXML  `xml:"rFonts"`
}

// boolXML represents an on/off property. A missing val means on.
type boolXML struct {
	Val string `xml:"val,attr"`
}

func (b *boolXML) on() bool {
	if b == nil {
		return false
	}
	switch b.Val {
	case "0", "false", "off":
		return false
	}
	return true
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

func (f fontXML) name() string {
	for _, n := range []string{f.ASCII, f.HAnsi, f.EastAsia, f.CS} {
		if n != "" {
			return n
		}
	}
	return ""
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	FooterRefs []hdrFtrRefXML `xml:"footerReference"`
	Type       styleRefXML    `xml:"type"`
	Cols       colsXML        `xml:"cols"`
}

// hdrFtrRefXML references a header or footer part.
type hdrFtrRefXML struct {
	Type string `xml:"type,attr"`
	ID   string `xml:"id,attr"`
}

// colsXML represents the column declaration of a section.
type colsXML struct {
	Num   string `xml:"num,attr"`
	Space string `xml:"space,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	GridSpan gridSpanXML `xml:"gridSpan"`
}

// gridSpanXML represents column span.
type gridSpanXML struct {
	Val string `xml:"val,attr"` // Number of columns spanned
}

// footerXML represents the structure of word/footer*.xml files (<w:ftr>).
type footerXML struct {
	XMLName    xml.Name       `xml:"ftr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// relationshipsXML represents _rels/*.rels files
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents a single relationship.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"` // External or empty (internal)
}
