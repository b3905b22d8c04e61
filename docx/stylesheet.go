package docx

import "encoding/xml"

type builtinStyle struct {
	typ   string
	id    string
	def   bool
	inner string
}

// builtinStyles are always present in the output styles part.
var builtinStyles = []builtinStyle{
	{typ: "paragraph", id: "Normal", def: true, inner: `<w:name w:val="Normal"/><w:qFormat/>`},
	{typ: "character", id: "DefaultParagraphFont", def: true, inner: `<w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/><w:unhideWhenUsed/>`},
	{typ: "table", id: "TableNormal", def: true, inner: `<w:name w:val="Normal Table"/><w:uiPriority w:val="99"/><w:semiHidden/><w:unhideWhenUsed/>` +
		`<w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/>` +
		`<w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr>`},
	{typ: "table", id: "TableGrid", inner: `<w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/><w:uiPriority w:val="59"/>` +
		`<w:tblPr><w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders></w:tblPr>`},
	{typ: "paragraph", id: ListNumberStyle, inner: `<w:name w:val="List Number"/><w:basedOn w:val="Normal"/><w:uiPriority w:val="99"/><w:unhideWhenUsed/>` +
		`<w:pPr><w:numPr><w:numId w:val="` + listNumberID + `"/></w:numPr><w:ind w:left="360" w:hanging="360"/><w:contextualSpacing/></w:pPr>`},
}

const docDefaults = `<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>` +
	`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="en-US"/></w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault>`

type xStyles struct {
	XMLName     xml.Name `xml:"w:styles"`
	NSW         string   `xml:"xmlns:w,attr"`
	NSR         string   `xml:"xmlns:r,attr"`
	DocDefaults xRaw     `xml:"w:docDefaults"`
	Styles      []xStyle
}

type xRaw struct {
	Inner string `xml:",innerxml"`
}

type xStyle struct {
	XMLName xml.Name `xml:"w:style"`
	Type    string   `xml:"w:type,attr"`
	Default string   `xml:"w:default,attr,omitempty"`
	StyleID string   `xml:"w:styleId,attr"`
	Inner   string   `xml:",innerxml"`
}

// stylesMarkup renders the built-in styles followed by added definitions.
func (d *Document) stylesMarkup() xStyles {
	out := xStyles{NSW: nsW, NSR: nsR, DocDefaults: xRaw{Inner: docDefaults}}
	for _, b := range builtinStyles {
		s := xStyle{Type: b.typ, StyleID: b.id, Inner: b.inner}
		if b.def {
			s.Default = "1"
		}
		out.Styles = append(out.Styles, s)
	}
	for _, def := range d.styles {
		typ := def.Type
		if typ == "" {
			typ = "table"
		}
		out.Styles = append(out.Styles, xStyle{Type: typ, StyleID: def.ID, Inner: string(def.Inner)})
	}
	return out
}

type xSettings struct {
	XMLName        xml.Name `xml:"w:settings"`
	NSW            string   `xml:"xmlns:w,attr"`
	DefaultTabStop xIntVal  `xml:"w:defaultTabStop"`
	Compat         xRaw     `xml:"w:compat"`
}

func settingsMarkup() xSettings {
	return xSettings{
		NSW:            nsW,
		DefaultTabStop: xIntVal{Val: 720},
		Compat: xRaw{Inner: `<w:compatSetting w:name="compatibilityMode" ` +
			`w:uri="http://schemas.microsoft.com/office/word" w:val="15"/>`},
	}
}
