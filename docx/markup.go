package docx

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/tsawler/paperlayout/model"
)

// Output markup. Element and attribute names carry their prefixes literally
// so that the serialized parts use the conventional w, r, wp, a and pic
// prefixes declared on each part's root element. Types placed in untagged
// or interface fields name themselves through XMLName; types placed in
// tagged fields do not.

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xIntVal struct {
	Val int `xml:"w:val,attr"`
}

type xOn struct{}

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	NSWP    string   `xml:"xmlns:wp,attr"`
	NSA     string   `xml:"xmlns:a,attr"`
	NSPIC   string   `xml:"xmlns:pic,attr"`
	Body    xBody    `xml:"w:body"`
}

type xBody struct {
	Content []any
	SectPr  *xSectPr `xml:"w:sectPr"`
}

type xFtr struct {
	XMLName    xml.Name `xml:"w:ftr"`
	NSW        string   `xml:"xmlns:w,attr"`
	NSR        string   `xml:"xmlns:r,attr"`
	Paragraphs []xP
}

type xP struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *xPPr    `xml:"w:pPr"`
	Runs    []xR
}

type xPPr struct {
	PStyle  *xVal     `xml:"w:pStyle"`
	Tabs    *xTabs    `xml:"w:tabs"`
	Spacing *xSpacing `xml:"w:spacing"`
	Jc      *xVal     `xml:"w:jc"`
	SectPr  *xSectPr  `xml:"w:sectPr"`
}

type xTabs struct {
	Tabs []xTabStop
}

type xTabStop struct {
	XMLName xml.Name `xml:"w:tab"`
	Val     string   `xml:"w:val,attr"`
	Pos     int64    `xml:"w:pos,attr"`
}

type xSpacing struct {
	After int64 `xml:"w:after,attr"`
}

type xR struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *xRPr    `xml:"w:rPr"`
	Content []any
}

type xRPr struct {
	RFonts *xFonts  `xml:"w:rFonts"`
	B      *xOn     `xml:"w:b"`
	I      *xOn     `xml:"w:i"`
	Sz     *xIntVal `xml:"w:sz"`
	SzCs   *xIntVal `xml:"w:szCs"`
}

type xFonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	CS       string `xml:"w:cs,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
}

type xText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type xTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type xBr struct {
	XMLName xml.Name `xml:"w:br"`
}

type xFldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type xInstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type xDrawing struct {
	XMLName xml.Name `xml:"w:drawing"`
	Inline  xInline  `xml:"wp:inline"`
}

type xInline struct {
	DistT   int             `xml:"distT,attr"`
	DistB   int             `xml:"distB,attr"`
	DistL   int             `xml:"distL,attr"`
	DistR   int             `xml:"distR,attr"`
	Extent  xExtent         `xml:"wp:extent"`
	DocPr   xDocPr          `xml:"wp:docPr"`
	FramePr xGraphicFramePr `xml:"wp:cNvGraphicFramePr"`
	Graphic xGraphic        `xml:"a:graphic"`
}

type xExtent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type xDocPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xGraphicFramePr struct {
	Locks xFrameLocks `xml:"a:graphicFrameLocks"`
}

type xFrameLocks struct {
	NoChangeAspect int `xml:"noChangeAspect,attr"`
}

type xGraphic struct {
	Data xGraphicData `xml:"a:graphicData"`
}

type xGraphicData struct {
	URI string `xml:"uri,attr"`
	Pic xPic   `xml:"pic:pic"`
}

type xPic struct {
	NvPicPr  xNvPicPr  `xml:"pic:nvPicPr"`
	BlipFill xBlipFill `xml:"pic:blipFill"`
	SpPr     xSpPr     `xml:"pic:spPr"`
}

type xNvPicPr struct {
	CNvPr    xDocPr   `xml:"pic:cNvPr"`
	CNvPicPr struct{} `xml:"pic:cNvPicPr"`
}

type xBlipFill struct {
	Blip    xBlip    `xml:"a:blip"`
	Stretch xStretch `xml:"a:stretch"`
}

type xBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type xStretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

type xSpPr struct {
	Xfrm     xXfrm     `xml:"a:xfrm"`
	PrstGeom xPrstGeom `xml:"a:prstGeom"`
}

type xXfrm struct {
	Off xOff    `xml:"a:off"`
	Ext xExtent `xml:"a:ext"`
}

type xOff struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xTbl struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   xTblPr   `xml:"w:tblPr"`
	Grid    xTblGrid `xml:"w:tblGrid"`
	Rows    []xTr
}

type xTblPr struct {
	Style *xVal    `xml:"w:tblStyle"`
	W     xTblW    `xml:"w:tblW"`
	Look  xTblLook `xml:"w:tblLook"`
}

type xTblW struct {
	W    int64  `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xTblLook struct {
	Val string `xml:"w:val,attr"`
}

type xTblGrid struct {
	Cols []xGridCol
}

type xGridCol struct {
	XMLName xml.Name `xml:"w:gridCol"`
	W       int64    `xml:"w:w,attr"`
}

type xTr struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []xTc
}

type xTc struct {
	XMLName    xml.Name `xml:"w:tc"`
	TcPr       xTcPr    `xml:"w:tcPr"`
	Paragraphs []xP
}

type xTcPr struct {
	W xTblW `xml:"w:tcW"`
}

type xSectPr struct {
	FooterRef *xHdrFtrRef `xml:"w:footerReference"`
	Type      *xVal       `xml:"w:type"`
	PgSz      xPgSz       `xml:"w:pgSz"`
	PgMar     xPgMar      `xml:"w:pgMar"`
	Cols      xCols       `xml:"w:cols"`
}

type xHdrFtrRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xPgSz struct {
	W int64 `xml:"w:w,attr"`
	H int64 `xml:"w:h,attr"`
}

type xPgMar struct {
	Top    int64 `xml:"w:top,attr"`
	Right  int64 `xml:"w:right,attr"`
	Bottom int64 `xml:"w:bottom,attr"`
	Left   int64 `xml:"w:left,attr"`
	Header int64 `xml:"w:header,attr"`
	Footer int64 `xml:"w:footer,attr"`
	Gutter int64 `xml:"w:gutter,attr"`
}

type xCols struct {
	Space int64 `xml:"w:space,attr"`
	Num   int   `xml:"w:num,attr"`
}

func alignmentVal(a model.Alignment) string {
	switch a {
	case model.AlignLeft:
		return "left"
	case model.AlignCenter:
		return "center"
	case model.AlignRight:
		return "right"
	case model.AlignJustify:
		return "both"
	default:
		return ""
	}
}

func (p *Paragraph) xml(sectPr *xSectPr) xP {
	out := xP{}
	ppr := &xPPr{SectPr: sectPr}
	if p != nil {
		if p.style != "" {
			ppr.PStyle = &xVal{Val: p.style}
		}
		if len(p.tabs) > 0 {
			ppr.Tabs = &xTabs{}
			for _, t := range p.tabs {
				ppr.Tabs.Tabs = append(ppr.Tabs.Tabs, t.markup())
			}
		}
		if p.spaceAfter != nil {
			ppr.Spacing = &xSpacing{After: p.spaceAfter.Twips()}
		}
		if v := alignmentVal(p.align); v != "" {
			ppr.Jc = &xVal{Val: v}
		}
		for _, r := range p.runs {
			out.Runs = append(out.Runs, r.xml())
		}
	}
	if *ppr != (xPPr{}) {
		out.PPr = ppr
	}
	return out
}

func (p *Paragraph) markup(*Section) any {
	return p.xml(nil)
}

func (r *Run) xml() xR {
	out := xR{}
	rpr := &xRPr{}
	if r.font != "" {
		rpr.RFonts = &xFonts{ASCII: r.font, HAnsi: r.font, CS: r.font, EastAsia: r.font}
	}
	if r.bold {
		rpr.B = &xOn{}
	}
	if r.italic {
		rpr.I = &xOn{}
	}
	if r.size > 0 {
		rpr.Sz = &xIntVal{Val: r.size}
		rpr.SzCs = &xIntVal{Val: r.size}
	}
	if *rpr != (xRPr{}) {
		out.RPr = rpr
	}

	out.Content = textMarkup(r.text)
	if r.field != nil {
		out.Content = append(out.Content, r.field.markup()...)
	}
	if r.picture != nil {
		out.Content = append(out.Content, r.picture.markup())
	}
	return out
}

// textMarkup splits run text into text, tab and break elements.
func textMarkup(text string) []any {
	var out []any
	var sb strings.Builder
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		s := sb.String()
		t := xText{Text: s}
		if strings.TrimSpace(s) != s {
			t.Space = "preserve"
		}
		out = append(out, t)
		sb.Reset()
	}
	for _, c := range text {
		switch c {
		case '\t':
			flush()
			out = append(out, xTab{})
		case '\n':
			flush()
			out = append(out, xBr{})
		case '\r':
		default:
			sb.WriteRune(c)
		}
	}
	flush()
	return out
}

func (pic *Picture) markup() xDrawing {
	ext := xExtent{CX: pic.Width.EMU(), CY: pic.Height.EMU()}
	docPr := xDocPr{ID: pic.id, Name: "Picture " + strconv.Itoa(pic.id), Descr: pic.Description}
	return xDrawing{Inline: xInline{
		Extent:  ext,
		DocPr:   docPr,
		FramePr: xGraphicFramePr{Locks: xFrameLocks{NoChangeAspect: 1}},
		Graphic: xGraphic{Data: xGraphicData{
			URI: nsPIC,
			Pic: xPic{
				NvPicPr:  xNvPicPr{CNvPr: xDocPr{ID: 0, Name: pic.media.name, Descr: pic.Description}},
				BlipFill: xBlipFill{Blip: xBlip{Embed: pic.media.relID}},
				SpPr: xSpPr{
					Xfrm:     xXfrm{Ext: ext},
					PrstGeom: xPrstGeom{Prst: "rect"},
				},
			},
		}},
	}}
}

// textWidth is the width available to one column of the section.
func (s *Section) textWidth() Length {
	w := s.PageWidth - s.Margins.Left - s.Margins.Right
	if s.Columns > 1 {
		w = (w - s.ColumnSpace*Length(s.Columns-1)) / Length(s.Columns)
	}
	return w
}

func (t *Table) markup(s *Section) any {
	out := xTbl{
		TblPr: xTblPr{
			W:    xTblW{W: 0, Type: "auto"},
			Look: xTblLook{Val: "04A0"},
		},
	}
	if t.style != "" {
		out.TblPr.Style = &xVal{Val: t.style}
	}
	var colW int64
	if t.cols > 0 {
		colW = s.textWidth().Twips() / int64(t.cols)
	}
	for i := 0; i < t.cols; i++ {
		out.Grid.Cols = append(out.Grid.Cols, xGridCol{W: colW})
	}
	for _, row := range t.rows {
		tr := xTr{}
		for _, cell := range row {
			tc := xTc{TcPr: xTcPr{W: xTblW{W: colW, Type: "dxa"}}}
			for _, p := range cell.paragraphs {
				tc.Paragraphs = append(tc.Paragraphs, p.xml(nil))
			}
			if len(tc.Paragraphs) == 0 {
				tc.Paragraphs = append(tc.Paragraphs, xP{})
			}
			tr.Cells = append(tr.Cells, tc)
		}
		out.Rows = append(out.Rows, tr)
	}
	return out
}

func (s *Section) sectPr(footerRel string) *xSectPr {
	sp := &xSectPr{
		PgSz: xPgSz{W: s.PageWidth.Twips(), H: s.PageHeight.Twips()},
		PgMar: xPgMar{
			Top:    s.Margins.Top.Twips(),
			Right:  s.Margins.Right.Twips(),
			Bottom: s.Margins.Bottom.Twips(),
			Left:   s.Margins.Left.Twips(),
			Header: s.Margins.Header.Twips(),
			Footer: s.Margins.Footer.Twips(),
		},
		Cols: colsMarkup(s),
	}
	if footerRel != "" {
		sp.FooterRef = &xHdrFtrRef{Type: "default", ID: footerRel}
	}
	if s.Start == StartContinuous {
		sp.Type = &xVal{Val: "continuous"}
	}
	return sp
}

func (f *Footer) xml() xFtr {
	out := xFtr{NSW: nsW, NSR: nsR}
	for _, p := range f.paragraphs {
		out.Paragraphs = append(out.Paragraphs, p.xml(nil))
	}
	if len(out.Paragraphs) == 0 {
		out.Paragraphs = append(out.Paragraphs, xP{})
	}
	return out
}
