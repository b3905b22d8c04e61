package docx

import "encoding/xml"

// ListNumberStyle is the style ID of numbered list paragraphs. Paragraphs
// with this style are numbered "1.", "2.", ... through numbering instance 1.
const ListNumberStyle = "ListNumber"

// listNumberID is the numbering instance bound to ListNumberStyle.
const listNumberID = "1"

type xNumbering struct {
	XMLName      xml.Name `xml:"w:numbering"`
	NSW          string   `xml:"xmlns:w,attr"`
	AbstractNums []xAbstractNum
	Nums         []xNum
}

type xAbstractNum struct {
	XMLName        xml.Name `xml:"w:abstractNum"`
	AbstractNumID  string   `xml:"w:abstractNumId,attr"`
	MultiLevelType xVal     `xml:"w:multiLevelType"`
	Levels         []xLvl
}

type xLvl struct {
	XMLName xml.Name `xml:"w:lvl"`
	ILvl    int      `xml:"w:ilvl,attr"`
	Start   xIntVal  `xml:"w:start"`
	NumFmt  xVal     `xml:"w:numFmt"`
	PStyle  xVal     `xml:"w:pStyle"`
	LvlText xVal     `xml:"w:lvlText"`
	LvlJc   xVal     `xml:"w:lvlJc"`
	PPr     xLvlPPr  `xml:"w:pPr"`
}

type xLvlPPr struct {
	Ind xInd `xml:"w:ind"`
}

type xInd struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr"`
}

type xNum struct {
	XMLName       xml.Name `xml:"w:num"`
	NumID         string   `xml:"w:numId,attr"`
	AbstractNumID xVal     `xml:"w:abstractNumId"`
}

// numberingMarkup defines one decimal list ("%1.") for ListNumberStyle.
func numberingMarkup() xNumbering {
	return xNumbering{
		NSW: nsW,
		AbstractNums: []xAbstractNum{{
			AbstractNumID:  "0",
			MultiLevelType: xVal{Val: "singleLevel"},
			Levels: []xLvl{{
				ILvl:    0,
				Start:   xIntVal{Val: 1},
				NumFmt:  xVal{Val: "decimal"},
				PStyle:  xVal{Val: ListNumberStyle},
				LvlText: xVal{Val: "%1."},
				LvlJc:   xVal{Val: "left"},
				PPr:     xLvlPPr{Ind: xInd{Left: 360, Hanging: 360}},
			}},
		}},
		Nums: []xNum{{NumID: listNumberID, AbstractNumID: xVal{Val: "0"}}},
	}
}
