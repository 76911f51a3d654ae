// Package xlsxml implements the xls-xml (SpreadsheetML 2003) format
// handler: a context-stack walk over Workbook/Styles/Worksheet/Table/
// Row/Cell/Data driving a spreadsheet.ImportFactory.
package xlsxml

import "github.com/dhamidi/orcus-go/sax"

// PredefinedNamespaces is the fixed, ordered namespace list xls-xml
// documents declare; "ss" is conventionally bound to the same URI as
// the default namespace.
var PredefinedNamespaces = []string{
	"urn:schemas-microsoft-com:office:spreadsheet",
	"urn:schemas-microsoft-com:office:office",
	"urn:schemas-microsoft-com:office:excel",
	"http://www.w3.org/TR/REC-html40",
}

const (
	TokenUnknown = sax.UnknownToken

	TokenWorkbook = iota
	TokenStyles
	TokenStyle
	TokenAlignment
	TokenBorders
	TokenBorder
	TokenFont
	TokenInterior
	TokenNumberFormat
	TokenProtection
	TokenWorksheet
	TokenTable
	TokenColumn
	TokenRow
	TokenCell
	TokenData
	TokenNamedRange
	TokenNames

	TokenID
	TokenName
	TokenIndex
	TokenStyleID
	TokenFormula
	TokenType
	TokenColor
	TokenBold
	TokenItalic
	TokenUnderline
	TokenSize
	TokenPattern
	TokenHorizontal
	TokenVertical
	TokenWrapText
	TokenProtected
	TokenPosition
	TokenWeight
	TokenFormat
	TokenWidth
	TokenSpan
	TokenRefersTo
)

var tokenNames = map[int]string{
	TokenWorkbook:     "Workbook",
	TokenStyles:       "Styles",
	TokenStyle:        "Style",
	TokenAlignment:    "Alignment",
	TokenBorders:      "Borders",
	TokenBorder:       "Border",
	TokenFont:         "Font",
	TokenInterior:     "Interior",
	TokenNumberFormat: "NumberFormat",
	TokenProtection:   "Protection",
	TokenWorksheet:    "Worksheet",
	TokenTable:        "Table",
	TokenColumn:       "Column",
	TokenRow:          "Row",
	TokenCell:         "Cell",
	TokenData:         "Data",
	TokenNamedRange:   "NamedRange",
	TokenNames:        "Names",

	TokenID:         "ID",
	TokenName:       "Name",
	TokenIndex:      "Index",
	TokenStyleID:    "StyleID",
	TokenFormula:    "Formula",
	TokenType:       "Type",
	TokenColor:      "Color",
	TokenBold:       "Bold",
	TokenItalic:     "Italic",
	TokenUnderline:  "Underline",
	TokenSize:       "Size",
	TokenPattern:    "Pattern",
	TokenHorizontal: "Horizontal",
	TokenVertical:   "Vertical",
	TokenWrapText:   "WrapText",
	TokenProtected:  "Protected",
	TokenPosition:   "Position",
	TokenWeight:     "Weight",
	TokenFormat:     "Format",
	TokenWidth:      "Width",
	TokenSpan:       "Span",
	TokenRefersTo:   "RefersTo",
}

// Tokens is the shared token table for xls-xml documents.
var Tokens = func() *sax.MapTokenTable {
	byName := make(map[string]int, len(tokenNames))
	for id, name := range tokenNames {
		byName[name] = id
	}
	return sax.NewMapTokenTable(byName)
}()
