// Package xlsx implements the OOXML (.xlsx) format handler: zip package
// navigation plus relationship resolution (workbook.xml, styles.xml,
// sharedStrings.xml, one sheetN.xml per sheet, pivot cache parts) each
// driving a spreadsheet.ImportFactory through the shared sax/ctxstack
// machinery.
package xlsx

import "github.com/dhamidi/orcus-go/sax"

// PredefinedNamespaces is the SpreadsheetML main namespace plus the
// relationships namespace used inside _rels/*.rels parts.
var PredefinedNamespaces = []string{
	"http://schemas.openxmlformats.org/spreadsheetml/2006/main",
	"http://schemas.openxmlformats.org/package/2006/relationships",
}

// Token values are assigned per local name, shared between element and
// attribute roles: OOXML reuses local names like "t"/"s"/"r" for both
// an element and an unrelated attribute, but elements are looked up
// among a node's children (ctxstack.Name.Token) while attributes are
// looked up within that node's own attribute slice (attrString et al),
// so the two roles never collide in practice even sharing one id.
const (
	TokenUnknown = sax.UnknownToken

	TokenWorkbook = iota
	TokenSheets
	TokenSheet
	TokenDefinedNames
	TokenDefinedName
	TokenStyleSheet
	TokenWorksheet

	TokenSST
	TokenSI
	TokenT
	TokenR
	TokenRPr

	TokenNumFmts
	TokenNumFmt
	TokenFonts
	TokenFont
	TokenB
	TokenI
	TokenSz
	TokenName
	TokenColor
	TokenFills
	TokenFill
	TokenPatternFill
	TokenFgColor
	TokenBgColor
	TokenBorders
	TokenBorder
	TokenLeft
	TokenRight
	TokenTop
	TokenBottom
	TokenDiagonal
	TokenCellStyleXfs
	TokenCellXfs
	TokenXf
	TokenAlignment
	TokenProtection
	TokenCellStyles
	TokenCellStyle

	TokenSheetData
	TokenRow
	TokenC
	TokenV
	TokenF
	TokenIs

	TokenPivotCacheDefinition
	TokenCacheSource
	TokenWorksheetSource
	TokenCacheFields
	TokenCacheField
	TokenSharedItems
	TokenS
	TokenN
	TokenD
	TokenE
	TokenFieldGroup
	TokenRangePr

	TokenRelationships
	TokenRelationship

	// attribute-only local names (no colliding element in this vocabulary)
	TokenID
	TokenSheetID
	TokenType
	TokenTarget
	TokenFormatCode
	TokenNumFmtID
	TokenRgb
	TokenIndexed
	TokenTheme
	TokenPatternType
	TokenFontID
	TokenFillID
	TokenBorderID
	TokenXfID
	TokenApplyFont
	TokenApplyFill
	TokenApplyBorder
	TokenApplyNumberFormat
	TokenApplyAlignment
	TokenHorizontal
	TokenVertical
	TokenWrapText
	TokenLocked
	TokenHidden
	TokenBuiltinID
	TokenRef
	TokenShared
	TokenBase
	TokenVal
	TokenStyleAttr
	TokenUnusedAttr
	TokenContainsNumber
	TokenContainsString
	TokenContainsBlank
	TokenContainsDate
	TokenMinValue
	TokenMaxValue
	TokenGroupBy
	TokenStartNum
	TokenEndNum
	TokenGroupInterval
	TokenStartDate
	TokenEndDate
	TokenAutoStart
	TokenAutoEnd
	TokenCountAttr
	TokenCount // sentinel: one past the last token id, not a real local name
)

var tokenNames = map[int]string{
	TokenWorkbook:     "workbook",
	TokenSheets:       "sheets",
	TokenSheet:        "sheet",
	TokenDefinedNames: "definedNames",
	TokenDefinedName:  "definedName",
	TokenStyleSheet:   "styleSheet",
	TokenWorksheet:    "worksheet",

	TokenSST: "sst",
	TokenSI:  "si",
	TokenT:   "t",
	TokenR:   "r",
	TokenRPr: "rPr",

	TokenNumFmts:      "numFmts",
	TokenNumFmt:       "numFmt",
	TokenFonts:        "fonts",
	TokenFont:         "font",
	TokenB:            "b",
	TokenI:            "i",
	TokenSz:           "sz",
	TokenName:         "name",
	TokenColor:        "color",
	TokenFills:        "fills",
	TokenFill:         "fill",
	TokenPatternFill:  "patternFill",
	TokenFgColor:      "fgColor",
	TokenBgColor:      "bgColor",
	TokenBorders:      "borders",
	TokenBorder:       "border",
	TokenLeft:         "left",
	TokenRight:        "right",
	TokenTop:          "top",
	TokenBottom:       "bottom",
	TokenDiagonal:     "diagonal",
	TokenCellStyleXfs: "cellStyleXfs",
	TokenCellXfs:      "cellXfs",
	TokenXf:           "xf",
	TokenAlignment:    "alignment",
	TokenProtection:   "protection",
	TokenCellStyles:   "cellStyles",
	TokenCellStyle:    "cellStyle",

	TokenSheetData: "sheetData",
	TokenRow:       "row",
	TokenC:         "c",
	TokenV:         "v",
	TokenF:         "f",
	TokenIs:        "is",

	TokenPivotCacheDefinition: "pivotCacheDefinition",
	TokenCacheSource:          "cacheSource",
	TokenWorksheetSource:      "worksheetSource",
	TokenCacheFields:          "cacheFields",
	TokenCacheField:           "cacheField",
	TokenSharedItems:          "sharedItems",
	TokenS:                    "s",
	TokenN:                    "n",
	TokenD:                    "d",
	TokenE:                    "e",
	TokenFieldGroup:           "fieldGroup",
	TokenRangePr:              "rangePr",

	TokenRelationships: "Relationships",
	TokenRelationship:  "Relationship",

	TokenID:               "id",
	TokenSheetID:          "sheetId",
	TokenType:             "Type",
	TokenTarget:           "Target",
	TokenFormatCode:       "formatCode",
	TokenNumFmtID:         "numFmtId",
	TokenRgb:              "rgb",
	TokenIndexed:          "indexed",
	TokenTheme:            "theme",
	TokenPatternType:      "patternType",
	TokenFontID:           "fontId",
	TokenFillID:           "fillId",
	TokenBorderID:         "borderId",
	TokenXfID:             "xfId",
	TokenApplyFont:        "applyFont",
	TokenApplyFill:        "applyFill",
	TokenApplyBorder:      "applyBorder",
	TokenApplyNumberFormat: "applyNumberFormat",
	TokenApplyAlignment:   "applyAlignment",
	TokenHorizontal:       "horizontal",
	TokenVertical:         "vertical",
	TokenWrapText:         "wrapText",
	TokenLocked:           "locked",
	TokenHidden:           "hidden",
	TokenBuiltinID:        "builtinId",
	TokenRef:              "ref",
	TokenShared:           "shared",
	TokenBase:             "base",
	TokenVal:              "val",
	TokenStyleAttr:        "style",
	TokenUnusedAttr:       "u",
	TokenContainsNumber:   "containsNumber",
	TokenContainsString:   "containsString",
	TokenContainsBlank:    "containsBlank",
	TokenContainsDate:     "containsDate",
	TokenMinValue:         "minValue",
	TokenMaxValue:         "maxValue",
	TokenGroupBy:          "groupBy",
	TokenStartNum:         "startNum",
	TokenEndNum:           "endNum",
	TokenGroupInterval:    "groupInterval",
	TokenStartDate:        "startDate",
	TokenEndDate:          "endDate",
	TokenAutoStart:        "autoStart",
	TokenAutoEnd:          "autoEnd",
	TokenCountAttr:        "count",
}

// Tokens is the shared element+attribute token table for xlsx parts.
var Tokens = func() *sax.MapTokenTable {
	byName := make(map[string]int, len(tokenNames))
	for id, name := range tokenNames {
		byName[name] = id
	}
	return sax.NewMapTokenTable(byName)
}()
