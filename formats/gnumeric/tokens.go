// Package gnumeric implements the Gnumeric XML (.gnumeric) format
// handler: a Workbook/Sheets/Sheet walk with per-sheet Cells/Cols/Rows/
// MergedRegions/Filters/Names/Styles children, driving a
// spreadsheet.ImportFactory the same way formats/xlsxml and
// formats/ods do for their own container formats. Gnumeric's own file
// is plain XML, gzip-compressed by convention; Import transparently
// decompresses when the gzip magic bytes are present.
package gnumeric

import "github.com/dhamidi/orcus-go/sax"

const TokenUnknown = sax.UnknownToken

const (
	TokenWorkbook = iota
	TokenSheets
	TokenSheet
	TokenName
	TokenMaxCol
	TokenMaxRow

	TokenCells
	TokenCell

	TokenCols
	TokenColInfo
	TokenRows
	TokenRowInfo

	TokenMergedRegions
	TokenMerge

	TokenFilters
	TokenFilter
	TokenField

	TokenNames
	TokenNameLower
	TokenValue
	TokenPosition

	TokenStyles
	TokenStyleRegion
	TokenStyle
	TokenFont

	TokenCondition
	TokenExpression0
	TokenExpression1

	TokenSelections
	TokenSelection
	TokenSheetLayout

	// Cell attributes. Rows/Cols are the same tokens as the sheet-level
	// wrapper elements above (TokenRows/TokenCols): one shared token per
	// local name, disambiguated by which element's attribute list it
	// appears in, not by a separate id space.
	TokenRow
	TokenCol
	TokenValueType
	TokenExprID

	// StyleRegion/style/font attributes.
	TokenStartCol
	TokenStartRow
	TokenEndCol
	TokenEndRow
	TokenFore
	TokenBack
	TokenHidden
	TokenLocked
	TokenFormat
	TokenHAlign
	TokenVAlign
	TokenWrapText
	TokenUnit
	TokenBold
	TokenItalic
	TokenUnderline
	TokenOperator

	// ColInfo/RowInfo attributes.
	TokenNo
	TokenCount

	// Filter attributes.
	TokenArea
	TokenIndex
	TokenType
	TokenOp0
	TokenValue0
	TokenValueType0

)

var tokenNames = map[int]string{
	TokenWorkbook: "Workbook",
	TokenSheets:   "Sheets",
	TokenSheet:    "Sheet",
	TokenName:     "Name",
	TokenMaxCol:   "MaxCol",
	TokenMaxRow:   "MaxRow",

	TokenCells: "Cells",
	TokenCell:  "Cell",

	TokenCols:    "Cols",
	TokenColInfo: "ColInfo",
	TokenRows:    "Rows",
	TokenRowInfo: "RowInfo",

	TokenMergedRegions: "MergedRegions",
	TokenMerge:         "Merge",

	TokenFilters: "Filters",
	TokenFilter:  "Filter",
	TokenField:   "Field",

	TokenNames:      "Names",
	TokenNameLower:  "name",
	TokenValue:      "value",
	TokenPosition:   "position",

	TokenStyles:      "Styles",
	TokenStyleRegion: "StyleRegion",
	TokenStyle:       "Style",
	TokenFont:        "Font",

	TokenCondition:   "Condition",
	TokenExpression0: "Expression0",
	TokenExpression1: "Expression1",

	TokenSelections:  "Selections",
	TokenSelection:   "Selection",
	TokenSheetLayout: "SheetLayout",

	TokenRow:       "Row",
	TokenCol:       "Col",
	TokenValueType: "ValueType",
	TokenExprID:    "ExprID",

	TokenStartCol: "startCol",
	TokenStartRow: "startRow",
	TokenEndCol:   "endCol",
	TokenEndRow:   "endRow",
	TokenFore:     "Fore",
	TokenBack:     "Back",
	TokenHidden:   "Hidden",
	TokenLocked:   "Locked",
	TokenFormat:   "Format",
	TokenHAlign:   "HAlign",
	TokenVAlign:   "VAlign",
	TokenWrapText: "WrapText",
	TokenUnit:     "Unit",
	TokenBold:     "Bold",
	TokenItalic:   "Italic",
	TokenUnderline: "Underline",
	TokenOperator:  "Operator",

	TokenNo:    "No",
	TokenCount: "Count",

	TokenArea:       "Area",
	TokenIndex:      "Index",
	TokenType:       "Type",
	TokenOp0:        "Op0",
	TokenValue0:     "Value0",
	TokenValueType0: "ValueType0",
}

// Tokens is the token table for Gnumeric's single-namespace XML
// vocabulary ("gnm:" in the real file, resolved to local names only
// the way every format handler in this module dispatches).
var Tokens = sax.NewMapTokenTable(func() map[string]int {
	byName := make(map[string]int, len(tokenNames))
	for id, name := range tokenNames {
		byName[name] = id
	}
	return byName
}())
