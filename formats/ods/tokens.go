// Package ods implements the ODF spreadsheet (.ods) format handler: a
// content.xml table/row/cell walk plus a styles.xml/automatic-styles
// walk shared through formats/odfstyles, driving a
// spreadsheet.ImportFactory the same way formats/xlsx and
// formats/xlsxml do for their own container formats.
package ods

import (
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/sax"
)

const (
	TokenUnknown = sax.UnknownToken

	// tokenBase keeps this package's own element/attribute ids clear of
	// odfstyles.Tokens' range, since a single content.xml parse walks
	// both vocabularies through one shared TokenTable.
	tokenBase = 1000
)

const (
	TokenDocumentContent = tokenBase + iota
	TokenDocumentStyles
	TokenBody
	TokenSpreadsheet
	TokenTable
	TokenTableColumn
	TokenTableRow
	TokenTableCell
	TokenCoveredTableCell
	TokenAutomaticStyles
	TokenOfficeStyles
	TokenNamedExpressions
	TokenNamedRange
	TokenDatabaseRanges
	TokenDatabaseRange

	TokenNumberStyle
	TokenCurrencyStyle
	TokenPercentageStyle
	TokenDateStyle
	TokenTimeStyle
	TokenBooleanStyle
	TokenTextStyle
	TokenNumber
	TokenScientificNumber
	TokenFraction
	TokenCurrencySymbol
	TokenNumberText
	TokenDay
	TokenMonth
	TokenYear
	TokenHours
	TokenMinutes
	TokenSeconds
	TokenAmPm
	TokenBoolean
	TokenStyleMap

	TokenParagraph

	// attributes
	TokenStyleName
	TokenNumberColumnsRepeated
	TokenNumberRowsRepeated
	TokenValueType
	TokenValue
	TokenDateValue
	TokenBooleanValue
	TokenStringValue
	TokenFormula
	TokenCondition
	TokenApplyStyleName
	TokenCellRangeAddress
	TokenTargetRangeAddress
	TokenDecimalPlaces
	TokenMinIntegerDigits
	TokenGrouping

	TokenCount // sentinel: one past the last locally defined token id (tokenBase + count), not a real name
)

var tokenNames = map[int]string{
	TokenDocumentContent:  "document-content",
	TokenDocumentStyles:   "document-styles",
	TokenBody:             "body",
	TokenSpreadsheet:      "spreadsheet",
	TokenTable:            "table",
	TokenTableColumn:      "table-column",
	TokenTableRow:         "table-row",
	TokenTableCell:        "table-cell",
	TokenCoveredTableCell: "covered-table-cell",
	TokenAutomaticStyles:  "automatic-styles",
	TokenOfficeStyles:     "styles",
	TokenNamedExpressions: "named-expressions",
	TokenNamedRange:       "named-range",
	TokenDatabaseRanges:   "database-ranges",
	TokenDatabaseRange:    "database-range",

	TokenNumberStyle:      "number-style",
	TokenCurrencyStyle:    "currency-style",
	TokenPercentageStyle:  "percentage-style",
	TokenDateStyle:        "date-style",
	TokenTimeStyle:        "time-style",
	TokenBooleanStyle:     "boolean-style",
	TokenTextStyle:        "text-style",
	TokenNumber:           "number",
	TokenScientificNumber: "scientific-number",
	TokenFraction:         "fraction",
	TokenCurrencySymbol:   "currency-symbol",
	TokenNumberText:       "text",
	TokenDay:              "day",
	TokenMonth:            "month",
	TokenYear:             "year",
	TokenHours:            "hours",
	TokenMinutes:          "minutes",
	TokenSeconds:          "seconds",
	TokenAmPm:             "am-pm",
	TokenBoolean:          "boolean",
	TokenStyleMap:         "map",

	TokenParagraph: "p",

	TokenStyleName:             "style-name",
	TokenNumberColumnsRepeated: "number-columns-repeated",
	TokenNumberRowsRepeated:    "number-rows-repeated",
	TokenValueType:             "value-type",
	TokenValue:                 "value",
	TokenDateValue:             "date-value",
	TokenBooleanValue:          "boolean-value",
	TokenStringValue:           "string-value",
	TokenFormula:               "formula",
	TokenCondition:             "condition",
	TokenApplyStyleName:        "apply-style-name",
	TokenCellRangeAddress:      "cell-range-address",
	TokenTargetRangeAddress:    "target-range-address",
	TokenDecimalPlaces:         "decimal-places",
	TokenMinIntegerDigits:      "min-integer-digits",
	TokenGrouping:              "grouping",
}

// Tokens is the shared token table for ODS content.xml/styles.xml
// documents: odfstyles' style vocabulary ids are carried over
// unchanged (so its own Context, which compares against its own
// package-level constants, keeps working against this table) and
// extended with this package's table/row/cell/number-format ids.
var Tokens = func() *sax.MapTokenTable {
	byName := make(map[string]int, len(tokenNames)+64)
	for id, name := range odfstyles.NameTable() {
		byName[name] = id
	}
	for id, name := range tokenNames {
		byName[name] = id
	}
	return sax.NewMapTokenTable(byName)
}()
