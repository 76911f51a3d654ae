package odfstyles

import "github.com/dhamidi/orcus-go/sax"

const (
	TokenUnknown = sax.UnknownToken

	TokenStyle = iota
	TokenTableCellProperties
	TokenTableColumnProperties
	TokenTableRowProperties
	TokenTextProperties
	TokenParagraphProperties
	TokenGraphicProperties

	TokenName
	TokenFamily
	TokenParentStyleName
	TokenDataStyleName
	TokenMasterPageName

	TokenBackgroundColor
	TokenBorder
	TokenBorderTop
	TokenBorderBottom
	TokenBorderLeft
	TokenBorderRight
	TokenColumnWidth
	TokenRowHeight

	TokenFontName
	TokenFontSize
	TokenFontWeight
	TokenFontStyle
	TokenTextUnderlineStyle
	TokenColor

	TokenTextAlign
	TokenVerticalAlign
	TokenWrapOption
)

var tokenNames = map[int]string{
	TokenStyle:                 "style",
	TokenTableCellProperties:   "table-cell-properties",
	TokenTableColumnProperties: "table-column-properties",
	TokenTableRowProperties:    "table-row-properties",
	TokenTextProperties:        "text-properties",
	TokenParagraphProperties:   "paragraph-properties",
	TokenGraphicProperties:     "graphic-properties",

	TokenName:             "name",
	TokenFamily:            "family",
	TokenParentStyleName:   "parent-style-name",
	TokenDataStyleName:     "data-style-name",
	TokenMasterPageName:    "master-page-name",

	TokenBackgroundColor: "background-color",
	TokenBorder:          "border",
	TokenBorderTop:       "border-top",
	TokenBorderBottom:    "border-bottom",
	TokenBorderLeft:      "border-left",
	TokenBorderRight:     "border-right",
	TokenColumnWidth:     "column-width",
	TokenRowHeight:       "row-height",

	TokenFontName:           "font-name",
	TokenFontSize:           "font-size",
	TokenFontWeight:         "font-weight",
	TokenFontStyle:          "font-style",
	TokenTextUnderlineStyle: "text-underline-style",
	TokenColor:              "color",

	TokenTextAlign:     "text-align",
	TokenVerticalAlign: "vertical-align",
	TokenWrapOption:    "wrap-option",
}

// NameTable exposes this package's id->name mapping so a host format
// (formats/ods) can fold these exact ids into its own larger token
// table instead of building a second, incompatible one.
func NameTable() map[int]string {
	return tokenNames
}

// Tokens is the shared token table for the <style:style> vocabulary
// and its fo:/style: property attributes; ods and any future ODF
// format handler share one table since both parse the same elements.
var Tokens = func() *sax.MapTokenTable {
	byName := make(map[string]int, len(tokenNames))
	for id, name := range tokenNames {
		byName[name] = id
	}
	return sax.NewMapTokenTable(byName)
}()
