// Package spreadsheet defines the abstract consumer contract that
// per-format import handlers (formats/xlsx, formats/ods, ...) drive as
// they walk a document. Every type here is a behavioral contract: the
// package holds no parsing logic of its own, only the shapes a format
// handler publishes cell data, styles, and formulas through.
//
// Every get_*/start_* method may be satisfied by a nil return value —
// ordinary Go nil-interface semantics already give format handlers the
// "consumer declined this record, skip silently" behavior without any
// wrapper type; a handler that receives a nil Sheet (for example) just
// skips the rest of that sheet's cell calls.
package spreadsheet

// Color is an ARGB color value; A is typically 0xFF for a fully opaque
// color and 0x00 when the format leaves alpha unspecified.
type Color struct {
	A, R, G, B byte
}

// CellRef addresses a single cell by zero-based row and column.
type CellRef struct {
	Row, Col int
}

// Range is an inclusive rectangular cell range.
type Range struct {
	FirstRow, FirstCol int
	LastRow, LastCol   int
}

// Date is a calendar date/time tuple as encountered in cell values and
// pivot cache range-grouping bounds; Hour/Minute/Second are zero for a
// bare date.
type Date struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// FormulaGrammar names the dialect a formula string is written in.
type FormulaGrammar int

const (
	GrammarUnknown FormulaGrammar = iota
	GrammarExcelA1
	GrammarExcelR1C1
	GrammarXlsXML
	GrammarODFF
	GrammarGnumeric
)

// PatternType is a fill-style pattern, named after the xlsx/ODS shared
// vocabulary (solid, gradients, and the various hatchings).
type PatternType int

const (
	PatternNone PatternType = iota
	PatternSolid
	PatternGray125
	PatternDarkGray
	PatternLightGray
	PatternDarkHorizontal
	PatternDarkVertical
	PatternDarkDown
	PatternDarkUp
	PatternDarkGrid
	PatternDarkTrellis
	PatternLightHorizontal
	PatternLightVertical
	PatternLightDown
	PatternLightUp
	PatternLightGrid
	PatternLightTrellis
)

// BorderDirection is one edge (or diagonal) of a cell border.
type BorderDirection int

const (
	BorderTop BorderDirection = iota
	BorderBottom
	BorderLeft
	BorderRight
	BorderDiagonal
)

// BorderLineStyle is the visual style of one border edge.
type BorderLineStyle int

const (
	BorderStyleNone BorderLineStyle = iota
	BorderStyleThin
	BorderStyleMedium
	BorderStyleThick
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHair
)

// HorizontalAlignment is a cell's horizontal text alignment.
type HorizontalAlignment int

const (
	HAlignDefault HorizontalAlignment = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignFill
	HAlignJustify
	HAlignCenterAcrossSelection
	HAlignDistributed
)

// VerticalAlignment is a cell's vertical text alignment.
type VerticalAlignment int

const (
	VAlignDefault VerticalAlignment = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
	VAlignJustify
	VAlignDistributed
)

// XfCategory is the record category an xf (cell format) record
// belongs to: an ordinary cell format, a named cell style's format, or
// a conditional-format differential format.
type XfCategory int

const (
	XfCategoryCell XfCategory = iota
	XfCategoryCellStyle
	XfCategoryDifferential
)
