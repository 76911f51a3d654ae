package spreadsheet

// Styles is the workbook's style-record table: fonts, fills, borders,
// cell protection, number formats, cell formats (xf), and named cell
// styles. Each Start* method returns a non-owning handle valid until
// its own Commit call; the returned id is what later records (an xf's
// font/fill/border references, a cell's xf reference) carry.
type Styles interface {
	StartFontStyle() FontStyle
	StartFillStyle() FillStyle
	StartBorderStyle() BorderStyle
	StartCellProtection() CellProtection
	StartNumberFormat() NumberFormat
	StartXf(category XfCategory) Xf
	StartCellStyle() CellStyle
}

type FontStyle interface {
	SetName(name string)
	SetSize(points float64)
	SetBold(value bool)
	SetItalic(value bool)
	SetUnderline(value bool)
	SetStrikethrough(value bool)
	SetColor(color Color)
	Commit() int
}

type FillStyle interface {
	SetPatternType(pattern PatternType)
	SetForegroundColor(color Color)
	SetBackgroundColor(color Color)
	Commit() int
}

type BorderStyle interface {
	SetStyle(dir BorderDirection, style BorderLineStyle)
	SetColor(dir BorderDirection, color Color)
	SetWidth(dir BorderDirection, width float64)
	Commit() int
}

type CellProtection interface {
	SetLocked(value bool)
	SetHidden(value bool)
	SetFormulaHidden(value bool)
	SetPrintContent(value bool)
	Commit() int
}

type NumberFormat interface {
	SetIdentifier(id int)
	SetCode(code []byte)
	Commit() int
}

// Xf is a cell format record: the combination of font/fill/border/
// number-format/protection ids plus alignment flags that a cell, a
// column, a row, or a named cell style references by the id Commit
// returns. StyleXf links a cell-category xf back to the cell-style
// category xf it inherits from, implementing the named-style
// inheritance spec.md §4.10 describes.
type Xf interface {
	SetFont(id int)
	SetFill(id int)
	SetBorder(id int)
	SetProtection(id int)
	SetNumberFormat(id int)
	SetStyleXf(id int)
	SetHorizontalAlignment(align HorizontalAlignment)
	SetVerticalAlignment(align VerticalAlignment)
	SetWrapText(value bool)
	SetShrinkToFit(value bool)
	SetApplyAlignment(value bool)
	Commit() int
}

// CellStyle is a named cell style (xlsx "cell style" / ODS
// "style:family=table-cell"), linking a textual style name to the xf
// record it applies.
type CellStyle interface {
	SetName(name string)
	SetDisplayName(name string)
	SetXf(id int)
	SetParentName(name string)
	SetBuiltin(id int)
	Commit()
}
