package spreadsheet

// Sheet is one worksheet's cell-data and metadata sink. Row/column
// indices are zero-based throughout.
type Sheet interface {
	SetValue(row, col int, value float64)
	SetBool(row, col int, value bool)
	SetString(row, col int, stringID int)
	SetDateTime(row, col int, year, month, day, hour, minute, second int)
	SetAuto(row, col int, text []byte)

	SetFormat(row, col int, xfID int)
	SetFormatRange(rng Range, xfID int)
	SetColumnFormat(col, span, xfID int)
	SetRowFormat(row, xfID int)

	// FillDownCells repeats the value and format already set at
	// (row, col) into the n cells below it, the "fill handle" /
	// repeated-cell compression some formats use for dense columns.
	FillDownCells(row, col, n int)

	GetSheetSize() (rows, columns int)

	GetSheetProperties() SheetProperties
	GetSheetView() SheetView
	NamedExpression() NamedExpression

	GetFormula() Formula
	GetArrayFormula() ArrayFormula
	GetConditionalFormat() ConditionalFormat
	StartAutoFilter(rng Range) AutoFilter
	StartTable() Table
}

// SheetProperties carries per-sheet display/behavior flags: visibility,
// tab color, default row height, and the row/column counts a format
// may declare up front.
type SheetProperties interface {
	SetHidden(value bool)
	SetTabColor(color Color)
	SetDefaultRowHeight(points float64)
	SetDefaultColumnWidth(chars float64)
}

// SheetView carries the frozen/split pane layout and the per-pane
// active cell/selection a format's sheetView (xlsx) or
// table:database-range/config-item (ODS) block describes.
type SheetView interface {
	SetFrozen(rows, columns int)
	SetSplit(xPixels, yPixels float64)
	SetActivePane(pane PaneKind)
	SetPaneSelection(pane PaneKind, active CellRef, selected Range)
}

// PaneKind names one of the up to four panes a frozen/split sheet view
// can have.
type PaneKind int

const (
	PaneTopLeft PaneKind = iota
	PaneTopRight
	PaneBottomLeft
	PaneBottomRight
)

// Table is a structured table region (xlsx worksheet table /
// ODS database range), distinct from an ad hoc auto-filter.
type Table interface {
	SetName(name string)
	SetRange(rng Range)
	SetTotalsRowShown(value bool)
	SetColumnName(index int, name string)
	Commit()
}
