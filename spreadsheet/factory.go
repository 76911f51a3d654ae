package spreadsheet

// ImportFactory is the root of the consumer-owned object graph a
// format handler populates while walking one workbook. Every accessor
// may return nil; a handler must then skip the corresponding behavior.
type ImportFactory interface {
	GlobalSettings() GlobalSettings
	SharedStrings() SharedStrings
	Styles() Styles
	ReferenceResolver(ctx ResolverContext) ReferenceResolver

	AppendSheet(index int, name string) Sheet
	GetSheetByName(name string) Sheet
	GetSheetByIndex(index int) Sheet

	NamedExpression() NamedExpression

	// Finalize is called once after the whole document has been
	// parsed, after every sheet's handler has returned.
	Finalize()
}

// GlobalSettings carries workbook-wide configuration that isn't scoped
// to any one sheet: the date epoch a format's serial date values are
// relative to, and the source character set for formats that declare
// one explicitly (xls-xml's encoding attribute).
type GlobalSettings interface {
	SetOrigin(origin Date)
	SetCharacterSet(name string)
}

// ResolverContext distinguishes the grammar a ReferenceResolver should
// parse formula references and sheet-qualified ranges in; a workbook's
// defined names and each sheet's cell formulas may use a different
// grammar (e.g. xlsx default vs. R1C1).
type ResolverContext struct {
	Grammar    FormulaGrammar
	SheetName  string
	SheetIndex int
}

// ReferenceResolver turns a format's textual cell/range/sheet
// reference syntax into a Range plus the sheet(s) it spans. Formats
// that need no resolution (because they already hand over structured
// row/column pairs) simply have their factory return nil here.
type ReferenceResolver interface {
	ResolveRange(text string) (sheetName string, rng Range, ok bool)
	ResolveCell(text string) (sheetName string, ref CellRef, ok bool)
}

// NamedExpression collects workbook-scoped (or, via Sheet.NamedExpression,
// sheet-scoped) named ranges and named formulas. A sheet-scoped name
// shadows a workbook-scoped name of the same identifier for formulas
// evaluated on that sheet; resolving which one applies is the
// consumer's responsibility, not this interface's.
type NamedExpression interface {
	SetNamedRange(name string, sheetName string, rng Range)
	SetNamedExpression(name string, grammar FormulaGrammar, formula string)
}
