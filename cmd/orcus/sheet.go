package main

import "github.com/dhamidi/orcus-go/spreadsheet"

type cellKey struct{ row, col int }

// recordedCell is one cell's final resolved contents, resolved enough
// for rendering: a shared string id is carried through to render time
// rather than eagerly resolved against recordingFactory.shared, so a
// malformed/missing reference just renders as an empty string instead
// of panicking.
type recordedCell struct {
	Kind     string // "number","bool","string","datetime","auto","formula","array-formula","error"
	Number   float64
	Bool     bool
	StringID int
	Text     string
	Formula  string
}

type recordedSheet struct {
	factory *recordingFactory
	name    string
	index   int
	cells   map[cellKey]*recordedCell

	rows, cols int

	namedExprs []namedExprRecord
}

func (s *recordedSheet) cell(row, col int) *recordedCell {
	k := cellKey{row, col}
	c, ok := s.cells[k]
	if !ok {
		c = &recordedCell{}
		s.cells[k] = c
	}
	if row+1 > s.rows {
		s.rows = row + 1
	}
	if col+1 > s.cols {
		s.cols = col + 1
	}
	return c
}

func (s *recordedSheet) SetValue(row, col int, value float64) {
	c := s.cell(row, col)
	c.Kind, c.Number = "number", value
}

func (s *recordedSheet) SetBool(row, col int, value bool) {
	c := s.cell(row, col)
	c.Kind, c.Bool = "bool", value
}

func (s *recordedSheet) SetString(row, col int, stringID int) {
	c := s.cell(row, col)
	c.Kind, c.StringID = "string", stringID
}

func (s *recordedSheet) SetDateTime(row, col int, year, month, day, hour, minute, second int) {
	c := s.cell(row, col)
	c.Kind = "datetime"
	c.Text = formatDateTime(year, month, day, hour, minute, second)
}

func (s *recordedSheet) SetAuto(row, col int, text []byte) {
	c := s.cell(row, col)
	c.Kind, c.Text = "auto", string(text)
}

func (s *recordedSheet) SetFormat(int, int, int)            {}
func (s *recordedSheet) SetFormatRange(spreadsheet.Range, int) {}
func (s *recordedSheet) SetColumnFormat(int, int, int)       {}
func (s *recordedSheet) SetRowFormat(int, int)               {}

// FillDownCells repeats (row, col)'s already-set contents into the n
// cells below it (the "fill handle" shorthand); no format handler in
// this module calls it.
func (s *recordedSheet) FillDownCells(row, col, n int) {
	src, ok := s.cells[cellKey{row, col}]
	if !ok {
		return
	}
	copy := *src
	for i := 1; i <= n; i++ {
		s.cells[cellKey{row + i, col}] = &copy
		if row+i+1 > s.rows {
			s.rows = row + i + 1
		}
	}
}

func (s *recordedSheet) GetSheetSize() (rows, columns int) { return s.rows, s.cols }

func (s *recordedSheet) GetSheetProperties() spreadsheet.SheetProperties { return sheetProperties{} }
func (s *recordedSheet) GetSheetView() spreadsheet.SheetView             { return sheetView{} }

func (s *recordedSheet) NamedExpression() spreadsheet.NamedExpression { return &sheetNamedExpression{sheet: s} }

func (s *recordedSheet) GetFormula() spreadsheet.Formula               { return &formula{sheet: s} }
func (s *recordedSheet) GetArrayFormula() spreadsheet.ArrayFormula     { return &arrayFormula{sheet: s} }
func (s *recordedSheet) GetConditionalFormat() spreadsheet.ConditionalFormat {
	return &conditionalFormat{}
}
func (s *recordedSheet) StartAutoFilter(spreadsheet.Range) spreadsheet.AutoFilter { return &autoFilter{} }
func (s *recordedSheet) StartTable() spreadsheet.Table                           { return &table{} }

// sheetProperties, sheetView: orcus dump/convert don't surface
// per-sheet display metadata, so these discard every setter; format
// handlers never nil-check Sheet.GetSheetProperties/GetSheetView so a
// working no-op is required here, not an optional nil.
type sheetProperties struct{}

func (sheetProperties) SetHidden(bool)            {}
func (sheetProperties) SetTabColor(spreadsheet.Color) {}
func (sheetProperties) SetDefaultRowHeight(float64)   {}
func (sheetProperties) SetDefaultColumnWidth(float64) {}

type sheetView struct{}

func (sheetView) SetFrozen(int, int)                                                      {}
func (sheetView) SetSplit(float64, float64)                                                {}
func (sheetView) SetActivePane(spreadsheet.PaneKind)                                       {}
func (sheetView) SetPaneSelection(spreadsheet.PaneKind, spreadsheet.CellRef, spreadsheet.Range) {}

type sheetNamedExpression struct{ sheet *recordedSheet }

func (n *sheetNamedExpression) SetNamedRange(name, sheetName string, rng spreadsheet.Range) {
	n.sheet.namedExprs = append(n.sheet.namedExprs, namedExprRecord{Name: name, Sheet: sheetName, HasRange: true, Range: rng})
}

func (n *sheetNamedExpression) SetNamedExpression(name string, _ spreadsheet.FormulaGrammar, formula string) {
	n.sheet.namedExprs = append(n.sheet.namedExprs, namedExprRecord{Name: name, Formula: formula})
}

type formula struct {
	sheet           *recordedSheet
	row, col        int
	text            string
	sharedIdx       int
	hasSharedIdx    bool
}

func (f *formula) SetPosition(row, col int) { f.row, f.col = row, col }
func (f *formula) SetFormula(_ spreadsheet.FormulaGrammar, text []byte) { f.text = string(text) }
func (f *formula) SetSharedFormulaIndex(index int) { f.sharedIdx, f.hasSharedIdx = index, true }
func (f *formula) SetResultValue(value float64) {
	c := f.sheet.cell(f.row, f.col)
	c.Kind, c.Number = "number", value
}
func (f *formula) SetResultString(stringID int) {
	c := f.sheet.cell(f.row, f.col)
	c.Kind, c.StringID = "string", stringID
}
func (f *formula) SetResultBool(value bool) {
	c := f.sheet.cell(f.row, f.col)
	c.Kind, c.Bool = "bool", value
}
func (f *formula) SetResultEmpty() {}
func (f *formula) SetResultError(code string) {
	c := f.sheet.cell(f.row, f.col)
	c.Kind, c.Text = "error", code
}
func (f *formula) Commit() {
	c := f.sheet.cell(f.row, f.col)
	c.Formula = f.text
	if c.Kind == "" {
		c.Kind = "formula"
	}
}

type arrayFormula struct {
	sheet *recordedSheet
	rng   spreadsheet.Range
	text  string
}

func (a *arrayFormula) SetRange(rng spreadsheet.Range)                       { a.rng = rng }
func (a *arrayFormula) SetFormula(_ spreadsheet.FormulaGrammar, text []byte) { a.text = string(text) }
func (a *arrayFormula) SetResultValue(row, col int, value float64) {
	c := a.sheet.cell(row, col)
	c.Kind, c.Number = "number", value
}
func (a *arrayFormula) SetResultString(row, col int, stringID int) {
	c := a.sheet.cell(row, col)
	c.Kind, c.StringID = "string", stringID
}
func (a *arrayFormula) SetResultBool(row, col int, value bool) {
	c := a.sheet.cell(row, col)
	c.Kind, c.Bool = "bool", value
}
func (a *arrayFormula) SetResultEmpty(row, col int) {}
func (a *arrayFormula) Commit() {
	c := a.sheet.cell(a.rng.FirstRow, a.rng.FirstCol)
	c.Formula = a.text
	if c.Kind == "" {
		c.Kind = "array-formula"
	}
}

// conditionalFormat, autoFilter, table: consumed and discarded. orcus
// dump/convert report cell values and defined names, not conditional
// styling or filter predicates; a future `orcus dump --rules` could
// surface these without changing the spreadsheet-side contract.
type conditionalFormat struct{}

func (conditionalFormat) SetRange(spreadsheet.Range) {}
func (conditionalFormat) StartRule(spreadsheet.ConditionalFormatRuleType) spreadsheet.ConditionalFormatRule {
	return conditionalFormatRule{}
}
func (conditionalFormat) Commit() {}

type conditionalFormatRule struct{}

func (conditionalFormatRule) SetPriority(int)                            {}
func (conditionalFormatRule) SetFormula(spreadsheet.FormulaGrammar, []byte) {}
func (conditionalFormatRule) SetOperator(spreadsheet.FilterOp)           {}
func (conditionalFormatRule) SetXf(int)                                  {}
func (conditionalFormatRule) SetTop10Rank(int, bool, bool)               {}
func (conditionalFormatRule) AppendColorScaleStop(float64, spreadsheet.Color) {}
func (conditionalFormatRule) SetDataBarColor(spreadsheet.Color)          {}
func (conditionalFormatRule) SetDataBarRange(float64, float64)          {}
func (conditionalFormatRule) Commit()                                    {}

type autoFilter struct{}

func (autoFilter) StartNode(spreadsheet.BooleanOp) spreadsheet.FilterNode     { return filterNode{} }
func (autoFilter) StartColumn(int, spreadsheet.BooleanOp) spreadsheet.FilterNode { return filterNode{} }
func (autoFilter) Commit() {}

type filterNode struct{}

func (filterNode) AppendNumericItem(int, spreadsheet.FilterOp, float64) {}
func (filterNode) AppendTextItem(int, spreadsheet.FilterOp, []byte)     {}
func (filterNode) StartNode(spreadsheet.BooleanOp) spreadsheet.FilterNode { return filterNode{} }
func (filterNode) Commit()                                              {}

type table struct{}

func (table) SetName(string)          {}
func (table) SetRange(spreadsheet.Range) {}
func (table) SetTotalsRowShown(bool)  {}
func (table) SetColumnName(int, string) {}
func (table) Commit()                 {}
