package gnumeric

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/spreadsheet"
)

// --- minimal recording fakes implementing just enough of the
// spreadsheet interfaces to observe what the handler publishes,
// following the same shape as formats/ods's own test fakes.

type fakeFactory struct {
	styles        *fakeStyles
	sharedStrings *fakeSharedStrings
	sheets        []*fakeSheet
	namedExpr     *fakeNamedExpression
	finalized     bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		styles:        &fakeStyles{},
		sharedStrings: &fakeSharedStrings{},
		namedExpr:     &fakeNamedExpression{scope: "workbook"},
	}
}

func (f *fakeFactory) GlobalSettings() spreadsheet.GlobalSettings { return nil }
func (f *fakeFactory) SharedStrings() spreadsheet.SharedStrings   { return f.sharedStrings }
func (f *fakeFactory) Styles() spreadsheet.Styles                 { return f.styles }
func (f *fakeFactory) ReferenceResolver(spreadsheet.ResolverContext) spreadsheet.ReferenceResolver {
	return &fakeResolver{}
}
func (f *fakeFactory) AppendSheet(index int, name string) spreadsheet.Sheet {
	s := &fakeSheet{name: name}
	f.sheets = append(f.sheets, s)
	return s
}
func (f *fakeFactory) GetSheetByName(name string) spreadsheet.Sheet {
	for _, s := range f.sheets {
		if s.name == name {
			return s
		}
	}
	return nil
}
func (f *fakeFactory) GetSheetByIndex(index int) spreadsheet.Sheet {
	if index < 0 || index >= len(f.sheets) {
		return nil
	}
	return f.sheets[index]
}
func (f *fakeFactory) NamedExpression() spreadsheet.NamedExpression { return f.namedExpr }
func (f *fakeFactory) Finalize()                                    { f.finalized = true }

// fakeResolver parses plain "A1" / "A1:C3" references with no sheet
// qualifier, enough to exercise filter/merge area resolution in tests.
type fakeResolver struct{}

func (r *fakeResolver) ResolveRange(text string) (string, spreadsheet.Range, bool) {
	parts := strings.SplitN(text, ":", 2)
	firstRow, firstCol, ok := parseA1(parts[0])
	if !ok {
		return "", spreadsheet.Range{}, false
	}
	if len(parts) == 1 {
		return "", spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: firstRow, LastCol: firstCol}, true
	}
	lastRow, lastCol, ok := parseA1(parts[1])
	if !ok {
		return "", spreadsheet.Range{}, false
	}
	return "", spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: lastRow, LastCol: lastCol}, true
}

func (r *fakeResolver) ResolveCell(text string) (string, spreadsheet.CellRef, bool) {
	row, col, ok := parseA1(text)
	if !ok {
		return "", spreadsheet.CellRef{}, false
	}
	return "", spreadsheet.CellRef{Row: row, Col: col}, true
}

func parseA1(s string) (row, col int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, 0, false
	}
	return n - 1, col - 1, true
}

type fakeNamedRange struct {
	name, sheetName string
	rng             spreadsheet.Range
}

type fakeNamedExprEntry struct {
	name, formula string
	grammar       spreadsheet.FormulaGrammar
}

type fakeNamedExpression struct {
	scope       string
	ranges      []fakeNamedRange
	expressions []fakeNamedExprEntry
}

func (n *fakeNamedExpression) SetNamedRange(name, sheetName string, rng spreadsheet.Range) {
	n.ranges = append(n.ranges, fakeNamedRange{name: name, sheetName: sheetName, rng: rng})
}
func (n *fakeNamedExpression) SetNamedExpression(name string, grammar spreadsheet.FormulaGrammar, formula string) {
	n.expressions = append(n.expressions, fakeNamedExprEntry{name: name, grammar: grammar, formula: formula})
}

type fakeSharedStrings struct{ entries []string }

func (s *fakeSharedStrings) Add(text []byte) int {
	s.entries = append(s.entries, string(text))
	return len(s.entries) - 1
}
func (s *fakeSharedStrings) Append(text []byte) int { return s.Add(text) }
func (s *fakeSharedStrings) StartSegment() spreadsheet.SegmentBuilder { return &fakeSegmentBuilder{} }

type fakeSegmentBuilder struct{}

func (b *fakeSegmentBuilder) SetBold(bool)                   {}
func (b *fakeSegmentBuilder) SetItalic(bool)                 {}
func (b *fakeSegmentBuilder) SetFontName(string)              {}
func (b *fakeSegmentBuilder) SetFontSize(float64)             {}
func (b *fakeSegmentBuilder) SetFontColor(spreadsheet.Color)  {}
func (b *fakeSegmentBuilder) AppendSegment([]byte)            {}
func (b *fakeSegmentBuilder) CommitSegments() int             { return 0 }

type fakeStyles struct {
	numberFormats []*fakeNumberFormat
	xfs           []*fakeXf
}

func (s *fakeStyles) StartFontStyle() spreadsheet.FontStyle           { return &fakeFontStyle{} }
func (s *fakeStyles) StartFillStyle() spreadsheet.FillStyle           { return &fakeFillStyle{} }
func (s *fakeStyles) StartBorderStyle() spreadsheet.BorderStyle       { return &fakeBorderStyle{} }
func (s *fakeStyles) StartCellProtection() spreadsheet.CellProtection { return &fakeCellProtection{} }
func (s *fakeStyles) StartNumberFormat() spreadsheet.NumberFormat {
	nf := &fakeNumberFormat{}
	s.numberFormats = append(s.numberFormats, nf)
	return nf
}
func (s *fakeStyles) StartXf(spreadsheet.XfCategory) spreadsheet.Xf {
	xf := &fakeXf{}
	s.xfs = append(s.xfs, xf)
	return xf
}
func (s *fakeStyles) StartCellStyle() spreadsheet.CellStyle { return &fakeCellStyle{} }

type fakeFontStyle struct {
	name       string
	size       float64
	bold       bool
	color      spreadsheet.Color
}

func (f *fakeFontStyle) SetName(name string)        { f.name = name }
func (f *fakeFontStyle) SetSize(v float64)          { f.size = v }
func (f *fakeFontStyle) SetBold(v bool)             { f.bold = v }
func (f *fakeFontStyle) SetItalic(bool)             {}
func (f *fakeFontStyle) SetUnderline(bool)          {}
func (f *fakeFontStyle) SetStrikethrough(bool)      {}
func (f *fakeFontStyle) SetColor(c spreadsheet.Color) { f.color = c }
func (f *fakeFontStyle) Commit() int                { return 1 }

type fakeFillStyle struct{ fg, bg spreadsheet.Color }

func (f *fakeFillStyle) SetPatternType(spreadsheet.PatternType) {}
func (f *fakeFillStyle) SetForegroundColor(c spreadsheet.Color) { f.fg = c }
func (f *fakeFillStyle) SetBackgroundColor(c spreadsheet.Color) { f.bg = c }
func (f *fakeFillStyle) Commit() int                            { return 2 }

type fakeBorderStyle struct{}

func (b *fakeBorderStyle) SetStyle(spreadsheet.BorderDirection, spreadsheet.BorderLineStyle) {}
func (b *fakeBorderStyle) SetColor(spreadsheet.BorderDirection, spreadsheet.Color)            {}
func (b *fakeBorderStyle) SetWidth(spreadsheet.BorderDirection, float64)                      {}
func (b *fakeBorderStyle) Commit() int                                                        { return 3 }

type fakeCellProtection struct{ locked, hidden bool }

func (p *fakeCellProtection) SetLocked(v bool)      { p.locked = v }
func (p *fakeCellProtection) SetHidden(v bool)      { p.hidden = v }
func (p *fakeCellProtection) SetFormulaHidden(bool) {}
func (p *fakeCellProtection) SetPrintContent(bool)  {}
func (p *fakeCellProtection) Commit() int           { return 4 }

type fakeNumberFormat struct{ code string }

func (n *fakeNumberFormat) SetIdentifier(int)   {}
func (n *fakeNumberFormat) SetCode(code []byte) { n.code = string(code) }
func (n *fakeNumberFormat) Commit() int         { return 5 }

type fakeXf struct {
	id                                           int
	font, fill, border, protection, numberFormat int
	horizontal                                   spreadsheet.HorizontalAlignment
	vertical                                     spreadsheet.VerticalAlignment
	wrapText, applyAlignment                     bool
}

var nextFakeXfID = 100

func (x *fakeXf) SetFont(id int)                                           { x.font = id }
func (x *fakeXf) SetFill(id int)                                           { x.fill = id }
func (x *fakeXf) SetBorder(id int)                                         { x.border = id }
func (x *fakeXf) SetProtection(id int)                                     { x.protection = id }
func (x *fakeXf) SetNumberFormat(id int)                                   { x.numberFormat = id }
func (x *fakeXf) SetStyleXf(int)                                           {}
func (x *fakeXf) SetHorizontalAlignment(a spreadsheet.HorizontalAlignment) { x.horizontal = a }
func (x *fakeXf) SetVerticalAlignment(a spreadsheet.VerticalAlignment)     { x.vertical = a }
func (x *fakeXf) SetWrapText(v bool)                                       { x.wrapText = v }
func (x *fakeXf) SetShrinkToFit(bool)                                      {}
func (x *fakeXf) SetApplyAlignment(v bool)                                 { x.applyAlignment = v }
func (x *fakeXf) Commit() int {
	nextFakeXfID++
	x.id = nextFakeXfID
	return x.id
}

type fakeCellStyle struct{}

func (c *fakeCellStyle) SetName(string)        {}
func (c *fakeCellStyle) SetDisplayName(string) {}
func (c *fakeCellStyle) SetXf(int)             {}
func (c *fakeCellStyle) SetParentName(string)  {}
func (c *fakeCellStyle) SetBuiltin(int)        {}
func (c *fakeCellStyle) Commit()               {}

type cellEvent struct {
	row, col int
	kind     string
	value    float64
	boolean  bool
	text     string
}

type fakeSheet struct {
	name         string
	events       []cellEvent
	formatRanges []spreadsheet.Range
	rangeXf      map[spreadsheet.Range]int
	formulas     []*fakeFormula
	arrayFormula *fakeArrayFormula
	namedExpr    *fakeNamedExpression
	condFormat   *fakeConditionalFormat
	autoFilter   *fakeAutoFilter
}

func (s *fakeSheet) SetValue(row, col int, value float64) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "value", value: value})
}
func (s *fakeSheet) SetBool(row, col int, value bool) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "bool", boolean: value})
}
func (s *fakeSheet) SetString(row, col int, stringID int) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "string", value: float64(stringID)})
}
func (s *fakeSheet) SetDateTime(row, col, year, month, day, hour, minute, second int) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "datetime"})
}
func (s *fakeSheet) SetAuto(row, col int, text []byte) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "auto", text: string(text)})
}
func (s *fakeSheet) SetFormat(row, col, xfID int) {}
func (s *fakeSheet) SetFormatRange(rng spreadsheet.Range, xfID int) {
	s.formatRanges = append(s.formatRanges, rng)
	if s.rangeXf == nil {
		s.rangeXf = make(map[spreadsheet.Range]int)
	}
	s.rangeXf[rng] = xfID
}
func (s *fakeSheet) SetColumnFormat(col, span, xfID int) {}
func (s *fakeSheet) SetRowFormat(row, xfID int)          {}
func (s *fakeSheet) FillDownCells(row, col, n int)       {}
func (s *fakeSheet) GetSheetSize() (int, int)            { return 0, 0 }
func (s *fakeSheet) GetSheetProperties() spreadsheet.SheetProperties { return nil }
func (s *fakeSheet) GetSheetView() spreadsheet.SheetView             { return nil }
func (s *fakeSheet) NamedExpression() spreadsheet.NamedExpression {
	if s.namedExpr == nil {
		s.namedExpr = &fakeNamedExpression{scope: "sheet:" + s.name}
	}
	return s.namedExpr
}
func (s *fakeSheet) GetFormula() spreadsheet.Formula {
	f := &fakeFormula{}
	s.formulas = append(s.formulas, f)
	return f
}
func (s *fakeSheet) GetArrayFormula() spreadsheet.ArrayFormula {
	s.arrayFormula = &fakeArrayFormula{}
	return s.arrayFormula
}
func (s *fakeSheet) GetConditionalFormat() spreadsheet.ConditionalFormat {
	s.condFormat = &fakeConditionalFormat{}
	return s.condFormat
}
func (s *fakeSheet) StartAutoFilter(rng spreadsheet.Range) spreadsheet.AutoFilter {
	s.autoFilter = &fakeAutoFilter{rng: rng}
	return s.autoFilter
}
func (s *fakeSheet) StartTable() spreadsheet.Table { return nil }

type fakeFormula struct {
	row, col          int
	grammar           spreadsheet.FormulaGrammar
	text              string
	sharedFormulaIdx  int
	committed         bool
}

func (f *fakeFormula) SetPosition(row, col int) { f.row, f.col = row, col }
func (f *fakeFormula) SetFormula(grammar spreadsheet.FormulaGrammar, text []byte) {
	f.grammar, f.text = grammar, string(text)
}
func (f *fakeFormula) SetSharedFormulaIndex(idx int) { f.sharedFormulaIdx = idx }
func (f *fakeFormula) SetResultValue(float64)        {}
func (f *fakeFormula) SetResultString(int)           {}
func (f *fakeFormula) SetResultBool(bool)            {}
func (f *fakeFormula) SetResultEmpty()               {}
func (f *fakeFormula) SetResultError(string)         {}
func (f *fakeFormula) Commit()                       { f.committed = true }

type fakeArrayFormula struct {
	rng       spreadsheet.Range
	grammar   spreadsheet.FormulaGrammar
	text      string
	committed bool
}

func (a *fakeArrayFormula) SetRange(rng spreadsheet.Range) { a.rng = rng }
func (a *fakeArrayFormula) SetFormula(grammar spreadsheet.FormulaGrammar, text []byte) {
	a.grammar, a.text = grammar, string(text)
}
func (a *fakeArrayFormula) SetResultValue(int, int, float64)  {}
func (a *fakeArrayFormula) SetResultString(int, int, int)     {}
func (a *fakeArrayFormula) SetResultBool(int, int, bool)      {}
func (a *fakeArrayFormula) SetResultEmpty(int, int)           {}
func (a *fakeArrayFormula) Commit()                           { a.committed = true }

type fakeConditionalFormat struct {
	rng       spreadsheet.Range
	rules     []*fakeConditionalFormatRule
	committed bool
}

func (c *fakeConditionalFormat) SetRange(rng spreadsheet.Range) { c.rng = rng }
func (c *fakeConditionalFormat) StartRule(ruleType spreadsheet.ConditionalFormatRuleType) spreadsheet.ConditionalFormatRule {
	r := &fakeConditionalFormatRule{ruleType: ruleType}
	c.rules = append(c.rules, r)
	return r
}
func (c *fakeConditionalFormat) Commit() { c.committed = true }

type fakeConditionalFormatRule struct {
	ruleType  spreadsheet.ConditionalFormatRuleType
	op        spreadsheet.FilterOp
	hasOp     bool
	formula   string
	xfID      int
	committed bool
}

func (r *fakeConditionalFormatRule) SetPriority(int) {}
func (r *fakeConditionalFormatRule) SetFormula(grammar spreadsheet.FormulaGrammar, text []byte) {
	r.formula = string(text)
}
func (r *fakeConditionalFormatRule) SetOperator(op spreadsheet.FilterOp) { r.op, r.hasOp = op, true }
func (r *fakeConditionalFormatRule) SetXf(xfID int)                      { r.xfID = xfID }
func (r *fakeConditionalFormatRule) SetTop10Rank(int, bool, bool)        {}
func (r *fakeConditionalFormatRule) AppendColorScaleStop(float64, spreadsheet.Color) {}
func (r *fakeConditionalFormatRule) SetDataBarColor(spreadsheet.Color)   {}
func (r *fakeConditionalFormatRule) SetDataBarRange(float64, float64)   {}
func (r *fakeConditionalFormatRule) Commit()                             { r.committed = true }

type fakeAutoFilter struct {
	rng       spreadsheet.Range
	node      *fakeFilterNode
	committed bool
}

func (a *fakeAutoFilter) StartNode(op spreadsheet.BooleanOp) spreadsheet.FilterNode {
	a.node = &fakeFilterNode{op: op}
	return a.node
}
func (a *fakeAutoFilter) StartColumn(col int, op spreadsheet.BooleanOp) spreadsheet.FilterNode {
	n := &fakeFilterNode{op: op}
	return n
}
func (a *fakeAutoFilter) Commit() { a.committed = true }

type fakeFilterItem struct {
	field int
	op    spreadsheet.FilterOp
	num   float64
	text  string
	isNum bool
}

type fakeFilterNode struct {
	op        spreadsheet.BooleanOp
	items     []fakeFilterItem
	committed bool
}

func (n *fakeFilterNode) AppendNumericItem(field int, op spreadsheet.FilterOp, value float64) {
	n.items = append(n.items, fakeFilterItem{field: field, op: op, num: value, isNum: true})
}
func (n *fakeFilterNode) AppendTextItem(field int, op spreadsheet.FilterOp, value []byte) {
	n.items = append(n.items, fakeFilterItem{field: field, op: op, text: string(value)})
}
func (n *fakeFilterNode) StartNode(op spreadsheet.BooleanOp) spreadsheet.FilterNode {
	child := &fakeFilterNode{op: op}
	return child
}
func (n *fakeFilterNode) Commit() { n.committed = true }
