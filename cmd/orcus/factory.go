package main

import "github.com/dhamidi/orcus-go/spreadsheet"

// recordingFactory is the spreadsheet.ImportFactory cmd/orcus drives
// every format handler through: it keeps every sheet, cell, style and
// defined name a handler publishes in memory so the dump and convert
// commands can render it back out in a second pass, the same
// consumer-owns-the-object-graph contract the format packages' own
// tests exercise with their fakes, turned into a real, non-test
// consumer.
type recordingFactory struct {
	sheets     []*recordedSheet
	byName     map[string]*recordedSheet
	shared     []string
	namedExprs []namedExprRecord

	fonts   []fontRecord
	fills   []fillRecord
	borders int
	numFmts []numFmtRecord
	xfs     []xfRecord
	styles  int
}

type namedExprRecord struct {
	Name     string
	Sheet    string
	Formula  string
	HasRange bool
	Range    spreadsheet.Range
}

func newRecordingFactory() *recordingFactory {
	return &recordingFactory{byName: make(map[string]*recordedSheet)}
}

func (f *recordingFactory) GlobalSettings() spreadsheet.GlobalSettings { return nil }
func (f *recordingFactory) SharedStrings() spreadsheet.SharedStrings  { return f }
func (f *recordingFactory) Styles() spreadsheet.Styles                { return f }

func (f *recordingFactory) ReferenceResolver(spreadsheet.ResolverContext) spreadsheet.ReferenceResolver {
	return nil
}

func (f *recordingFactory) AppendSheet(index int, name string) spreadsheet.Sheet {
	s := &recordedSheet{factory: f, name: name, index: index, cells: make(map[cellKey]*recordedCell)}
	f.sheets = append(f.sheets, s)
	f.byName[name] = s
	return s
}

func (f *recordingFactory) GetSheetByName(name string) spreadsheet.Sheet {
	if s, ok := f.byName[name]; ok {
		return s
	}
	return nil
}

func (f *recordingFactory) GetSheetByIndex(index int) spreadsheet.Sheet {
	for _, s := range f.sheets {
		if s.index == index {
			return s
		}
	}
	return nil
}

func (f *recordingFactory) NamedExpression() spreadsheet.NamedExpression { return f }

func (f *recordingFactory) Finalize() {}

// SharedStrings: Add dedupes against the pool (the same identical-text
// contract spec.md's own SharedStrings.Add carries), Append never
// does.

func (f *recordingFactory) Add(text []byte) int {
	s := string(text)
	for i, e := range f.shared {
		if e == s {
			return i
		}
	}
	f.shared = append(f.shared, s)
	return len(f.shared) - 1
}

func (f *recordingFactory) Append(text []byte) int {
	f.shared = append(f.shared, string(text))
	return len(f.shared) - 1
}

func (f *recordingFactory) StartSegment() spreadsheet.SegmentBuilder {
	return &segmentBuilder{f: f}
}

type segmentBuilder struct {
	f   *recordingFactory
	buf []byte
}

func (s *segmentBuilder) SetBold(bool)                   {}
func (s *segmentBuilder) SetItalic(bool)                 {}
func (s *segmentBuilder) SetFontName(string)             {}
func (s *segmentBuilder) SetFontSize(float64)            {}
func (s *segmentBuilder) SetFontColor(spreadsheet.Color) {}
func (s *segmentBuilder) AppendSegment(text []byte)      { s.buf = append(s.buf, text...) }
func (s *segmentBuilder) CommitSegments() int            { return s.f.Append(s.buf) }

// NamedExpression (workbook scope; Sheet.NamedExpression shares the
// same implementation, scoped to one recordedSheet).

func (f *recordingFactory) SetNamedRange(name, sheetName string, rng spreadsheet.Range) {
	f.namedExprs = append(f.namedExprs, namedExprRecord{Name: name, Sheet: sheetName, HasRange: true, Range: rng})
}

func (f *recordingFactory) SetNamedExpression(name string, _ spreadsheet.FormulaGrammar, formula string) {
	f.namedExprs = append(f.namedExprs, namedExprRecord{Name: name, Formula: formula})
}

// Styles. orcus dump reports only the counts, but every record keeps
// enough of its own fields to make convert's full dump meaningful too.

type fontRecord struct {
	Name          string
	Size          float64
	Bold, Italic  bool
	Underline     bool
	Strikethrough bool
	Color         spreadsheet.Color
}

type fillRecord struct {
	Pattern    spreadsheet.PatternType
	Foreground spreadsheet.Color
	Background spreadsheet.Color
}

type numFmtRecord struct {
	ID   int
	Code string
}

type xfRecord struct {
	Category   spreadsheet.XfCategory
	FontID     int
	FillID     int
	BorderID   int
	NumFmtID   int
	StyleXfID  int
	HAlign     spreadsheet.HorizontalAlignment
	VAlign     spreadsheet.VerticalAlignment
	WrapText   bool
	ShrinkToFit bool
}

func (f *recordingFactory) StartFontStyle() spreadsheet.FontStyle {
	return &fontStyle{f: f}
}

type fontStyle struct {
	f *recordingFactory
	r fontRecord
}

func (s *fontStyle) SetName(name string)        { s.r.Name = name }
func (s *fontStyle) SetSize(points float64)     { s.r.Size = points }
func (s *fontStyle) SetBold(v bool)              { s.r.Bold = v }
func (s *fontStyle) SetItalic(v bool)            { s.r.Italic = v }
func (s *fontStyle) SetUnderline(v bool)         { s.r.Underline = v }
func (s *fontStyle) SetStrikethrough(v bool)     { s.r.Strikethrough = v }
func (s *fontStyle) SetColor(c spreadsheet.Color) { s.r.Color = c }
func (s *fontStyle) Commit() int {
	s.f.fonts = append(s.f.fonts, s.r)
	return len(s.f.fonts) - 1
}

func (f *recordingFactory) StartFillStyle() spreadsheet.FillStyle {
	return &fillStyle{f: f}
}

type fillStyle struct {
	f *recordingFactory
	r fillRecord
}

func (s *fillStyle) SetPatternType(p spreadsheet.PatternType)     { s.r.Pattern = p }
func (s *fillStyle) SetForegroundColor(c spreadsheet.Color)       { s.r.Foreground = c }
func (s *fillStyle) SetBackgroundColor(c spreadsheet.Color)       { s.r.Background = c }
func (s *fillStyle) Commit() int {
	s.f.fills = append(s.f.fills, s.r)
	return len(s.f.fills) - 1
}

func (f *recordingFactory) StartBorderStyle() spreadsheet.BorderStyle {
	return &borderStyle{f: f}
}

type borderStyle struct{ f *recordingFactory }

func (s *borderStyle) SetStyle(spreadsheet.BorderDirection, spreadsheet.BorderLineStyle) {}
func (s *borderStyle) SetColor(spreadsheet.BorderDirection, spreadsheet.Color)            {}
func (s *borderStyle) SetWidth(spreadsheet.BorderDirection, float64)                      {}
func (s *borderStyle) Commit() int {
	s.f.borders++
	return s.f.borders - 1
}

func (f *recordingFactory) StartCellProtection() spreadsheet.CellProtection {
	return &cellProtection{}
}

type cellProtection struct{}

func (cellProtection) SetLocked(bool)        {}
func (cellProtection) SetHidden(bool)        {}
func (cellProtection) SetFormulaHidden(bool) {}
func (cellProtection) SetPrintContent(bool)  {}
func (cellProtection) Commit() int           { return 0 }

func (f *recordingFactory) StartNumberFormat() spreadsheet.NumberFormat {
	return &numberFormat{f: f}
}

type numberFormat struct {
	f *recordingFactory
	r numFmtRecord
}

func (s *numberFormat) SetIdentifier(id int)   { s.r.ID = id }
func (s *numberFormat) SetCode(code []byte)    { s.r.Code = string(code) }
func (s *numberFormat) Commit() int {
	s.f.numFmts = append(s.f.numFmts, s.r)
	return len(s.f.numFmts) - 1
}

func (f *recordingFactory) StartXf(category spreadsheet.XfCategory) spreadsheet.Xf {
	return &xf{f: f, r: xfRecord{Category: category, FontID: -1, FillID: -1, BorderID: -1, NumFmtID: -1, StyleXfID: -1}}
}

type xf struct {
	f *recordingFactory
	r xfRecord
}

func (s *xf) SetFont(id int)                                    { s.r.FontID = id }
func (s *xf) SetFill(id int)                                    { s.r.FillID = id }
func (s *xf) SetBorder(id int)                                  { s.r.BorderID = id }
func (s *xf) SetProtection(int)                                 {}
func (s *xf) SetNumberFormat(id int)                            { s.r.NumFmtID = id }
func (s *xf) SetStyleXf(id int)                                 { s.r.StyleXfID = id }
func (s *xf) SetHorizontalAlignment(a spreadsheet.HorizontalAlignment) { s.r.HAlign = a }
func (s *xf) SetVerticalAlignment(a spreadsheet.VerticalAlignment)     { s.r.VAlign = a }
func (s *xf) SetWrapText(v bool)                                { s.r.WrapText = v }
func (s *xf) SetShrinkToFit(v bool)                             { s.r.ShrinkToFit = v }
func (s *xf) SetApplyAlignment(bool)                            {}
func (s *xf) Commit() int {
	s.f.xfs = append(s.f.xfs, s.r)
	return len(s.f.xfs) - 1
}

func (f *recordingFactory) StartCellStyle() spreadsheet.CellStyle {
	return &cellStyle{f: f}
}

type cellStyle struct{ f *recordingFactory }

func (s *cellStyle) SetName(string)        {}
func (s *cellStyle) SetDisplayName(string) {}
func (s *cellStyle) SetXf(int)             {}
func (s *cellStyle) SetParentName(string)  {}
func (s *cellStyle) SetBuiltin(int)        {}
func (s *cellStyle) Commit()               { s.f.styles++ }
