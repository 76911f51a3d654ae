package ods

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
)

// --- minimal recording fakes implementing just enough of the
// spreadsheet interfaces to observe what the handler publishes.

type fakeFactory struct {
	styles        *fakeStyles
	sharedStrings *fakeSharedStrings
	sheets        []*fakeSheet
	namedExpr     *fakeNamedExpression
	finalized     bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{styles: &fakeStyles{}, sharedStrings: &fakeSharedStrings{}}
}

func (f *fakeFactory) GlobalSettings() spreadsheet.GlobalSettings { return nil }
func (f *fakeFactory) SharedStrings() spreadsheet.SharedStrings   { return f.sharedStrings }
func (f *fakeFactory) Styles() spreadsheet.Styles                 { return f.styles }
func (f *fakeFactory) ReferenceResolver(spreadsheet.ResolverContext) spreadsheet.ReferenceResolver {
	return nil
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
func (f *fakeFactory) NamedExpression() spreadsheet.NamedExpression {
	if f.namedExpr == nil {
		f.namedExpr = &fakeNamedExpression{scope: "workbook"}
	}
	return f.namedExpr
}
func (f *fakeFactory) Finalize()                                   { f.finalized = true }

type fakeSharedStrings struct {
	entries []string
}

func (s *fakeSharedStrings) Add(text []byte) int {
	s.entries = append(s.entries, string(text))
	return len(s.entries) - 1
}

type fakeNamedRange struct {
	name, sheetName string
	rng             spreadsheet.Range
}

type fakeNamedExpression struct {
	scope  string
	ranges []fakeNamedRange
}

func (n *fakeNamedExpression) SetNamedRange(name, sheetName string, rng spreadsheet.Range) {
	n.ranges = append(n.ranges, fakeNamedRange{name: name, sheetName: sheetName, rng: rng})
}
func (n *fakeNamedExpression) SetNamedExpression(string, spreadsheet.FormulaGrammar, string) {}

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

type fakeFontStyle struct{ bold bool }

func (f *fakeFontStyle) SetName(string)             {}
func (f *fakeFontStyle) SetSize(float64)            {}
func (f *fakeFontStyle) SetBold(v bool)             { f.bold = v }
func (f *fakeFontStyle) SetItalic(bool)             {}
func (f *fakeFontStyle) SetUnderline(bool)          {}
func (f *fakeFontStyle) SetStrikethrough(bool)      {}
func (f *fakeFontStyle) SetColor(spreadsheet.Color) {}
func (f *fakeFontStyle) Commit() int                { return 1 }

type fakeFillStyle struct{ fg spreadsheet.Color }

func (f *fakeFillStyle) SetPatternType(spreadsheet.PatternType) {}
func (f *fakeFillStyle) SetForegroundColor(c spreadsheet.Color) { f.fg = c }
func (f *fakeFillStyle) SetBackgroundColor(spreadsheet.Color)   {}
func (f *fakeFillStyle) Commit() int                            { return 2 }

type fakeBorderStyle struct{}

func (b *fakeBorderStyle) SetStyle(spreadsheet.BorderDirection, spreadsheet.BorderLineStyle) {}
func (b *fakeBorderStyle) SetColor(spreadsheet.BorderDirection, spreadsheet.Color)            {}
func (b *fakeBorderStyle) SetWidth(spreadsheet.BorderDirection, float64)                      {}
func (b *fakeBorderStyle) Commit() int                                                        { return 3 }

type fakeCellProtection struct{}

func (p *fakeCellProtection) SetLocked(bool)        {}
func (p *fakeCellProtection) SetHidden(bool)        {}
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
	wrapText                                     bool
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
func (x *fakeXf) SetWrapText(v bool)                                      { x.wrapText = v }
func (x *fakeXf) SetShrinkToFit(bool)                                     {}
func (x *fakeXf) SetApplyAlignment(bool)                                  {}
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
	xf           map[[2]int]int
	colFormats   map[int]int
	rowFormats   map[int]int
	formulas     []*fakeFormula
	namedExpr    *fakeNamedExpression
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
func (s *fakeSheet) SetFormat(row, col, xfID int) {
	if s.xf == nil {
		s.xf = make(map[[2]int]int)
	}
	s.xf[[2]int{row, col}] = xfID
}
func (s *fakeSheet) SetFormatRange(spreadsheet.Range, int) {}
func (s *fakeSheet) SetColumnFormat(col, span, xfID int) {
	if s.colFormats == nil {
		s.colFormats = make(map[int]int)
	}
	for i := 0; i < span; i++ {
		s.colFormats[col+i] = xfID
	}
}
func (s *fakeSheet) SetRowFormat(row, xfID int) {
	if s.rowFormats == nil {
		s.rowFormats = make(map[int]int)
	}
	s.rowFormats[row] = xfID
}
func (s *fakeSheet) FillDownCells(row, col, n int)                  {}
func (s *fakeSheet) GetSheetSize() (int, int)                       { return 0, 0 }
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
func (s *fakeSheet) GetArrayFormula() spreadsheet.ArrayFormula           { return nil }
func (s *fakeSheet) GetConditionalFormat() spreadsheet.ConditionalFormat { return nil }
func (s *fakeSheet) StartAutoFilter(spreadsheet.Range) spreadsheet.AutoFilter {
	return nil
}
func (s *fakeSheet) StartTable() spreadsheet.Table { return nil }

type fakeFormula struct {
	row, col    int
	grammar     spreadsheet.FormulaGrammar
	text        string
	resultValue float64
	committed   bool
}

func (f *fakeFormula) SetPosition(row, col int) { f.row, f.col = row, col }
func (f *fakeFormula) SetFormula(grammar spreadsheet.FormulaGrammar, text []byte) {
	f.grammar, f.text = grammar, string(text)
}
func (f *fakeFormula) SetSharedFormulaIndex(int) {}
func (f *fakeFormula) SetResultValue(v float64)  { f.resultValue = v }
func (f *fakeFormula) SetResultString(int)       {}
func (f *fakeFormula) SetResultBool(bool)        {}
func (f *fakeFormula) SetResultEmpty()           {}
func (f *fakeFormula) SetResultError(string)     {}
func (f *fakeFormula) Commit()                   { f.committed = true }

// buildODS packages content.xml (and, if non-empty, styles.xml) into an
// in-memory zip archive the way a real .ods producer would.
func buildODS(t *testing.T, content, styles string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("content.xml")
	if err != nil {
		t.Fatalf("create content.xml: %v", err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Fatalf("write content.xml: %v", err)
	}

	if styles != "" {
		f, err := w.Create("styles.xml")
		if err != nil {
			t.Fatalf("create styles.xml: %v", err)
		}
		if _, err := f.Write([]byte(styles)); err != nil {
			t.Fatalf("write styles.xml: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

const nsAttrs = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" ` +
	`xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" ` +
	`xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" ` +
	`xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" ` +
	`xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" ` +
	`xmlns:number="urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"`

func TestImportPlainCells(t *testing.T) {
	content := `<?xml version="1.0"?>
<office:document-content ` + nsAttrs + `>
  <office:body>
    <office:spreadsheet>
      <table:table table:name="Sheet1">
        <table:table-row>
          <table:table-cell office:value-type="float" office:value="42"/>
          <table:table-cell office:value-type="string" office:string-value="hello"/>
          <table:table-cell><text:p>auto-detected</text:p></table:table-cell>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()

	if err := Import(buildODS(t, content, ""), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !factory.finalized {
		t.Fatal("expected Finalize to be called")
	}
	if len(factory.sheets) != 1 || factory.sheets[0].name != "Sheet1" {
		t.Fatalf("got sheets %+v, want one sheet named Sheet1", factory.sheets)
	}

	sheet := factory.sheets[0]
	if len(sheet.events) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(sheet.events), sheet.events)
	}
	if sheet.events[0].kind != "value" || sheet.events[0].value != 42 {
		t.Errorf("got %+v, want value 42", sheet.events[0])
	}
	if sheet.events[1].kind != "string" {
		t.Errorf("got %+v, want a string event", sheet.events[1])
	}
	if sheet.events[2].kind != "auto" || sheet.events[2].text != "auto-detected" {
		t.Errorf("got %+v, want auto-detected text", sheet.events[2])
	}
	if len(factory.sharedStrings.entries) != 1 {
		t.Fatalf("got shared strings %v, want 1 entry", factory.sharedStrings.entries)
	}
}

func TestImportFormulaCell(t *testing.T) {
	content := `<office:document-content ` + nsAttrs + `>
  <office:body>
    <office:spreadsheet>
      <table:table table:name="Sheet1">
        <table:table-row>
          <table:table-cell office:value-type="float" office:value="1"/>
          <table:table-cell office:value-type="float" office:value="2"/>
          <table:table-cell table:formula="of:=[.A1]+[.B1]" office:value-type="float" office:value="3"/>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import(buildODS(t, content, ""), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if len(sheet.formulas) != 1 {
		t.Fatalf("got %d formulas, want 1", len(sheet.formulas))
	}
	f := sheet.formulas[0]
	if f.row != 0 || f.col != 2 {
		t.Errorf("got position (%d,%d), want (0,2)", f.row, f.col)
	}
	if f.grammar != spreadsheet.GrammarODFF {
		t.Errorf("got grammar %v, want GrammarODFF", f.grammar)
	}
	if f.text != "[.A1]+[.B1]" {
		t.Errorf("got formula text %q, want %q", f.text, "[.A1]+[.B1]")
	}
	if f.resultValue != 3 {
		t.Errorf("got result value %v, want 3", f.resultValue)
	}
	if !f.committed {
		t.Error("expected formula to be committed")
	}
}

func TestImportCellStyleFromStylesXML(t *testing.T) {
	content := `<office:document-content ` + nsAttrs + `>
  <office:automatic-styles>
    <style:style style:name="ce1" style:family="table-cell" style:parent-style-name="Bold1">
      <style:table-cell-properties fo:background-color="#ff0000"/>
    </style:style>
  </office:automatic-styles>
  <office:body>
    <office:spreadsheet>
      <table:table table:name="Sheet1">
        <table:table-row>
          <table:table-cell table:style-name="ce1" office:value-type="float" office:value="7"/>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

	styles := `<office:document-styles ` + nsAttrs + `>
  <office:styles>
    <style:style style:name="Bold1" style:family="table-cell">
      <style:text-properties fo:font-weight="bold"/>
    </style:style>
  </office:styles>
</office:document-styles>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import(buildODS(t, content, styles), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	xfID, ok := sheet.xf[[2]int{0, 0}]
	if !ok {
		t.Fatal("expected a committed xf id for the cell's style")
	}
	if len(factory.styles.xfs) != 1 || factory.styles.xfs[0].id != xfID {
		t.Fatalf("xf id %d does not match the one committed xf record", xfID)
	}
	if factory.styles.xfs[0].fill == 0 {
		t.Error("expected ce1's own background-color to be committed to the xf's fill")
	}
}

func TestImportNamedRangeWorkbookAndSheetScoped(t *testing.T) {
	content := `<office:document-content ` + nsAttrs + `>
  <office:body>
    <office:spreadsheet>
      <table:named-expressions>
        <table:named-range table:name="Total" table:cell-range-address="$Sheet1.$A$1:$A$3"/>
      </table:named-expressions>
      <table:table table:name="Sheet1">
        <table:named-expressions>
          <table:named-range table:name="Local" table:cell-range-address="$Sheet1.$B$1"/>
        </table:named-expressions>
        <table:table-row>
          <table:table-cell office:value-type="float" office:value="1"/>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import(buildODS(t, content, ""), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	wb := factory.NamedExpression().(*fakeNamedExpression)
	if len(wb.ranges) != 1 || wb.ranges[0].name != "Total" {
		t.Fatalf("got workbook-scoped ranges %+v, want [Total]", wb.ranges)
	}
	if wb.ranges[0].rng.FirstRow != 0 || wb.ranges[0].rng.LastRow != 2 {
		t.Errorf("got range %+v, want rows 0..2", wb.ranges[0].rng)
	}

	sheet := factory.sheets[0]
	local := sheet.NamedExpression().(*fakeNamedExpression)
	if len(local.ranges) != 1 || local.ranges[0].name != "Local" {
		t.Fatalf("got sheet-scoped ranges %+v, want [Local]", local.ranges)
	}
}

func TestImportColumnAndRowDefaultFormat(t *testing.T) {
	content := `<office:document-content ` + nsAttrs + `>
  <office:automatic-styles>
    <style:style style:name="co1" style:family="table-column">
      <style:table-column-properties style:column-width="2.5cm"/>
    </style:style>
    <style:style style:name="ro1" style:family="table-row">
      <style:table-row-properties style:row-height="1cm"/>
    </style:style>
  </office:automatic-styles>
  <office:body>
    <office:spreadsheet>
      <table:table table:name="Sheet1">
        <table:table-column table:style-name="co1"/>
        <table:table-row table:style-name="ro1">
          <table:table-cell office:value-type="float" office:value="1"/>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import(buildODS(t, content, ""), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if _, ok := sheet.colFormats[0]; !ok {
		t.Error("expected column 0 to carry co1's committed format")
	}
	if _, ok := sheet.rowFormats[0]; !ok {
		t.Error("expected row 0 to carry ro1's committed format")
	}
}
