package xlsxml

import (
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
	finalized     bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{styles: &fakeStyles{}, sharedStrings: &fakeSharedStrings{}}
}

func (f *fakeFactory) GlobalSettings() spreadsheet.GlobalSettings { return nil }
func (f *fakeFactory) SharedStrings() spreadsheet.SharedStrings   { return f.sharedStrings }
func (f *fakeFactory) Styles() spreadsheet.Styles                { return f.styles }
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
func (f *fakeFactory) NamedExpression() spreadsheet.NamedExpression { return nil }
func (f *fakeFactory) Finalize()                                    { f.finalized = true }

type fakeSharedStrings struct {
	entries []string
}

func (s *fakeSharedStrings) Add(text []byte) int {
	s.entries = append(s.entries, string(text))
	return len(s.entries) - 1
}
func (s *fakeSharedStrings) Append(text []byte) int { return s.Add(text) }
func (s *fakeSharedStrings) StartSegment() spreadsheet.SegmentBuilder { return nil }

type fakeStyles struct {
	xfs []*fakeXf
}

func (s *fakeStyles) StartFontStyle() spreadsheet.FontStyle           { return &fakeFontStyle{} }
func (s *fakeStyles) StartFillStyle() spreadsheet.FillStyle           { return &fakeFillStyle{} }
func (s *fakeStyles) StartBorderStyle() spreadsheet.BorderStyle       { return &fakeBorderStyle{} }
func (s *fakeStyles) StartCellProtection() spreadsheet.CellProtection { return &fakeCellProtection{} }
func (s *fakeStyles) StartNumberFormat() spreadsheet.NumberFormat     { return &fakeNumberFormat{} }
func (s *fakeStyles) StartXf(category spreadsheet.XfCategory) spreadsheet.Xf {
	xf := &fakeXf{}
	s.xfs = append(s.xfs, xf)
	return xf
}
func (s *fakeStyles) StartCellStyle() spreadsheet.CellStyle { return &fakeCellStyle{} }

type fakeFontStyle struct{ bold, italic bool }

func (f *fakeFontStyle) SetName(string)              {}
func (f *fakeFontStyle) SetSize(float64)             {}
func (f *fakeFontStyle) SetBold(v bool)              { f.bold = v }
func (f *fakeFontStyle) SetItalic(v bool)            { f.italic = v }
func (f *fakeFontStyle) SetUnderline(bool)           {}
func (f *fakeFontStyle) SetStrikethrough(bool)       {}
func (f *fakeFontStyle) SetColor(spreadsheet.Color)  {}
func (f *fakeFontStyle) Commit() int                 { return 1 }

type fakeFillStyle struct{}

func (f *fakeFillStyle) SetPatternType(spreadsheet.PatternType) {}
func (f *fakeFillStyle) SetForegroundColor(spreadsheet.Color)   {}
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

func (n *fakeNumberFormat) SetIdentifier(int)    {}
func (n *fakeNumberFormat) SetCode(code []byte)  { n.code = string(code) }
func (n *fakeNumberFormat) Commit() int          { return 5 }

type fakeXf struct {
	id                                              int
	font, fill, border, protection, numberFormat    int
	horizontal                                      spreadsheet.HorizontalAlignment
	vertical                                        spreadsheet.VerticalAlignment
}

var nextXfID = 100

func (x *fakeXf) SetFont(id int)                                           { x.font = id }
func (x *fakeXf) SetFill(id int)                                           { x.fill = id }
func (x *fakeXf) SetBorder(id int)                                         { x.border = id }
func (x *fakeXf) SetProtection(id int)                                     { x.protection = id }
func (x *fakeXf) SetNumberFormat(id int)                                   { x.numberFormat = id }
func (x *fakeXf) SetStyleXf(int)                                           {}
func (x *fakeXf) SetHorizontalAlignment(a spreadsheet.HorizontalAlignment) { x.horizontal = a }
func (x *fakeXf) SetVerticalAlignment(a spreadsheet.VerticalAlignment)     { x.vertical = a }
func (x *fakeXf) SetWrapText(bool)                                        {}
func (x *fakeXf) SetShrinkToFit(bool)                                     {}
func (x *fakeXf) SetApplyAlignment(bool)                                  {}
func (x *fakeXf) Commit() int {
	nextXfID++
	x.id = nextXfID
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
	text     string
	xf       int
}

type fakeSheet struct {
	name   string
	events []cellEvent
	xf     map[[2]int]int
	formulas []*fakeFormula
}

func (s *fakeSheet) SetValue(row, col int, value float64) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "value", value: value})
}
func (s *fakeSheet) SetBool(row, col int, value bool) {
	s.events = append(s.events, cellEvent{row: row, col: col, kind: "bool"})
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
func (s *fakeSheet) SetFormatRange(spreadsheet.Range, int)        {}
func (s *fakeSheet) SetColumnFormat(col, span, xfID int)          {}
func (s *fakeSheet) SetRowFormat(row, xfID int)                   {}
func (s *fakeSheet) FillDownCells(row, col, n int)                {}
func (s *fakeSheet) GetSheetSize() (int, int)                     { return 0, 0 }
func (s *fakeSheet) GetSheetProperties() spreadsheet.SheetProperties { return nil }
func (s *fakeSheet) GetSheetView() spreadsheet.SheetView             { return nil }
func (s *fakeSheet) NamedExpression() spreadsheet.NamedExpression    { return nil }
func (s *fakeSheet) GetFormula() spreadsheet.Formula {
	f := &fakeFormula{}
	s.formulas = append(s.formulas, f)
	return f
}
func (s *fakeSheet) GetArrayFormula() spreadsheet.ArrayFormula             { return nil }
func (s *fakeSheet) GetConditionalFormat() spreadsheet.ConditionalFormat  { return nil }
func (s *fakeSheet) StartAutoFilter(spreadsheet.Range) spreadsheet.AutoFilter {
	return nil
}
func (s *fakeSheet) StartTable() spreadsheet.Table { return nil }

type fakeFormula struct {
	row, col     int
	grammar      spreadsheet.FormulaGrammar
	text         string
	resultValue  float64
	committed    bool
}

func (f *fakeFormula) SetPosition(row, col int) { f.row, f.col = row, col }
func (f *fakeFormula) SetFormula(grammar spreadsheet.FormulaGrammar, text []byte) {
	f.grammar, f.text = grammar, string(text)
}
func (f *fakeFormula) SetSharedFormulaIndex(int)    {}
func (f *fakeFormula) SetResultValue(v float64)     { f.resultValue = v }
func (f *fakeFormula) SetResultString(int)          {}
func (f *fakeFormula) SetResultBool(bool)           {}
func (f *fakeFormula) SetResultEmpty()              {}
func (f *fakeFormula) SetResultError(string)        {}
func (f *fakeFormula) Commit()                      { f.committed = true }

func TestImportCellWithFormulaAndCachedStyle(t *testing.T) {
	src := `<?xml version="1.0"?>
<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
  <Styles>
    <Style ss:ID="s21">
      <Font ss:Bold="1"/>
    </Style>
  </Styles>
  <Worksheet ss:Name="Sheet1">
    <Table>
      <Row>
        <Cell/>
        <Cell/>
        <Cell ss:Index="3" ss:StyleID="s21" ss:Formula="=A1+B1"><Data ss:Type="Number">5</Data></Cell>
      </Row>
    </Table>
  </Worksheet>
</Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	repo.AddPredefined(PredefinedNamespaces)

	if err := Import([]byte(src), factory, repo); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if !factory.finalized {
		t.Fatal("expected Finalize to be called")
	}
	if len(factory.sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(factory.sheets))
	}
	sheet := factory.sheets[0]
	if len(sheet.formulas) != 1 {
		t.Fatalf("got %d formulas, want 1", len(sheet.formulas))
	}
	f := sheet.formulas[0]
	if f.row != 0 || f.col != 2 {
		t.Errorf("got position (%d,%d), want (0,2)", f.row, f.col)
	}
	if f.grammar != spreadsheet.GrammarXlsXML {
		t.Errorf("got grammar %v, want GrammarXlsXML", f.grammar)
	}
	if f.text != "A1+B1" {
		t.Errorf("got formula text %q, want %q", f.text, "A1+B1")
	}
	if f.resultValue != 5.0 {
		t.Errorf("got result value %v, want 5.0", f.resultValue)
	}
	if !f.committed {
		t.Error("expected formula to be committed")
	}

	xfID, ok := sheet.xf[[2]int{0, 2}]
	if !ok {
		t.Fatal("expected a cached xf id for the cell's style")
	}
	if len(factory.styles.xfs) != 1 || factory.styles.xfs[0].id != xfID {
		t.Errorf("cell xf id %d does not match the committed style xf", xfID)
	}
}

func TestImportPlainNumberAndStringCells(t *testing.T) {
	src := `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
  <Worksheet ss:Name="Sheet1">
    <Table>
      <Row>
        <Cell><Data ss:Type="Number">42</Data></Cell>
        <Cell><Data ss:Type="String">hello</Data></Cell>
      </Row>
    </Table>
  </Worksheet>
</Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	repo.AddPredefined(PredefinedNamespaces)

	if err := Import([]byte(src), factory, repo); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if len(sheet.events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(sheet.events), sheet.events)
	}
	if sheet.events[0].kind != "value" || sheet.events[0].value != 42 {
		t.Errorf("got %+v, want value 42", sheet.events[0])
	}
	if sheet.events[1].kind != "string" {
		t.Errorf("got %+v, want a string event", sheet.events[1])
	}
	if len(factory.sharedStrings.entries) != 1 || factory.sharedStrings.entries[0] != "hello" {
		t.Errorf("got shared strings %v, want [hello]", factory.sharedStrings.entries)
	}
}
