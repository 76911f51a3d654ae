package gnumeric

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
)

const gnmNS = `xmlns:gnm="http://www.gnumeric.org/v10.dtd"`

func TestImportPlainCells(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells>
        <gnm:Cell Row="0" Col="0" ValueType="40">42</gnm:Cell>
        <gnm:Cell Row="0" Col="1" ValueType="20">TRUE</gnm:Cell>
        <gnm:Cell Row="0" Col="2" ValueType="60">hello</gnm:Cell>
      </gnm:Cells>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
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
	if sheet.events[1].kind != "bool" || !sheet.events[1].boolean {
		t.Errorf("got %+v, want bool true", sheet.events[1])
	}
	if sheet.events[2].kind != "string" {
		t.Errorf("got %+v, want a string event", sheet.events[2])
	}
	if len(factory.sharedStrings.entries) != 1 || factory.sharedStrings.entries[0] != "hello" {
		t.Fatalf("got shared strings %v, want [hello]", factory.sharedStrings.entries)
	}
}

func TestImportFormulaCells(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells>
        <gnm:Cell Row="0" Col="0" ValueType="40">1</gnm:Cell>
        <gnm:Cell Row="0" Col="1">=A1+1</gnm:Cell>
        <gnm:Cell Row="1" Col="0" ExprID="7">=A1+1</gnm:Cell>
      </gnm:Cells>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if len(sheet.formulas) != 2 {
		t.Fatalf("got %d formulas, want 2", len(sheet.formulas))
	}
	master := sheet.formulas[0]
	if master.row != 0 || master.col != 1 || master.text != "A1+1" {
		t.Errorf("got master formula %+v, want (0,1) A1+1", master)
	}
	if master.grammar != spreadsheet.GrammarGnumeric {
		t.Errorf("got grammar %v, want GrammarGnumeric", master.grammar)
	}
	if !master.committed {
		t.Error("expected master formula to be committed")
	}

	shared := sheet.formulas[1]
	if shared.sharedFormulaIdx != 7 {
		t.Errorf("got shared formula index %d, want 7", shared.sharedFormulaIdx)
	}
}

func TestImportArrayFormula(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells>
        <gnm:Cell Row="0" Col="0" Rows="2" Cols="2">=A2:B3*2</gnm:Cell>
      </gnm:Cells>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if sheet.arrayFormula == nil {
		t.Fatal("expected an array formula to be started")
	}
	af := sheet.arrayFormula
	want := spreadsheet.Range{FirstRow: 0, FirstCol: 0, LastRow: 1, LastCol: 1}
	if af.rng != want {
		t.Errorf("got array range %+v, want %+v", af.rng, want)
	}
	if af.text != "A2:B3*2" {
		t.Errorf("got array formula text %q, want %q", af.text, "A2:B3*2")
	}
	if !af.committed {
		t.Error("expected array formula to be committed")
	}
}

func TestImportFilterWithUnsupportedValueTypeSkipped(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells/>
      <gnm:Filters>
        <gnm:Filter Area="A1:B10">
          <gnm:Field Index="0" Type="expr" Op0="gt" Value0="40" ValueType0="5"/>
          <gnm:Field Index="1" Type="expr" Op0="eq" Value0="50" ValueType0="error"/>
        </gnm:Filter>
      </gnm:Filters>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if sheet.autoFilter == nil {
		t.Fatal("expected an auto filter to be started")
	}
	node := sheet.autoFilter.node
	if node == nil {
		t.Fatal("expected the filter's root AND node to be started")
	}
	// Field 0's Value0="40" is the value-TYPE code (40 = float) and
	// ValueType0="5" is the actual value text, per Gnumeric's own
	// Value0/ValueType0 attribute-name swap; it commits one numeric
	// item. Field 1's value-type code 50 (error) has no supported
	// sink and must be skipped.
	if len(node.items) != 1 {
		t.Fatalf("got %d filter items, want 1 (one valid field, one skipped)", len(node.items))
	}
	if !node.items[0].isNum || node.items[0].num != 5 {
		t.Errorf("got filter item %+v, want numeric 5", node.items[0])
	}
	if !node.committed || !sheet.autoFilter.committed {
		t.Error("expected filter node and auto filter to be committed")
	}
}

func TestImportNamedExpressionWorkbookAndSheetScoped(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Names>
    <gnm:Name>
      <name>Total</name>
      <value>SUM(Sheet1!A1:A3)</value>
      <position>A1</position>
    </gnm:Name>
  </gnm:Names>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells/>
      <gnm:Names>
        <gnm:Name>
          <name>Local</name>
          <value>B1*2</value>
          <position>B1</position>
        </gnm:Name>
      </gnm:Names>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	wb := factory.namedExpr
	if len(wb.expressions) != 1 || wb.expressions[0].name != "Total" {
		t.Fatalf("got workbook-scoped expressions %+v, want [Total]", wb.expressions)
	}
	if wb.expressions[0].formula != "SUM(Sheet1!A1:A3)" {
		t.Errorf("got formula %q, want %q", wb.expressions[0].formula, "SUM(Sheet1!A1:A3)")
	}

	sheet := factory.sheets[0]
	local := sheet.NamedExpression().(*fakeNamedExpression)
	if len(local.expressions) != 1 || local.expressions[0].name != "Local" {
		t.Fatalf("got sheet-scoped expressions %+v, want [Local]", local.expressions)
	}
}

func TestImportStyleRegionPlainAndConditional(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells/>
      <gnm:Styles>
        <gnm:StyleRegion startCol="0" startRow="0" endCol="0" endRow="2">
          <gnm:Style HAlign="GNM_HALIGN_CENTER" Fore="0000:0000:0000">
            <gnm:Font Unit="10" Bold="1">Sans</gnm:Font>
          </gnm:Style>
        </gnm:StyleRegion>
        <gnm:StyleRegion startCol="1" startRow="0" endCol="1" endRow="2">
          <gnm:Style>
            <gnm:Condition Operator="4">
              <gnm:Expression0>10</gnm:Expression0>
              <gnm:Style Fore="ffff:0000:0000"/>
            </gnm:Condition>
          </gnm:Style>
        </gnm:StyleRegion>
      </gnm:Styles>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import([]byte(doc), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	sheet := factory.sheets[0]
	if len(sheet.formatRanges) != 1 {
		t.Fatalf("got %d plain format ranges, want 1: %+v", len(sheet.formatRanges), sheet.formatRanges)
	}
	want := spreadsheet.Range{FirstRow: 0, FirstCol: 0, LastRow: 2, LastCol: 0}
	if sheet.formatRanges[0] != want {
		t.Errorf("got plain region range %+v, want %+v", sheet.formatRanges[0], want)
	}

	if sheet.condFormat == nil || !sheet.condFormat.committed {
		t.Fatal("expected a conditional format to be committed for the second region")
	}
	if len(sheet.condFormat.rules) != 1 {
		t.Fatalf("got %d conditional rules, want 1", len(sheet.condFormat.rules))
	}
	rule := sheet.condFormat.rules[0]
	if !rule.hasOp || rule.op != spreadsheet.FilterGreater {
		t.Errorf("got rule operator %+v, want FilterGreater", rule)
	}
	if rule.formula != "10" {
		t.Errorf("got rule formula %q, want %q", rule.formula, "10")
	}
	if rule.xfID == 0 {
		t.Error("expected the condition's own nested style to commit an xf id")
	}
	if !rule.committed {
		t.Error("expected the conditional rule to be committed")
	}
}

func TestImportGzipCompressed(t *testing.T) {
	doc := `<gnm:Workbook ` + gnmNS + `>
  <gnm:Sheets>
    <gnm:Sheet>
      <gnm:Name>Sheet1</gnm:Name>
      <gnm:Cells>
        <gnm:Cell Row="0" Col="0" ValueType="40">1</gnm:Cell>
      </gnm:Cells>
    </gnm:Sheet>
  </gnm:Sheets>
</gnm:Workbook>`

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(doc)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	factory := newFakeFactory()
	repo := xmlns.NewRepository()
	if err := Import(buf.Bytes(), factory, repo, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(factory.sheets) != 1 || len(factory.sheets[0].events) != 1 {
		t.Fatalf("got sheets %+v, want one sheet with one cell event", factory.sheets)
	}
}
