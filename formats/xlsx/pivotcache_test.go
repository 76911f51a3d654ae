package xlsx

import (
	"testing"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/xmlctx"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
)

type fakeFieldGroup struct {
	committed bool
}

func (g *fakeFieldGroup) SetRangeGrouping(spreadsheet.GroupByKind, bool, float64, float64, float64) {}
func (g *fakeFieldGroup) SetDateRangeGrouping(spreadsheet.GroupByKind, bool, bool, spreadsheet.Date, spreadsheet.Date) {
}
func (g *fakeFieldGroup) AppendGroupItem([]byte)     {}
func (g *fakeFieldGroup) LinkBaseItemToGroupItem(int, int) {}
func (g *fakeFieldGroup) Commit()                    { g.committed = true }

type pivotItemEvent struct {
	kind   string
	text   string
	number float64
	unused bool
}

type fakePivotCacheField struct {
	name     string
	items    []pivotItemEvent
	group    *fakeFieldGroup
	groupBase int
	committed bool
}

func (f *fakePivotCacheField) SetName(text []byte) { f.name = string(text) }

func (f *fakePivotCacheField) SetContainsNumber(bool) {}
func (f *fakePivotCacheField) SetContainsString(bool) {}
func (f *fakePivotCacheField) SetContainsBlank(bool)  {}
func (f *fakePivotCacheField) SetContainsDate(bool)   {}
func (f *fakePivotCacheField) SetLongText(bool)       {}
func (f *fakePivotCacheField) SetMinValue(float64)    {}
func (f *fakePivotCacheField) SetMaxValue(float64)    {}
func (f *fakePivotCacheField) SetMinDate(spreadsheet.Date) {}
func (f *fakePivotCacheField) SetMaxDate(spreadsheet.Date) {}

func (f *fakePivotCacheField) AppendItemString(text []byte, unused bool) {
	f.items = append(f.items, pivotItemEvent{kind: "string", text: string(text), unused: unused})
}
func (f *fakePivotCacheField) AppendItemNumeric(value float64, unused bool) {
	f.items = append(f.items, pivotItemEvent{kind: "numeric", number: value, unused: unused})
}
func (f *fakePivotCacheField) AppendItemDate(value spreadsheet.Date, unused bool) {
	f.items = append(f.items, pivotItemEvent{kind: "date", unused: unused})
}
func (f *fakePivotCacheField) AppendItemError(code string, unused bool) {
	f.items = append(f.items, pivotItemEvent{kind: "error", text: code, unused: unused})
}

func (f *fakePivotCacheField) StartGroup(base int) spreadsheet.FieldGroup {
	f.group = &fakeFieldGroup{}
	f.groupBase = base
	return f.group
}

func (f *fakePivotCacheField) CommitField() { f.committed = true }

type fakePivotCacheDefinition struct {
	fields     []*fakePivotCacheField
	fieldCount int
	sourceRange spreadsheet.Range
	sourceSheet string
}

func (d *fakePivotCacheDefinition) SetWorksheetSourceRange(rng spreadsheet.Range, sheetName string) {
	d.sourceRange, d.sourceSheet = rng, sheetName
}
func (d *fakePivotCacheDefinition) SetWorksheetSourceTable(string) {}
func (d *fakePivotCacheDefinition) SetFieldCount(n int)            { d.fieldCount = n }
func (d *fakePivotCacheDefinition) StartField(index int) spreadsheet.PivotCacheField {
	f := &fakePivotCacheField{}
	d.fields = append(d.fields, f)
	return f
}

func TestPivotCacheSharedItemsSkipsUnused(t *testing.T) {
	src := `<?xml version="1.0"?>
<pivotCacheDefinition xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <cacheSource type="worksheet">
    <worksheetSource ref="A1:B10" sheet="Sheet1"/>
  </cacheSource>
  <cacheFields count="1">
    <cacheField name="Region">
      <sharedItems containsString="1">
        <s v="East"/>
        <s v="West"/>
        <s v="North"/>
        <s v="East" u="1"/>
      </sharedItems>
    </cacheField>
  </cacheFields>
</pivotCacheDefinition>`

	def := &fakePivotCacheDefinition{}
	repo := xmlns.NewRepository()
	repo.AddPredefined(PredefinedNamespaces)

	stack := ctxstack.NewStack(newPivotCacheDefinitionContext(def))
	nsCxt := repo.CreateContext()

	if err := xmlctx.Parse([]byte(src), stack, nsCxt, Tokens); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(def.fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(def.fields))
	}
	field := def.fields[0]
	if field.name != "Region" {
		t.Fatalf("got field name %q, want Region", field.name)
	}
	if !field.committed {
		t.Fatal("expected CommitField to be called")
	}
	if len(field.items) != 3 {
		t.Fatalf("got %d committed items, want 3 (unused item must be skipped): %+v", len(field.items), field.items)
	}
	want := []string{"East", "West", "North"}
	for i, w := range want {
		if field.items[i].kind != "string" || field.items[i].text != w {
			t.Fatalf("item %d = %+v, want string %q", i, field.items[i], w)
		}
		if field.items[i].unused {
			t.Fatalf("item %d unexpectedly marked unused", i)
		}
	}
}

func TestPivotCacheWorksheetSource(t *testing.T) {
	src := `<?xml version="1.0"?>
<pivotCacheDefinition xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <cacheSource type="worksheet">
    <worksheetSource ref="A1:C5" sheet="Data"/>
  </cacheSource>
  <cacheFields count="0"/>
</pivotCacheDefinition>`

	def := &fakePivotCacheDefinition{}
	repo := xmlns.NewRepository()
	repo.AddPredefined(PredefinedNamespaces)

	stack := ctxstack.NewStack(newPivotCacheDefinitionContext(def))
	nsCxt := repo.CreateContext()

	if err := xmlctx.Parse([]byte(src), stack, nsCxt, Tokens); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if def.sourceSheet != "Data" {
		t.Fatalf("got source sheet %q, want Data", def.sourceSheet)
	}
	want := spreadsheet.Range{FirstRow: 0, FirstCol: 0, LastRow: 4, LastCol: 2}
	if def.sourceRange != want {
		t.Fatalf("got range %+v, want %+v", def.sourceRange, want)
	}
	if def.fieldCount != 0 {
		t.Fatalf("got field count %d, want 0", def.fieldCount)
	}
}
