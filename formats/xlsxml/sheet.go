package xlsxml

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

type worksheetContext struct {
	d     *doc
	sheet spreadsheet.Sheet
}

func newWorksheetContext(d *doc) *worksheetContext {
	return &worksheetContext{d: d}
}

func (c *worksheetContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *worksheetContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenTable {
		return newTableContext(c.d, c.sheet)
	}
	return nil
}

func (c *worksheetContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *worksheetContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenWorksheet {
		return
	}
	sheetName, _ := attrString(attrs, TokenName)
	c.sheet = c.d.factory.AppendSheet(c.d.sheetIndex, sheetName)
	c.d.sheetIndex++
}

func (c *worksheetContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenWorksheet
}

func (c *worksheetContext) Characters(strview.View, bool) {}

type tableContext struct {
	d         *doc
	sheet     spreadsheet.Sheet
	currentRow int
}

func newTableContext(d *doc, sheet spreadsheet.Sheet) *tableContext {
	return &tableContext{d: d, sheet: sheet, currentRow: -1}
}

func (c *tableContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *tableContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenRow {
		return newRowContext(c.d, c.sheet, &c.currentRow)
	}
	return nil
}

func (c *tableContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *tableContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *tableContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenTable
}

func (c *tableContext) Characters(strview.View, bool) {}

type rowContext struct {
	d          *doc
	sheet      spreadsheet.Sheet
	rowPtr     *int
	row        int
	currentCol int
}

func newRowContext(d *doc, sheet spreadsheet.Sheet, rowPtr *int) *rowContext {
	return &rowContext{d: d, sheet: sheet, rowPtr: rowPtr, currentCol: -1}
}

func (c *rowContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *rowContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenCell {
		return newCellContext(c.d, c.sheet, c.row, &c.currentCol)
	}
	return nil
}

func (c *rowContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *rowContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenRow {
		return
	}
	if idx, ok := attrInt(attrs, TokenIndex); ok {
		*c.rowPtr = idx - 1
	} else {
		*c.rowPtr++
	}
	c.row = *c.rowPtr
}

func (c *rowContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenRow
}

func (c *rowContext) Characters(strview.View, bool) {}
