package gnumeric

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// gnumeric value-type codes, as specified in the Gnumeric source
// (GnmValueType): 10 empty, 20 boolean, (30 legacy)/40 float, 50
// error, 60 string, 70 cell-range, 80 array. The same codes are reused
// by a <gnm:Filter> Field's value-type attribute, which Gnumeric names
// Value0 (see filter.go).
const (
	valueTypeEmpty     = 10
	valueTypeBoolean   = 20
	valueTypeFloatOld  = 30
	valueTypeFloat     = 40
	valueTypeError     = 50
	valueTypeString    = 60
	valueTypeCellRange = 70
	valueTypeArray     = 80
)

type gnumericCellType int

const (
	cellTypeUnknown gnumericCellType = iota
	cellTypeValue
	cellTypeBool
	cellTypeString
	cellTypeFormula
	cellTypeSharedFormula
	cellTypeArray
)

// cellContext walks one <gnm:Cells> block's flat list of <gnm:Cell>
// children; sheetContext allocates a fresh cellContext for each
// <gnm:Cells> block.
type cellContext struct {
	d     *doc
	sheet spreadsheet.Sheet

	row, col             int
	cellType             gnumericCellType
	sharedFormulaID      int
	arrayRows, arrayCols int
	chars                []byte
}

func newCellContext(d *doc, sheet spreadsheet.Sheet) *cellContext {
	return &cellContext{d: d, sheet: sheet}
}

func (c *cellContext) CanHandleElement(name ctxstack.Name) bool {
	return name.Token == TokenCell
}

func (c *cellContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	return newSkipContext(c.d, name.Token, "Cell-child")
}

func (c *cellContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *cellContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenCell {
		return
	}
	c.cellType = cellTypeFormula
	c.sharedFormulaID = -1
	c.arrayRows, c.arrayCols = 0, 0
	c.chars = nil

	if v, ok := attrInt(attrs, TokenRow); ok {
		c.row = v
	}
	if v, ok := attrInt(attrs, TokenCol); ok {
		c.col = v
	}
	if v, ok := attrInt(attrs, TokenValueType); ok {
		switch v {
		case valueTypeBoolean:
			c.cellType = cellTypeBool
		case valueTypeFloatOld, valueTypeFloat:
			c.cellType = cellTypeValue
		case valueTypeString:
			c.cellType = cellTypeString
		}
	}
	if v, ok := attrInt(attrs, TokenExprID); ok {
		c.sharedFormulaID = v
		c.cellType = cellTypeSharedFormula
	}
	if v, ok := attrInt(attrs, TokenRows); ok {
		c.arrayRows = v
		c.cellType = cellTypeArray
	}
	if v, ok := attrInt(attrs, TokenCols); ok {
		c.arrayCols = v
		c.cellType = cellTypeArray
	}
}

func (c *cellContext) EndElement(name ctxstack.Name) bool {
	if name.Token == TokenCell {
		c.endCell()
		return false
	}
	return name.Token == TokenCells
}

func (c *cellContext) Characters(text strview.View, _ bool) {
	c.chars = append(c.chars, text.Bytes()...)
}

func (c *cellContext) endCell() {
	if c.sheet == nil {
		return
	}
	text := string(c.chars)
	switch c.cellType {
	case cellTypeValue:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err == nil {
			c.sheet.SetValue(c.row, c.col, v)
		}
	case cellTypeBool:
		c.sheet.SetBool(c.row, c.col, text == "TRUE")
	case cellTypeString:
		ss := c.d.factory.SharedStrings()
		if ss == nil {
			break
		}
		id := ss.Add([]byte(text))
		c.sheet.SetString(c.row, c.col, id)
	case cellTypeFormula, cellTypeSharedFormula:
		f := c.sheet.GetFormula()
		if f == nil || !strings.HasPrefix(text, "=") {
			break
		}
		f.SetPosition(c.row, c.col)
		f.SetFormula(spreadsheet.GrammarGnumeric, []byte(text[1:]))
		if c.cellType == cellTypeSharedFormula {
			f.SetSharedFormulaIndex(c.sharedFormulaID)
		}
		f.Commit()
	case cellTypeArray:
		af := c.sheet.GetArrayFormula()
		if af == nil || !strings.HasPrefix(text, "=") {
			break
		}
		af.SetRange(spreadsheet.Range{
			FirstRow: c.row, FirstCol: c.col,
			LastRow: c.row + c.arrayRows - 1, LastCol: c.col + c.arrayCols - 1,
		})
		af.SetFormula(spreadsheet.GrammarGnumeric, []byte(text[1:]))
		af.Commit()
	}
}
