package xlsx

import (
	"bytes"
	"strconv"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// worksheetContext is the root context for one sheetN.xml part.
type worksheetContext struct {
	d     *doc
	sheet spreadsheet.Sheet
}

func newWorksheetContext(d *doc, sheet spreadsheet.Sheet) *worksheetContext {
	return &worksheetContext{d: d, sheet: sheet}
}

func (c *worksheetContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *worksheetContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenSheetData {
		return newSheetDataContext(c.d, c.sheet)
	}
	return nil
}

func (c *worksheetContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *worksheetContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *worksheetContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenWorksheet
}

func (c *worksheetContext) Characters(strview.View, bool) {}

type sheetDataContext struct {
	d          *doc
	sheet      spreadsheet.Sheet
	currentRow int
}

func newSheetDataContext(d *doc, sheet spreadsheet.Sheet) *sheetDataContext {
	return &sheetDataContext{d: d, sheet: sheet, currentRow: -1}
}

func (c *sheetDataContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *sheetDataContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenRow {
		return newRowContext(c.d, c.sheet, &c.currentRow)
	}
	return nil
}

func (c *sheetDataContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *sheetDataContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *sheetDataContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenSheetData
}

func (c *sheetDataContext) Characters(strview.View, bool) {}

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
	if name.Token == TokenC {
		return newCellContext(c.d, c.sheet, c.row, &c.currentCol)
	}
	return nil
}

func (c *rowContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *rowContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenRow {
		return
	}
	if idx, ok := attrInt(attrs, TokenR); ok {
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

// cellContext handles one <c> cell: its optional <f> formula and
// <v>/<is> value, committing either a plain Sheet.Set* call or a
// Formula record once the cell closes.
type cellContext struct {
	d      *doc
	sheet  spreadsheet.Sheet
	row    int
	colPtr *int
	col    int

	cellType string
	haveXf   bool
	xfID     int

	haveFormula   bool
	formulaType   string
	formulaText   []byte
	formulaRef    string
	sharedIndex   int
	haveShared    bool

	haveValue bool
	value     []byte

	inInlineStr bool
	inlineText  []byte

	active *[]byte
}

func newCellContext(d *doc, sheet spreadsheet.Sheet, row int, colPtr *int) *cellContext {
	return &cellContext{d: d, sheet: sheet, row: row, colPtr: colPtr}
}

func (c *cellContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenV, TokenF, TokenIs, TokenT:
		return true
	}
	return false
}

func (c *cellContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *cellContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *cellContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenC:
		if ref, ok := attrString(attrs, TokenR); ok {
			if row, col, ok := cellRef(ref); ok {
				c.row, c.col = row, col
				*c.colPtr = col
			}
		} else {
			*c.colPtr++
			c.col = *c.colPtr
		}
		c.cellType, _ = attrString(attrs, TokenT)
		if c.cellType == "" {
			c.cellType = "n"
		}
		if idx, ok := attrInt(attrs, TokenS); ok {
			c.xfID, c.haveXf = idx, true
			if c.xfID < len(c.d.cellXfs) {
				c.sheet.SetFormat(c.row, c.col, c.d.cellXfs[c.xfID])
			}
		}
	case TokenF:
		c.haveFormula = true
		c.formulaType, _ = attrString(attrs, TokenT)
		c.formulaRef, _ = attrString(attrs, TokenRef)
		if idx, ok := attrInt(attrs, TokenSI); ok {
			c.sharedIndex, c.haveShared = idx, true
		}
		c.active = &c.formulaText
	case TokenV:
		c.active = &c.value
		c.haveValue = true
	case TokenIs:
		c.inInlineStr = true
	case TokenT:
		if c.inInlineStr {
			c.active = &c.inlineText
		}
	}
}

func (c *cellContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenV, TokenF, TokenT:
		c.active = nil
		return false
	case TokenIs:
		c.inInlineStr = false
		return false
	case TokenC:
		c.commit()
		return true
	}
	return false
}

func (c *cellContext) Characters(text strview.View, transient bool) {
	if c.active == nil {
		return
	}
	*c.active = append(*c.active, text.Bytes()...)
}

func (c *cellContext) commit() {
	if c.sheet == nil {
		return
	}

	if c.haveFormula {
		f := c.sheet.GetFormula()
		if f == nil {
			return
		}
		f.SetPosition(c.row, c.col)
		switch c.formulaType {
		case "shared":
			if len(c.formulaText) > 0 {
				f.SetFormula(spreadsheet.GrammarExcelA1, c.formulaText)
			}
			if c.haveShared {
				f.SetSharedFormulaIndex(c.sharedIndex)
			}
		default:
			f.SetFormula(spreadsheet.GrammarExcelA1, c.formulaText)
		}
		c.commitResult(func(v float64) { f.SetResultValue(v) },
			func(b bool) { f.SetResultBool(b) },
			func(id int) { f.SetResultString(id) },
			func(code string) { f.SetResultError(code) },
			f.SetResultEmpty)
		f.Commit()
		return
	}

	switch c.cellType {
	case "s":
		if idx, err := strconv.Atoi(string(c.value)); err == nil {
			c.sheet.SetString(c.row, c.col, idx)
		}
	case "str":
		if ss := c.d.factory.SharedStrings(); ss != nil {
			c.sheet.SetString(c.row, c.col, ss.Add(c.value))
		}
	case "inlineStr":
		if ss := c.d.factory.SharedStrings(); ss != nil {
			c.sheet.SetString(c.row, c.col, ss.Add(c.inlineText))
		}
	case "b":
		c.sheet.SetBool(c.row, c.col, bytes.Equal(c.value, []byte("1")))
	case "e":
		c.sheet.SetAuto(c.row, c.col, c.value)
	default:
		if !c.haveValue {
			return
		}
		if v, err := strconv.ParseFloat(string(c.value), 64); err == nil {
			c.sheet.SetValue(c.row, c.col, v)
		}
	}
}

// commitResult dispatches a formula's <v> result text according to the
// cell's t attribute, matching the plain-cell type switch above.
func (c *cellContext) commitResult(onValue func(float64), onBool func(bool), onString func(int), onError func(string), onEmpty func()) {
	if !c.haveValue {
		onEmpty()
		return
	}
	switch c.cellType {
	case "str":
		if ss := c.d.factory.SharedStrings(); ss != nil {
			onString(ss.Add(c.value))
		}
	case "b":
		onBool(bytes.Equal(c.value, []byte("1")))
	case "e":
		onError(string(c.value))
	default:
		if v, err := strconv.ParseFloat(string(c.value), 64); err == nil {
			onValue(v)
		}
	}
}
