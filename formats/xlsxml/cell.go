package xlsxml

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

type cellContext struct {
	d       *doc
	sheet   spreadsheet.Sheet
	row     int
	colPtr  *int
	col     int
	styleID string
	formula string
	gotData bool
}

func newCellContext(d *doc, sheet spreadsheet.Sheet, row int, colPtr *int) *cellContext {
	return &cellContext{d: d, sheet: sheet, row: row, colPtr: colPtr}
}

func (c *cellContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *cellContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenData {
		return newDataContext()
	}
	return nil
}

func (c *cellContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token != TokenData {
		return
	}
	dc, ok := child.(*dataContext)
	if !ok {
		return
	}
	c.gotData = true
	c.commit(dc.dataType, dc.text)
}

func (c *cellContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenCell {
		return
	}
	if idx, ok := attrInt(attrs, TokenIndex); ok {
		*c.colPtr = idx - 1
	} else {
		*c.colPtr++
	}
	c.col = *c.colPtr
	c.styleID, _ = attrString(attrs, TokenStyleID)
	c.formula, _ = attrString(attrs, TokenFormula)
	if c.formula != "" {
		c.formula = strings.TrimPrefix(c.formula, "=")
	}

	if c.styleID != "" {
		if xfID, ok := c.d.xfByStyle[c.styleID]; ok {
			c.sheet.SetFormat(c.row, c.col, xfID)
		}
	}
}

func (c *cellContext) EndElement(name ctxstack.Name) bool {
	if name.Token != TokenCell {
		return false
	}
	if c.formula != "" && !c.gotData {
		c.commit("", nil)
	}
	return true
}

func (c *cellContext) Characters(strview.View, bool) {}

func (c *cellContext) commit(dataType string, text []byte) {
	if c.sheet == nil {
		return
	}

	if c.formula != "" {
		f := c.sheet.GetFormula()
		if f == nil {
			return
		}
		f.SetPosition(c.row, c.col)
		f.SetFormula(spreadsheet.GrammarXlsXML, []byte(c.formula))
		switch dataType {
		case "Number":
			if v, err := strconv.ParseFloat(string(text), 64); err == nil {
				f.SetResultValue(v)
			}
		case "Boolean":
			f.SetResultBool(bytes.Equal(text, []byte("1")))
		case "String":
			if ss := c.d.factory.SharedStrings(); ss != nil {
				f.SetResultString(ss.Add(text))
			}
		case "Error":
			f.SetResultError(string(text))
		default:
			f.SetResultEmpty()
		}
		f.Commit()
		return
	}

	switch dataType {
	case "Number":
		if v, err := strconv.ParseFloat(string(text), 64); err == nil {
			c.sheet.SetValue(c.row, c.col, v)
		}
	case "Boolean":
		c.sheet.SetBool(c.row, c.col, bytes.Equal(text, []byte("1")))
	case "String":
		if ss := c.d.factory.SharedStrings(); ss != nil {
			c.sheet.SetString(c.row, c.col, ss.Add(text))
		}
	case "DateTime":
		if y, mo, d, h, mi, s, ok := parseDateTime(string(text)); ok {
			c.sheet.SetDateTime(c.row, c.col, y, mo, d, h, mi, s)
		}
	default:
		c.sheet.SetAuto(c.row, c.col, text)
	}
}

// dataContext captures a <Data ss:Type="..."> leaf's type and text.
type dataContext struct {
	dataType string
	text     []byte
}

func newDataContext() *dataContext { return &dataContext{} }

func (c *dataContext) CanHandleElement(ctxstack.Name) bool                        { return false }
func (c *dataContext) CreateChildContext(ctxstack.Name) ctxstack.Context          { return nil }
func (c *dataContext) EndChildContext(ctxstack.Name, ctxstack.Context)            {}

func (c *dataContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenData {
		return
	}
	c.dataType, _ = attrString(attrs, TokenType)
	if c.dataType == "" {
		c.dataType = "String"
	}
}

func (c *dataContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenData
}

func (c *dataContext) Characters(text strview.View, transient bool) {
	c.text = append(c.text, text.Bytes()...)
}
