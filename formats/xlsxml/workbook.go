package xlsxml

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/strview"
)

type workbookContext struct {
	d *doc
}

func newWorkbookContext(d *doc) *workbookContext {
	return &workbookContext{d: d}
}

func (c *workbookContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *workbookContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenStyles:
		return newStylesContext(c.d)
	case TokenWorksheet:
		return newWorksheetContext(c.d)
	default:
		return nil
	}
}

func (c *workbookContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *workbookContext) StartElement(ctxstack.Name, []ctxstack.Attr) {}

func (c *workbookContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenWorkbook
}

func (c *workbookContext) Characters(strview.View, bool) {}
