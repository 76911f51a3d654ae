package gnumeric

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/strview"
)

// rootContext is the trivial top-of-stack wrapper every format handler
// in this module needs at the literal ctxstack.NewStack call: it
// recognizes only the single true document element and hands off to
// the real handler, mirroring formats/xlsxml's rootContext and
// formats/ods's contentRootContext.
type rootContext struct {
	d *doc
}

func newRootContext(d *doc) *rootContext { return &rootContext{d: d} }

func (c *rootContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *rootContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenWorkbook {
		return newWorkbookContext(c.d)
	}
	return newSkipContext(c.d, name.Token, "document-root")
}

func (c *rootContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *rootContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}
func (c *rootContext) EndElement(ctxstack.Name) bool                  { return true }
func (c *rootContext) Characters(strview.View, bool)                  {}

// workbookContext walks <gnm:Workbook>'s direct children: the
// <gnm:Sheets> wrapper (handled flatly, its <gnm:Sheet> children
// dispatched below) and a document-wide <gnm:Names> block.
type workbookContext struct {
	d          *doc
	nextSheet  int
}

func newWorkbookContext(d *doc) *workbookContext { return &workbookContext{d: d} }

func (c *workbookContext) CanHandleElement(name ctxstack.Name) bool {
	return name.Token == TokenSheets
}

func (c *workbookContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenSheet:
		sc := newSheetContext(c.d, c.nextSheet)
		c.nextSheet++
		return sc
	case TokenNames:
		return newNamesContext(c.d, c.d.factory.NamedExpression())
	default:
		return newSkipContext(c.d, name.Token, "Workbook-child")
	}
}

func (c *workbookContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token == TokenNames {
		if nc, ok := child.(*namesContext); ok {
			nc.commit()
		}
	}
}

func (c *workbookContext) StartElement(ctxstack.Name, []ctxstack.Attr) {}

func (c *workbookContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenWorkbook
}

func (c *workbookContext) Characters(strview.View, bool) {}
