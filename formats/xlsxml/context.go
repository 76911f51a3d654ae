package xlsxml

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// doc is the shared state every context in one Import call can reach:
// the consumer-owned factory plus the style-id → xf-id cache spec.md
// §4.10's "style inheritance" section requires format handlers keep.
type doc struct {
	factory    spreadsheet.ImportFactory
	xfByStyle  map[string]int
	sheetIndex int
}

// rootContext only exists to hand the single <Workbook> root element to
// workbookContext; it holds no state of its own.
type rootContext struct {
	d *doc
}

func newRootContext(d *doc) *rootContext { return &rootContext{d: d} }

func (c *rootContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *rootContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenWorkbook {
		return newWorkbookContext(c.d)
	}
	return nil
}

func (c *rootContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *rootContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}
func (c *rootContext) EndElement(ctxstack.Name) bool                  { return true }
func (c *rootContext) Characters(strview.View, bool)                  {}
