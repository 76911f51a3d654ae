package gnumeric

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/strview"
)

// skipContext discards an entire unsupported subtree (SheetLayout,
// Selections, Print setup, and anything else this handler declines),
// matching the teacher's own warn_unhandled()+continue behavior rather
// than aborting the whole import. It stays on top of the stack for the
// subtree's full depth, since treating every nested element as
// "handled here" (CanHandleElement always true) is what lets an
// unknown element's own unknown children pass through without ever
// needing a child context of their own.
type skipContext struct {
	d         *doc
	rootToken int
	rootName  string
	depth     int
	warned    bool
}

func newSkipContext(d *doc, rootToken int, rootName string) *skipContext {
	return &skipContext{d: d, rootToken: rootToken, rootName: rootName}
}

func (c *skipContext) CanHandleElement(ctxstack.Name) bool { return true }

func (c *skipContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *skipContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *skipContext) StartElement(ctxstack.Name, []ctxstack.Attr) {
	if !c.warned {
		c.d.sink.Warnf("gnumeric: skipping unhandled element %q", c.rootName)
		c.warned = true
	}
	c.depth++
}

func (c *skipContext) EndElement(ctxstack.Name) bool {
	c.depth--
	return c.depth == 0
}

func (c *skipContext) Characters(strview.View, bool) {}
