package ods

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// namedExpressionsContext walks one <office:named-expressions> (or
// <table:named-expressions>) block's <table:named-range> children,
// applied against whichever spreadsheet.NamedExpression target the
// caller supplies: the factory's workbook-scoped one for a block found
// directly under office:spreadsheet, or a sheet's own
// Sheet.NamedExpression() for one nested inside a table:table (a
// sheet-scoped name shadows a workbook-scoped one of the same
// identifier, spreadsheet.NamedExpression's own doc comment).
type namedExpressionsContext struct {
	d         *doc
	target    spreadsheet.NamedExpression
	rootToken int
}

func newNamedExpressionsContext(d *doc, target spreadsheet.NamedExpression, rootToken int) *namedExpressionsContext {
	return &namedExpressionsContext{d: d, target: target, rootToken: rootToken}
}

func (c *namedExpressionsContext) CanHandleElement(name ctxstack.Name) bool {
	return name.Token == TokenNamedRange
}

func (c *namedExpressionsContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *namedExpressionsContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}
func (c *namedExpressionsContext) Characters(strview.View, bool)                    {}

func (c *namedExpressionsContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenNamedRange || c.target == nil {
		return
	}
	rangeName, ok := attrString(attrs, odfstyles.TokenName)
	if !ok {
		return
	}
	addr, ok := attrString(attrs, TokenCellRangeAddress)
	if !ok {
		return
	}
	sheetName, rng, ok := parseCellRangeAddress(addr)
	if !ok {
		c.d.sink.Warnf("ods: malformed cell-range-address %q on named range %q", addr, rangeName)
		return
	}
	c.target.SetNamedRange(rangeName, sheetName, rng)
}

func (c *namedExpressionsContext) EndElement(name ctxstack.Name) bool {
	return name.Token == c.rootToken
}
