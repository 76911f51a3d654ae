package gnumeric

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

type namedExpr struct {
	name, value string
}

// namesContext walks one <gnm:Names> block's <gnm:Name> children, each
// carrying <name>/<value>/<position> grandchildren; applied to target
// once the caller (workbookContext for the document-wide block,
// sheetContext for a per-sheet block) knows which NamedExpression to
// commit into. position (the named expression's base cell, src_address_t
// in the teacher) is read but not modeled further: spreadsheet.NamedExpression
// has no base-position concept distinct from the formula text itself.
type namesContext struct {
	d      *doc
	target spreadsheet.NamedExpression

	names       []namedExpr
	currentName namedExpr
	currentLeaf int
	buf         []byte
}

func newNamesContext(d *doc, target spreadsheet.NamedExpression) *namesContext {
	return &namesContext{d: d, target: target}
}

func (c *namesContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenName, TokenNameLower, TokenValue, TokenPosition:
		return true
	}
	return false
}

func (c *namesContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	return newSkipContext(c.d, name.Token, "Names-child")
}

func (c *namesContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *namesContext) StartElement(name ctxstack.Name, _ []ctxstack.Attr) {
	switch name.Token {
	case TokenName:
		c.currentName = namedExpr{}
	case TokenNameLower, TokenValue, TokenPosition:
		c.currentLeaf = name.Token
		c.buf = c.buf[:0]
	}
}

func (c *namesContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenNameLower:
		c.currentName.name = string(c.buf)
		c.currentLeaf = 0
		return false
	case TokenValue:
		c.currentName.value = string(c.buf)
		c.currentLeaf = 0
		return false
	case TokenPosition:
		c.currentLeaf = 0
		return false
	case TokenName:
		c.names = append(c.names, c.currentName)
		return false
	}
	return name.Token == TokenNames
}

func (c *namesContext) Characters(text strview.View, _ bool) {
	if c.currentLeaf == 0 {
		return
	}
	c.buf = append(c.buf, text.String()...)
}

// commit applies the accumulated (name, value) pairs, once the block
// has closed, as named expressions on target; entries with an empty
// name are skipped.
func (c *namesContext) commit() {
	if c.target == nil {
		return
	}
	for _, n := range c.names {
		if n.name == "" {
			continue
		}
		c.target.SetNamedExpression(n.name, spreadsheet.GrammarGnumeric, n.value)
	}
}
