package gnumeric

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// colRowStylesContext walks a <gnm:Sheet>'s own <gnm:Styles> block: a
// second, separate list of StyleRegion/Style pairs alongside the
// per-cell ones sheetContext handles inline, collected by the teacher
// (gnumeric_styles_context / pop_styles()) but with no further
// consumer visible in the reference sources read for this handler.
// Rather than leave the parsed data inert, each collected region is
// applied here as an alignment/wrap-only format range once the block
// closes (colRowStylesContext.apply, called from sheetContext's
// EndChildContext).
type colRowStylesContext struct {
	d          *doc
	sheetIndex int

	regions []regionData
	current *regionData
	xf      spreadsheet.Xf
}

func newColRowStylesContext(d *doc, sheetIndex int) *colRowStylesContext {
	return &colRowStylesContext{d: d, sheetIndex: sheetIndex}
}

func (c *colRowStylesContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenStyleRegion, TokenStyle:
		return true
	}
	return false
}

func (c *colRowStylesContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	return newSkipContext(c.d, name.Token, "Styles-child")
}

func (c *colRowStylesContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *colRowStylesContext) Characters(strview.View, bool)                  {}

func (c *colRowStylesContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenStyleRegion:
		r := regionData{}
		if v, ok := attrInt(attrs, TokenStartCol); ok {
			r.startCol = v
		}
		if v, ok := attrInt(attrs, TokenStartRow); ok {
			r.startRow = v
		}
		if v, ok := attrInt(attrs, TokenEndCol); ok {
			r.endCol = v
		}
		if v, ok := attrInt(attrs, TokenEndRow); ok {
			r.endRow = v
		}
		c.current = &r
	case TokenStyle:
		styles := c.d.factory.Styles()
		if styles == nil {
			return
		}
		c.xf = styles.StartXf(spreadsheet.XfCategoryCell)
		if c.xf == nil {
			return
		}
		if s, ok := attrString(attrs, TokenHAlign); ok {
			if align, ok := horizontalAlignFor(s); ok {
				c.xf.SetApplyAlignment(true)
				c.xf.SetHorizontalAlignment(align)
			}
		}
		if s, ok := attrString(attrs, TokenVAlign); ok {
			if align, ok := verticalAlignFor(s); ok {
				c.xf.SetApplyAlignment(true)
				c.xf.SetVerticalAlignment(align)
			}
		}
		if v, ok := attrInt(attrs, TokenWrapText); ok {
			c.xf.SetWrapText(v != 0)
		}
	}
}

func (c *colRowStylesContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenStyle:
		if c.xf != nil && c.current != nil {
			c.current.xfID = c.xf.Commit()
		}
		c.xf = nil
		return false
	case TokenStyleRegion:
		if c.current != nil {
			c.regions = append(c.regions, *c.current)
			c.current = nil
		}
		return false
	}
	return name.Token == TokenStyles
}

// apply commits each collected region as a plain (non-conditional)
// format range on sheet.
func (c *colRowStylesContext) apply(sheet spreadsheet.Sheet) {
	if sheet == nil {
		return
	}
	for _, r := range c.regions {
		sheet.SetFormatRange(r.rng(), r.xfID)
	}
}
