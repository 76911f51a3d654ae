package xlsxml

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

type stylesContext struct {
	d *doc
}

func newStylesContext(d *doc) *stylesContext {
	return &stylesContext{d: d}
}

func (c *stylesContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *stylesContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenStyle {
		return newStyleContext(c.d)
	}
	return nil
}

func (c *stylesContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token != TokenStyle {
		return
	}
	sc, ok := child.(*styleContext)
	if !ok || sc.id == "" {
		return
	}
	styles := c.d.factory.Styles()
	if styles == nil {
		return
	}
	xf := styles.StartXf(spreadsheet.XfCategoryCell)
	if xf == nil {
		return
	}
	if sc.haveFont {
		xf.SetFont(sc.fontID)
	}
	if sc.haveFill {
		xf.SetFill(sc.fillID)
	}
	if sc.haveBorder {
		xf.SetBorder(sc.borderID)
	}
	if sc.haveProt {
		xf.SetProtection(sc.protID)
	}
	if sc.haveNumFmt {
		xf.SetNumberFormat(sc.numFmtID)
	}
	if sc.haveAlign {
		if sc.haveHoriz {
			xf.SetHorizontalAlignment(sc.horiz)
		}
		if sc.haveVert {
			xf.SetVerticalAlignment(sc.vert)
		}
		xf.SetWrapText(sc.wrapText)
		xf.SetApplyAlignment(true)
	}
	c.d.xfByStyle[sc.id] = xf.Commit()
}
func (c *stylesContext) StartElement(ctxstack.Name, []ctxstack.Attr) {}

func (c *stylesContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenStyles
}

func (c *stylesContext) Characters(strview.View, bool) {}

// styleContext handles one <Style ss:ID="..."> block and everything it
// directly owns (Font, Interior, Borders/Border, NumberFormat,
// Alignment, Protection); none of those need their own child context
// since they carry no further nesting this handler cares about.
type styleContext struct {
	d *doc

	id string

	haveFont, haveFill, haveBorder, haveProt, haveNumFmt, haveAlign bool
	fontID, fillID, borderID, protID, numFmtID                      int

	haveHoriz, haveVert bool
	horiz               spreadsheet.HorizontalAlignment
	vert                spreadsheet.VerticalAlignment
	wrapText            bool

	borderBuilder spreadsheet.BorderStyle
}

func newStyleContext(d *doc) *styleContext {
	return &styleContext{d: d}
}

func (c *styleContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenFont, TokenInterior, TokenNumberFormat, TokenAlignment, TokenProtection, TokenBorders, TokenBorder:
		return true
	}
	return false
}

func (c *styleContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *styleContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *styleContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	styles := c.d.factory.Styles()
	switch name.Token {
	case TokenStyle:
		if id, ok := attrString(attrs, TokenID); ok {
			c.id = id
		}
	case TokenFont:
		if styles == nil {
			return
		}
		f := styles.StartFontStyle()
		if f == nil {
			return
		}
		f.SetBold(attrBool(attrs, TokenBold))
		f.SetItalic(attrBool(attrs, TokenItalic))
		if sz, ok := attrFloat(attrs, TokenSize); ok {
			f.SetSize(sz)
		}
		if name, ok := attrString(attrs, TokenName); ok {
			f.SetName(name)
		}
		if col, ok := attrString(attrs, TokenColor); ok {
			if parsed, ok := parseColor(col); ok {
				f.SetColor(parsed)
			}
		}
		c.fontID = f.Commit()
		c.haveFont = true
	case TokenInterior:
		if styles == nil {
			return
		}
		fl := styles.StartFillStyle()
		if fl == nil {
			return
		}
		if col, ok := attrString(attrs, TokenColor); ok {
			if parsed, ok := parseColor(col); ok {
				fl.SetForegroundColor(parsed)
			}
		}
		if p, ok := attrString(attrs, TokenPattern); ok {
			fl.SetPatternType(patternTypeFromName(p))
		}
		c.fillID = fl.Commit()
		c.haveFill = true
	case TokenNumberFormat:
		if styles == nil {
			return
		}
		nf := styles.StartNumberFormat()
		if nf == nil {
			return
		}
		if code, ok := attrString(attrs, TokenFormat); ok {
			nf.SetCode([]byte(code))
		}
		c.numFmtID = nf.Commit()
		c.haveNumFmt = true
	case TokenAlignment:
		if h, ok := attrString(attrs, TokenHorizontal); ok {
			c.horiz, c.haveHoriz = horizontalAlignmentFromName(h), true
		}
		if v, ok := attrString(attrs, TokenVertical); ok {
			c.vert, c.haveVert = verticalAlignmentFromName(v), true
		}
		c.wrapText = attrBool(attrs, TokenWrapText)
		c.haveAlign = true
	case TokenProtection:
		if styles == nil {
			return
		}
		p := styles.StartCellProtection()
		if p == nil {
			return
		}
		p.SetLocked(attrBool(attrs, TokenProtected))
		c.protID = p.Commit()
		c.haveProt = true
	case TokenBorders:
		c.borderBuilder = nil
		if styles != nil {
			c.borderBuilder = styles.StartBorderStyle()
		}
	case TokenBorder:
		if c.borderBuilder == nil {
			return
		}
		pos, _ := attrString(attrs, TokenPosition)
		dir, ok := borderDirectionFromPosition(pos)
		if !ok {
			return
		}
		lineStyle, _ := attrString(attrs, TokenWeight)
		c.borderBuilder.SetStyle(dir, borderLineStyleFromName(lineStyle))
		if col, ok := attrString(attrs, TokenColor); ok {
			if parsed, ok := parseColor(col); ok {
				c.borderBuilder.SetColor(dir, parsed)
			}
		}
	}
}

func (c *styleContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenBorders:
		if c.borderBuilder != nil {
			c.borderID = c.borderBuilder.Commit()
			c.haveBorder = true
		}
		return false
	case TokenStyle:
		return true
	}
	return false
}

func (c *styleContext) Characters(strview.View, bool) {}
