package odfstyles

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/strview"
)

// Context walks one <style:style> element and every property child it
// can have, regardless of family (CanHandleElement accepts all of
// them flatly; a property element irrelevant to this style's actual
// family is simply a style nobody ever reads out). The caller pushes
// a fresh Context per <style:style> start tag and, once it pops,
// retrieves the finished Style via Style().
type Context struct {
	style *Style
}

// NewContext starts a new, empty style record.
func NewContext() *Context {
	return &Context{style: &Style{}}
}

// Style returns the record accumulated so far; valid to call once
// EndElement has returned true for the owning <style:style> tag.
func (c *Context) Style() *Style { return c.style }

func (c *Context) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenTableCellProperties, TokenTableColumnProperties, TokenTableRowProperties,
		TokenTextProperties, TokenParagraphProperties, TokenGraphicProperties:
		return true
	}
	return false
}

func (c *Context) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *Context) EndChildContext(ctxstack.Name, ctxstack.Context)   {}
func (c *Context) Characters(strview.View, bool)                    {}

func (c *Context) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenStyle:
		if v, ok := attrString(attrs, TokenName); ok {
			c.style.Name = v
		}
		if v, ok := attrString(attrs, TokenFamily); ok {
			c.style.Family = FamilyFromAttr(v)
		}
		if v, ok := attrString(attrs, TokenParentStyleName); ok {
			c.style.ParentName = v
		}
		if v, ok := attrString(attrs, TokenDataStyleName); ok {
			c.style.DataStyleName = v
		}
	case TokenTableCellProperties:
		c.parseTableCellProperties(attrs)
	case TokenTableColumnProperties:
		if v, ok := attrLengthPt(attrs, TokenColumnWidth); ok {
			c.style.HasColumnWidth, c.style.ColumnWidthPt = true, v
		}
	case TokenTableRowProperties:
		if v, ok := attrLengthPt(attrs, TokenRowHeight); ok {
			c.style.HasRowHeight, c.style.RowHeightPt = true, v
		}
	case TokenTextProperties:
		c.parseTextProperties(attrs)
	case TokenParagraphProperties:
		c.parseParagraphProperties(attrs)
	}
}

func (c *Context) parseTableCellProperties(attrs []ctxstack.Attr) {
	if v, ok := attrString(attrs, TokenBackgroundColor); ok {
		if color, ok := parseHexColor(v); ok {
			c.style.HasFill, c.style.FillColor = true, color
		}
	}
	if v, ok := attrString(attrs, TokenBorder); ok {
		spec, ok := parseBorderSpec(v)
		if ok {
			for dir := 0; dir < 4; dir++ { // top/bottom/left/right, not diagonal
				c.style.HasBorder[dir], c.style.Border[dir] = true, spec
			}
		}
	}
	setSide := func(token int, dir int) {
		if v, ok := attrString(attrs, token); ok {
			if spec, ok := parseBorderSpec(v); ok {
				c.style.HasBorder[dir], c.style.Border[dir] = true, spec
			}
		}
	}
	setSide(TokenBorderTop, 0)
	setSide(TokenBorderBottom, 1)
	setSide(TokenBorderLeft, 2)
	setSide(TokenBorderRight, 3)
}

func (c *Context) parseTextProperties(attrs []ctxstack.Attr) {
	c.style.HasFont = true
	if v, ok := attrString(attrs, TokenFontName); ok {
		c.style.FontName = v
	}
	if v, ok := attrLengthPt(attrs, TokenFontSize); ok {
		c.style.HaveSize, c.style.FontSize = true, v
	}
	if v, ok := attrString(attrs, TokenFontWeight); ok {
		c.style.Bold = v == "bold"
	}
	if v, ok := attrString(attrs, TokenFontStyle); ok {
		c.style.Italic = v == "italic"
	}
	if v, ok := attrString(attrs, TokenTextUnderlineStyle); ok {
		c.style.Underline = v != "" && v != "none"
	}
	if v, ok := attrString(attrs, TokenColor); ok {
		if color, ok := parseHexColor(v); ok {
			c.style.HasFontColor, c.style.FontColor = true, color
		}
	}
}

func (c *Context) parseParagraphProperties(attrs []ctxstack.Attr) {
	c.style.HasAlign = true
	if v, ok := attrString(attrs, TokenTextAlign); ok {
		c.style.HAlign = horizontalAlignFromAttr(v)
	}
	if v, ok := attrString(attrs, TokenVerticalAlign); ok {
		c.style.VAlign = verticalAlignFromAttr(v)
	}
	if v, ok := attrString(attrs, TokenWrapOption); ok {
		c.style.WrapText = v == "wrap"
	}
}

func (c *Context) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenStyle
}

func attrString(attrs []ctxstack.Attr, token int) (string, bool) {
	for _, a := range attrs {
		if a.Name.Token == token {
			return a.Value.String(), true
		}
	}
	return "", false
}

// attrLengthPt parses an ODF length value ("12pt", "0.5in", "3cm")
// into points; units other than pt are converted, an absent unit is
// treated as already being in points.
func attrLengthPt(attrs []ctxstack.Attr, token int) (float64, bool) {
	v, ok := attrString(attrs, token)
	if !ok {
		return 0, false
	}
	return parseLengthPt(v)
}

func parseLengthPt(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	units := map[string]float64{
		"pt": 1,
		"in": 72,
		"cm": 72 / 2.54,
		"mm": 72 / 25.4,
		"px": 0.75,
	}
	for suffix, factor := range units {
		if strings.HasSuffix(v, suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(v, suffix), 64)
			if err != nil {
				return 0, false
			}
			return n * factor, true
		}
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseBorderSpec splits an fo:border-* value of the form
// "<width> <style> <color>" (e.g. "0.75pt solid #000000"); a missing
// width or color is left at its zero value, and a missing style
// defaults to solid.
func parseBorderSpec(v string) (BorderSpec, bool) {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return BorderSpec{}, false
	}
	spec := BorderSpec{Style: borderLineStyleFromAttr("solid")}
	if len(fields) > 0 {
		if w, ok := parseLengthPt(fields[0]); ok {
			spec.WidthPt = w
		}
	}
	if len(fields) > 1 {
		spec.Style = borderLineStyleFromAttr(fields[1])
	}
	if len(fields) > 2 {
		if color, ok := parseHexColor(fields[2]); ok {
			spec.Color, spec.HasColor = color, true
		}
	}
	return spec, true
}
