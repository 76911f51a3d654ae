package xlsx

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// stylesContext is the root context for styles.xml. OOXML's style
// tables are flat sibling lists (numFmts, fonts, fills, borders,
// cellStyleXfs, cellXfs, cellStyles) rather than nested per-record
// blocks, so one context handles every element directly and tracks
// "which list, which record" with plain fields instead of pushing a
// child context per record.
type stylesContext struct {
	d *doc

	section int // current TokenNumFmts/TokenFonts/... section, or TokenUnknown

	// accumulator for the font/fill/border/numFmt record currently open
	fontAcc       spreadsheet.FontStyle
	fillAcc       spreadsheet.FillStyle
	borderAcc     spreadsheet.BorderStyle
	borderDir     spreadsheet.BorderDirection
	haveBorderDir bool
	numFmtID      int

	// accumulator for the xf record currently open (either section)
	xfAcc        spreadsheet.Xf
	xfCategory   spreadsheet.XfCategory
	xfFontID     int
	xfHaveFont   bool
	xfFillID     int
	xfHaveFill   bool
	xfBorderID   int
	xfHaveBorder bool
	xfNumFmtID   int
	xfHaveNumFmt bool
	xfStyleXfID  int
	xfHaveStyle  bool

	cellStyleName    string
	cellStyleXfIdx   int
	cellStyleBuiltin int
	haveCellStyle    bool
}

func newStylesContext(d *doc) *stylesContext { return &stylesContext{d: d} }

func (c *stylesContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenNumFmts, TokenNumFmt,
		TokenFonts, TokenFont, TokenB, TokenI, TokenSz, TokenName, TokenColor,
		TokenFills, TokenFill, TokenPatternFill, TokenFgColor, TokenBgColor,
		TokenBorders, TokenBorder, TokenLeft, TokenRight, TokenTop, TokenBottom, TokenDiagonal,
		TokenCellStyleXfs, TokenCellXfs, TokenXf, TokenAlignment, TokenProtection,
		TokenCellStyles, TokenCellStyle:
		return true
	}
	return false
}

func (c *stylesContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *stylesContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *stylesContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	styles := c.d.factory.Styles()

	switch name.Token {
	case TokenNumFmts, TokenFonts, TokenFills, TokenBorders, TokenCellStyleXfs, TokenCellXfs, TokenCellStyles:
		c.section = name.Token

	case TokenNumFmt:
		if styles == nil {
			return
		}
		nf := styles.StartNumberFormat()
		if nf == nil {
			return
		}
		id, _ := attrInt(attrs, TokenNumFmtID)
		c.numFmtID = id
		if code, ok := attrString(attrs, TokenFormatCode); ok {
			nf.SetCode([]byte(code))
		}
		committed := nf.Commit()
		c.d.numFmtIDs[id] = committed

	case TokenFont:
		if styles != nil {
			c.fontAcc = styles.StartFontStyle()
		}

	case TokenB:
		if c.fontAcc != nil {
			c.fontAcc.SetBold(attrValOrTrue(attrs))
		}
	case TokenI:
		if c.fontAcc != nil {
			c.fontAcc.SetItalic(attrValOrTrue(attrs))
		}
	case TokenSz:
		if c.fontAcc != nil {
			if v, ok := attrFloat(attrs, TokenVal); ok {
				c.fontAcc.SetSize(v)
			}
		}
	case TokenName:
		if c.section == TokenFonts && c.fontAcc != nil {
			if v, ok := attrString(attrs, TokenVal); ok {
				c.fontAcc.SetName(v)
			}
		} else if c.section == TokenCellStyles {
			if v, ok := attrString(attrs, TokenVal); ok {
				c.cellStyleName = v
			}
		}
	case TokenColor:
		if col, ok := attrString(attrs, TokenRgb); ok {
			if parsed, ok := parseColor(col); ok {
				switch {
				case c.section == TokenFonts && c.fontAcc != nil:
					c.fontAcc.SetColor(parsed)
				case c.section == TokenBorders && c.borderAcc != nil && c.haveBorderDir:
					c.borderAcc.SetColor(c.borderDir, parsed)
				}
			}
		}

	case TokenFill:
		if styles != nil {
			c.fillAcc = styles.StartFillStyle()
		}
	case TokenPatternFill:
		if p, ok := attrString(attrs, TokenPatternType); ok && c.fillAcc != nil {
			c.fillAcc.SetPatternType(patternTypeFromName(p))
		}
	case TokenFgColor:
		if c.fillAcc != nil {
			if col, ok := attrString(attrs, TokenRgb); ok {
				if parsed, ok := parseColor(col); ok {
					c.fillAcc.SetForegroundColor(parsed)
				}
			}
		}
	case TokenBgColor:
		if c.fillAcc != nil {
			if col, ok := attrString(attrs, TokenRgb); ok {
				if parsed, ok := parseColor(col); ok {
					c.fillAcc.SetBackgroundColor(parsed)
				}
			}
		}

	case TokenBorder:
		if styles != nil {
			c.borderAcc = styles.StartBorderStyle()
		}
		c.haveBorderDir = false
	case TokenLeft, TokenRight, TokenTop, TokenBottom, TokenDiagonal:
		c.borderDir, c.haveBorderDir = borderDirectionFromToken(name.Token), true
		if c.borderAcc == nil {
			return
		}
		if style, ok := attrString(attrs, TokenStyleAttr); ok {
			c.borderAcc.SetStyle(c.borderDir, borderLineStyleFromName(style))
		}

	case TokenXf:
		if styles == nil {
			return
		}
		c.xfCategory = xfCategoryForSection(c.section)
		c.xfAcc = styles.StartXf(c.xfCategory)
		c.xfHaveFont, c.xfHaveFill, c.xfHaveBorder, c.xfHaveNumFmt, c.xfHaveStyle = false, false, false, false, false
		if id, ok := attrInt(attrs, TokenFontID); ok {
			c.xfFontID, c.xfHaveFont = id, true
		}
		if id, ok := attrInt(attrs, TokenFillID); ok {
			c.xfFillID, c.xfHaveFill = id, true
		}
		if id, ok := attrInt(attrs, TokenBorderID); ok {
			c.xfBorderID, c.xfHaveBorder = id, true
		}
		if id, ok := attrInt(attrs, TokenNumFmtID); ok {
			c.xfNumFmtID, c.xfHaveNumFmt = id, true
		}
		if id, ok := attrInt(attrs, TokenXfID); ok && c.section == TokenCellXfs {
			c.xfStyleXfID, c.xfHaveStyle = id, true
		}

	case TokenAlignment:
		if c.xfAcc == nil {
			return
		}
		if h, ok := attrString(attrs, TokenHorizontal); ok {
			c.xfAcc.SetHorizontalAlignment(horizontalAlignmentFromName(h))
		}
		if v, ok := attrString(attrs, TokenVertical); ok {
			c.xfAcc.SetVerticalAlignment(verticalAlignmentFromName(v))
		}
		if wrap, ok := attrBool(attrs, TokenWrapText); ok {
			c.xfAcc.SetWrapText(wrap)
		}
		c.xfAcc.SetApplyAlignment(true)

	case TokenProtection:
		if c.xfAcc == nil || styles == nil {
			return
		}
		prot := styles.StartCellProtection()
		if prot == nil {
			return
		}
		if locked, ok := attrBool(attrs, TokenLocked); ok {
			prot.SetLocked(locked)
		}
		if hidden, ok := attrBool(attrs, TokenHidden); ok {
			prot.SetHidden(hidden)
		}
		c.xfAcc.SetProtection(prot.Commit())

	case TokenCellStyle:
		if n, ok := attrString(attrs, TokenName); ok {
			c.cellStyleName = n
		}
		if id, ok := attrInt(attrs, TokenXfID); ok {
			c.cellStyleXfIdx, c.haveCellStyle = id, true
		}
		if id, ok := attrInt(attrs, TokenBuiltinID); ok {
			c.cellStyleBuiltin = id
		}
	}
}

func (c *stylesContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenFont:
		id := 0
		if c.fontAcc != nil {
			id = c.fontAcc.Commit()
		}
		c.fontAcc = nil
		c.d.fontIDs = append(c.d.fontIDs, id)
	case TokenFill:
		id := 0
		if c.fillAcc != nil {
			id = c.fillAcc.Commit()
		}
		c.fillAcc = nil
		c.d.fillIDs = append(c.d.fillIDs, id)
	case TokenBorder:
		id := 0
		if c.borderAcc != nil {
			id = c.borderAcc.Commit()
		}
		c.borderAcc = nil
		c.d.borderIDs = append(c.d.borderIDs, id)
	case TokenXf:
		if c.xfAcc == nil {
			c.appendXf(0)
			return false
		}
		if c.xfHaveFont && c.xfFontID < len(c.d.fontIDs) {
			c.xfAcc.SetFont(c.d.fontIDs[c.xfFontID])
		}
		if c.xfHaveFill && c.xfFillID < len(c.d.fillIDs) {
			c.xfAcc.SetFill(c.d.fillIDs[c.xfFillID])
		}
		if c.xfHaveBorder && c.xfBorderID < len(c.d.borderIDs) {
			c.xfAcc.SetBorder(c.d.borderIDs[c.xfBorderID])
		}
		if c.xfHaveNumFmt {
			if id, ok := c.d.numFmtIDs[c.xfNumFmtID]; ok {
				c.xfAcc.SetNumberFormat(id)
			}
		}
		if c.xfHaveStyle && c.xfStyleXfID < len(c.d.cellStyleXfs) {
			c.xfAcc.SetStyleXf(c.d.cellStyleXfs[c.xfStyleXfID])
		}
		c.appendXf(c.xfAcc.Commit())
		c.xfAcc = nil
	case TokenCellStyle:
		if styles := c.d.factory.Styles(); styles != nil && c.haveCellStyle {
			cs := styles.StartCellStyle()
			if cs != nil {
				cs.SetName(c.cellStyleName)
				if c.cellStyleXfIdx < len(c.d.cellStyleXfs) {
					cs.SetXf(c.d.cellStyleXfs[c.cellStyleXfIdx])
				}
				cs.SetBuiltin(c.cellStyleBuiltin)
				cs.Commit()
			}
		}
		c.haveCellStyle = false
	case TokenNumFmts, TokenFonts, TokenFills, TokenBorders, TokenCellStyleXfs, TokenCellXfs, TokenCellStyles:
		c.section = TokenUnknown
	case TokenStyleSheet:
		return true
	}
	return false
}

func (c *stylesContext) appendXf(id int) {
	if c.xfCategory == spreadsheet.XfCategoryCellStyle {
		c.d.cellStyleXfs = append(c.d.cellStyleXfs, id)
	} else {
		c.d.cellXfs = append(c.d.cellXfs, id)
	}
}

func (c *stylesContext) Characters(strview.View, bool) {}

func xfCategoryForSection(section int) spreadsheet.XfCategory {
	if section == TokenCellStyleXfs {
		return spreadsheet.XfCategoryCellStyle
	}
	return spreadsheet.XfCategoryCell
}

// attrValOrTrue implements CT_BooleanProperty: presence means true
// unless an explicit val="0"/"false" overrides it.
func attrValOrTrue(attrs []ctxstack.Attr) bool {
	if v, ok := attrBool(attrs, TokenVal); ok {
		return v
	}
	return true
}
