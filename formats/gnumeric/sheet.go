package gnumeric

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// sheetFlatTokens are the elements sheetContext handles directly
// rather than dispatching to a child context: wrapper elements with no
// state of their own (Cols, Rows, MergedRegions, Filters, Selections,
// SheetLayout) plus the leaf elements nested one level inside them
// (ColInfo, RowInfo, Merge) and the region-style elements (Style,
// StyleRegion, Font, Condition, Expression0/1, Name).
var sheetFlatTokens = map[int]bool{
	TokenCols: true, TokenColInfo: true,
	TokenRows: true, TokenRowInfo: true,
	TokenMergedRegions: true, TokenMerge: true,
	TokenFilters:     true,
	TokenSelections:  true,
	TokenSheetLayout: true,
	TokenMaxCol:      true, TokenMaxRow: true,
	TokenFont: true, TokenName: true,
	TokenStyle: true, TokenStyleRegion: true,
	TokenCondition: true, TokenExpression0: true, TokenExpression1: true,
}

// regionData is one <gnm:StyleRegion>'s accumulated extent, resolved
// xf id, and (if a <gnm:Condition> child was seen) conditional-format
// handle.
type regionData struct {
	startRow, startCol, endRow, endCol int
	xfID                               int

	cond spreadsheet.ConditionalFormat
	rule spreadsheet.ConditionalFormatRule
}

func (r regionData) rng() spreadsheet.Range {
	return spreadsheet.Range{FirstRow: r.startRow, FirstCol: r.startCol, LastRow: r.endRow, LastCol: r.endCol}
}

// sheetContext walks one <gnm:Sheet> element: its own <gnm:Name>
// (resolving mp_sheet, the teacher's get_sheet-by-name lookup
// generalized here to AppendSheet since nothing pre-registers sheets
// ahead of the walk), its Cells/Cols/Rows/MergedRegions/Filters/Names/
// Styles children, and inline region-style/font/conditional-format
// handling the teacher keeps flat rather than in child contexts.
type sheetContext struct {
	d          *doc
	sheetIndex int
	sheet      spreadsheet.Sheet

	leaf int // currently open leaf element capturing character data (TokenName or TokenMerge), 0 if none
	buf  []byte

	xf            spreadsheet.Xf
	frontColor    spreadsheet.Color
	hasFrontColor bool
	fontStyle     spreadsheet.FontStyle
	fillSet       bool
	protectionSet bool

	region    *regionData
	inCondition bool
}

func newSheetContext(d *doc, sheetIndex int) *sheetContext {
	return &sheetContext{d: d, sheetIndex: sheetIndex}
}

func (c *sheetContext) CanHandleElement(name ctxstack.Name) bool {
	return sheetFlatTokens[name.Token]
}

func (c *sheetContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenCells:
		return newCellContext(c.d, c.sheet)
	case TokenFilter:
		return newFilterContext(c.d, c.sheet)
	case TokenNames:
		var target spreadsheet.NamedExpression
		if c.sheet != nil {
			target = c.sheet.NamedExpression()
		}
		return newNamesContext(c.d, target)
	case TokenStyles:
		return newColRowStylesContext(c.d, c.sheetIndex)
	default:
		return newSkipContext(c.d, name.Token, "Sheet-child")
	}
}

func (c *sheetContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	switch name.Token {
	case TokenNames:
		if nc, ok := child.(*namesContext); ok {
			nc.commit()
		}
	case TokenStyles:
		if sc, ok := child.(*colRowStylesContext); ok {
			sc.apply(c.sheet)
		}
	}
}

func (c *sheetContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenName:
		c.leaf = TokenName
		c.buf = c.buf[:0]
	case TokenMerge:
		c.leaf = TokenMerge
		c.buf = c.buf[:0]
	case TokenFont:
		c.startFont(attrs)
	case TokenStyle:
		c.startStyle(attrs)
	case TokenStyleRegion:
		c.startStyleRegion(attrs)
	case TokenColInfo:
		// ColInfo's width/hidden attributes have no corresponding
		// per-column setter on spreadsheet.SheetProperties (only
		// sheet-wide defaults), so nothing in this handler's target
		// interface can carry them.
	case TokenRowInfo:
		// see ColInfo above.
	case TokenCondition:
		c.startCondition(attrs)
	case TokenExpression0:
		c.leaf = TokenExpression0
		c.buf = c.buf[:0]
	case TokenExpression1:
		c.leaf = TokenExpression1
		c.buf = c.buf[:0]
	}
}

func (c *sheetContext) startFont(attrs []ctxstack.Attr) {
	styles := c.d.factory.Styles()
	if styles == nil {
		return
	}
	c.fontStyle = styles.StartFontStyle()
	if c.fontStyle == nil {
		return
	}
	if v, ok := attrFloat(attrs, TokenUnit); ok {
		c.fontStyle.SetSize(v)
	}
	if v, ok := attrInt(attrs, TokenBold); ok {
		c.fontStyle.SetBold(v != 0)
	}
	if v, ok := attrInt(attrs, TokenItalic); ok {
		c.fontStyle.SetItalic(v != 0)
	}
	if v, ok := attrInt(attrs, TokenUnderline); ok {
		c.fontStyle.SetUnderline(v != 0)
	}
	c.leaf = TokenFont
	c.buf = c.buf[:0]
}

func (c *sheetContext) startStyle(attrs []ctxstack.Attr) {
	styles := c.d.factory.Styles()
	if styles == nil {
		return
	}
	fill := styles.StartFillStyle()
	protection := styles.StartCellProtection()
	c.xf = styles.StartXf(spreadsheet.XfCategoryCell)
	if c.xf == nil {
		return
	}
	c.fillSet, c.protectionSet = false, false

	if s, ok := attrString(attrs, TokenFore); ok {
		if r, g, b, ok := parseGnumericRGB(s); ok && fill != nil {
			color := spreadsheet.Color{A: 0xFF, R: r, G: g, B: b}
			fill.SetForegroundColor(color)
			c.fillSet = true
			c.frontColor, c.hasFrontColor = color, true
		}
	}
	if s, ok := attrString(attrs, TokenBack); ok {
		if r, g, b, ok := parseGnumericRGB(s); ok && fill != nil {
			fill.SetBackgroundColor(spreadsheet.Color{A: 0xFF, R: r, G: g, B: b})
			c.fillSet = true
		}
	}
	if v, ok := attrInt(attrs, TokenHidden); ok && protection != nil {
		protection.SetHidden(v != 0)
		c.protectionSet = true
	}
	if v, ok := attrInt(attrs, TokenLocked); ok && protection != nil {
		protection.SetLocked(v != 0)
		c.protectionSet = true
	}
	if s, ok := attrString(attrs, TokenFormat); ok && s != "General" {
		nf := styles.StartNumberFormat()
		if nf != nil {
			nf.SetCode([]byte(s))
			c.xf.SetNumberFormat(nf.Commit())
		}
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

	if c.fillSet && fill != nil {
		c.xf.SetFill(fill.Commit())
	}
	if c.protectionSet && protection != nil {
		c.xf.SetProtection(protection.Commit())
	}
}

func (c *sheetContext) startStyleRegion(attrs []ctxstack.Attr) {
	r := &regionData{}
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
	c.region = r
}

func (c *sheetContext) startCondition(attrs []ctxstack.Attr) {
	if c.sheet == nil || c.region == nil {
		return
	}
	c.inCondition = true
	if c.region.cond == nil {
		c.region.cond = c.sheet.GetConditionalFormat()
	}
	if c.region.cond == nil {
		return
	}
	op, ruleType := spreadsheet.FilterEqual, spreadsheet.RuleExpression
	hasOp := false
	if v, ok := attrInt(attrs, TokenOperator); ok {
		if mapped, ok := conditionOperatorFor(v); ok {
			op, ruleType, hasOp = mapped, spreadsheet.RuleCellIs, true
		}
	}
	c.region.rule = c.region.cond.StartRule(ruleType)
	if c.region.rule != nil && hasOp {
		c.region.rule.SetOperator(op)
	}
}

func (c *sheetContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenName:
		c.endName()
		return false
	case TokenMerge:
		c.endMerge()
		return false
	case TokenFont:
		c.endFont()
		return false
	case TokenStyle:
		c.endStyle()
		return false
	case TokenStyleRegion:
		c.endStyleRegion()
		return false
	case TokenCondition:
		c.endCondition()
		return false
	case TokenExpression0, TokenExpression1:
		c.endExpression()
		return false
	}
	return name.Token == TokenSheet
}

func (c *sheetContext) endName() {
	name := string(c.buf)
	c.leaf = 0
	if name == "" {
		return
	}
	c.sheet = c.d.factory.AppendSheet(c.sheetIndex, name)
}

func (c *sheetContext) endMerge() {
	area := string(c.buf)
	c.leaf = 0
	if c.sheet == nil || area == "" || c.d.resolver == nil {
		return
	}
	if _, _, ok := c.d.resolver.ResolveRange(area); !ok {
		c.d.sink.Warnf("gnumeric: failed to parse merged area %q", area)
	}
	// spreadsheet.SheetProperties has no merge-cell-range setter, so a
	// resolved area has nowhere to go; see DESIGN.md.
}

func (c *sheetContext) endFont() {
	if c.fontStyle == nil {
		return
	}
	name := string(c.buf)
	c.leaf = 0
	c.fontStyle.SetName(name)
	if c.hasFrontColor {
		c.fontStyle.SetColor(c.frontColor)
	}
	fontID := c.fontStyle.Commit()
	c.fontStyle = nil
	if c.xf != nil {
		c.xf.SetFont(fontID)
	}
}

func (c *sheetContext) endStyle() {
	if c.xf == nil {
		return
	}
	xfID := c.xf.Commit()
	c.xf = nil
	if c.inCondition {
		if c.region != nil && c.region.rule != nil {
			c.region.rule.SetXf(xfID)
		}
		return
	}
	if c.region != nil {
		c.region.xfID = xfID
	}
}

func (c *sheetContext) endStyleRegion() {
	r := c.region
	c.region = nil
	if r == nil || c.sheet == nil {
		return
	}
	if r.cond != nil {
		r.cond.SetRange(r.rng())
		r.cond.Commit()
		return
	}
	c.sheet.SetFormatRange(r.rng(), r.xfID)
}

func (c *sheetContext) endCondition() {
	c.inCondition = false
	if c.region != nil && c.region.rule != nil {
		c.region.rule.Commit()
		c.region.rule = nil
	}
}

func (c *sheetContext) endExpression() {
	if c.region == nil || c.region.rule == nil {
		c.leaf = 0
		return
	}
	text := string(c.buf)
	c.leaf = 0
	if text != "" {
		c.region.rule.SetFormula(spreadsheet.GrammarGnumeric, []byte(text))
	}
}

func (c *sheetContext) Characters(text strview.View, _ bool) {
	switch c.leaf {
	case TokenName, TokenMerge, TokenFont, TokenExpression0, TokenExpression1:
		c.buf = append(c.buf, text.String()...)
	}
}

func horizontalAlignFor(s string) (spreadsheet.HorizontalAlignment, bool) {
	switch s {
	case "GNM_HALIGN_CENTER":
		return spreadsheet.HAlignCenter, true
	case "GNM_HALIGN_RIGHT":
		return spreadsheet.HAlignRight, true
	case "GNM_HALIGN_LEFT":
		return spreadsheet.HAlignLeft, true
	case "GNM_HALIGN_JUSTIFY":
		return spreadsheet.HAlignJustify, true
	case "GNM_HALIGN_DISTRIBUTED":
		return spreadsheet.HAlignDistributed, true
	case "GNM_HALIGN_FILL":
		return spreadsheet.HAlignFill, true
	}
	return spreadsheet.HAlignDefault, false
}

func verticalAlignFor(s string) (spreadsheet.VerticalAlignment, bool) {
	switch s {
	case "GNM_VALIGN_BOTTOM":
		return spreadsheet.VAlignBottom, true
	case "GNM_VALIGN_TOP":
		return spreadsheet.VAlignTop, true
	case "GNM_VALIGN_CENTER":
		return spreadsheet.VAlignCenter, true
	case "GNM_VALIGN_JUSTIFY":
		return spreadsheet.VAlignJustify, true
	case "GNM_VALIGN_DISTRIBUTED":
		return spreadsheet.VAlignDistributed, true
	}
	return spreadsheet.VAlignDefault, false
}

// conditionOperatorFor maps Gnumeric's numeric GnmStyleCondition
// operator code onto spreadsheet.FilterOp where a direct equivalent
// exists; between/not_between/custom-expression/contains_error(_no_error)
// have no FilterOp counterpart and fall back to an ungated
// RuleExpression (the formula text alone drives the rule).
func conditionOperatorFor(val int) (spreadsheet.FilterOp, bool) {
	switch val {
	case 2:
		return spreadsheet.FilterEqual, true
	case 3:
		return spreadsheet.FilterNotEqual, true
	case 4:
		return spreadsheet.FilterGreater, true
	case 5:
		return spreadsheet.FilterLess, true
	case 6:
		return spreadsheet.FilterGreaterEqual, true
	case 7:
		return spreadsheet.FilterLessEqual, true
	case 16:
		return spreadsheet.FilterContain, true
	case 17:
		return spreadsheet.FilterNotContain, true
	case 18:
		return spreadsheet.FilterBeginWith, true
	case 20:
		return spreadsheet.FilterEndWith, true
	}
	return 0, false
}
