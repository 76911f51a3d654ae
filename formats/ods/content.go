package ods

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// contentRootContext only exists to hand the single
// <office:document-content> root element to documentContentContext; it
// holds no state of its own, mirroring the xlsxml/xlsx rootContext
// pattern for a Stack whose real top-level handler needs to see the
// attributes of the element that names it.
type contentRootContext struct {
	d *doc
}

func newContentRootContext(d *doc) *contentRootContext { return &contentRootContext{d: d} }

func (c *contentRootContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *contentRootContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenDocumentContent {
		return newDocumentContentContext(c.d)
	}
	return nil
}

func (c *contentRootContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *contentRootContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}
func (c *contentRootContext) EndElement(ctxstack.Name) bool                  { return true }
func (c *contentRootContext) Characters(strview.View, bool)                  {}

// documentContentContext walks the root <office:document-content>
// element of content.xml, dispatching to stylesContext for its
// automatic-styles block and bodyContext for office:body.
type documentContentContext struct {
	d *doc
}

func newDocumentContentContext(d *doc) *documentContentContext {
	return &documentContentContext{d: d}
}

func (c *documentContentContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *documentContentContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenAutomaticStyles:
		return newStylesContext(c.d, TokenAutomaticStyles)
	case TokenBody:
		return newBodyContext(c.d)
	}
	return nil
}

func (c *documentContentContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *documentContentContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *documentContentContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenDocumentContent
}

func (c *documentContentContext) Characters(strview.View, bool) {}

// bodyContext walks <office:body>, looking only for the
// office:spreadsheet child (the other office:body variants - text,
// presentation, drawing, chart - aren't spreadsheet content).
type bodyContext struct {
	d *doc
}

func newBodyContext(d *doc) *bodyContext { return &bodyContext{d: d} }

func (c *bodyContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *bodyContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenSpreadsheet {
		return newSpreadsheetContext(c.d)
	}
	return nil
}

func (c *bodyContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *bodyContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *bodyContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenBody
}

func (c *bodyContext) Characters(strview.View, bool) {}

// spreadsheetContext walks <office:spreadsheet>: one table:table per
// sheet, plus the workbook-scoped table:named-expressions block.
type spreadsheetContext struct {
	d *doc
}

func newSpreadsheetContext(d *doc) *spreadsheetContext { return &spreadsheetContext{d: d} }

func (c *spreadsheetContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *spreadsheetContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenTable:
		return newTableContext(c.d)
	case TokenNamedExpressions:
		return newNamedExpressionsContext(c.d, c.d.factory.NamedExpression(), TokenNamedExpressions)
	}
	return nil
}

func (c *spreadsheetContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *spreadsheetContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *spreadsheetContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenSpreadsheet
}

func (c *spreadsheetContext) Characters(strview.View, bool) {}

// tableContext walks one <table:table> (one sheet): table:table-column
// children set the column's default format, table:table-row children
// are walked by rowContext, and a nested table:named-expressions block
// is sheet-scoped (shadows a workbook-scoped name of the same
// identifier per spreadsheet.NamedExpression's contract).
type tableContext struct {
	d          *doc
	sheet      spreadsheet.Sheet
	currentCol int
	currentRow int
}

func newTableContext(d *doc) *tableContext {
	return &tableContext{currentCol: -1, currentRow: -1, d: d}
}

func (c *tableContext) CanHandleElement(name ctxstack.Name) bool {
	return name.Token == TokenTableColumn
}

func (c *tableContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenTableRow:
		return newRowContext(c.d, c.sheet, &c.currentRow)
	case TokenNamedExpressions:
		if c.sheet == nil {
			return nil
		}
		return newNamedExpressionsContext(c.d, c.sheet.NamedExpression(), TokenNamedExpressions)
	}
	return nil
}

func (c *tableContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *tableContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenTable:
		sheetName, _ := attrString(attrs, odfstyles.TokenName)
		c.sheet = c.d.factory.AppendSheet(c.d.sheetIndex, sheetName)
		c.d.sheetIndex++
	case TokenTableColumn:
		repeat, ok := attrInt(attrs, TokenNumberColumnsRepeated)
		if !ok || repeat < 1 {
			repeat = 1
		}
		c.currentCol++
		if styleName, ok := attrString(attrs, TokenStyleName); ok && c.sheet != nil {
			if xfID := c.d.xfForStyle(odfstyles.FamilyTableColumn, styleName); xfID >= 0 {
				c.sheet.SetColumnFormat(c.currentCol, repeat, xfID)
			}
		}
		c.currentCol += repeat - 1
	}
}

func (c *tableContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenTable
}

func (c *tableContext) Characters(strview.View, bool) {}

// rowContext walks one <table:table-row>, dispatching each
// table:table-cell/table:covered-table-cell child to cellContext.
// table:number-rows-repeated on a row with no cell content (the
// common case: a block of blank trailing rows) just advances the row
// counter by the repeat count, a documented simplification that skips
// re-emitting the row's own cell set for every repeated instance.
type rowContext struct {
	d          *doc
	sheet      spreadsheet.Sheet
	rowPtr     *int
	row        int
	currentCol int
	repeat     int
	sawCell    bool
	styleName  string
}

func newRowContext(d *doc, sheet spreadsheet.Sheet, rowPtr *int) *rowContext {
	return &rowContext{d: d, sheet: sheet, rowPtr: rowPtr, currentCol: -1, repeat: 1}
}

func (c *rowContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *rowContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenTableCell || name.Token == TokenCoveredTableCell {
		c.sawCell = true
		return newCellContext(c.d, c.sheet, c.row, &c.currentCol, name.Token == TokenCoveredTableCell)
	}
	return nil
}

func (c *rowContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}

func (c *rowContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenTableRow {
		return
	}
	*c.rowPtr++
	c.row = *c.rowPtr
	if n, ok := attrInt(attrs, TokenNumberRowsRepeated); ok && n > 1 {
		c.repeat = n
	}
	if styleName, ok := attrString(attrs, TokenStyleName); ok {
		c.styleName = styleName
		if c.sheet != nil {
			if xfID := c.d.xfForStyle(odfstyles.FamilyTableRow, styleName); xfID >= 0 {
				c.sheet.SetRowFormat(c.row, xfID)
			}
		}
	}
}

func (c *rowContext) EndElement(name ctxstack.Name) bool {
	if name.Token != TokenTableRow {
		return false
	}
	if c.repeat > 1 {
		if !c.sawCell && c.sheet != nil && c.styleName != "" {
			if xfID := c.d.xfForStyle(odfstyles.FamilyTableRow, c.styleName); xfID >= 0 {
				for i := 1; i < c.repeat; i++ {
					c.sheet.SetRowFormat(c.row+i, xfID)
				}
			}
		}
		*c.rowPtr += c.repeat - 1
	}
	return true
}

func (c *rowContext) Characters(strview.View, bool) {}

// cellContext walks one <table:table-cell> (or
// <table:covered-table-cell>, ODF's merged-cell continuation marker,
// handled here as a column-advancing no-op with no value committed - a
// documented simplification that skips liborcus's merged-range
// bookkeeping). table:number-columns-repeated is expanded by looping
// the same committed value/format across each repeated column, since
// spreadsheet.Sheet has no "fill rightward" primitive (FillDownCells
// only repeats downward into subsequent rows).
type cellContext struct {
	d       *doc
	sheet   spreadsheet.Sheet
	row     int
	colPtr  *int
	col     int
	repeat  int
	covered bool

	valueType string
	value     string
	formula   string
	styleName string

	text []byte
}

func newCellContext(d *doc, sheet spreadsheet.Sheet, row int, colPtr *int, covered bool) *cellContext {
	return &cellContext{d: d, sheet: sheet, row: row, colPtr: colPtr, covered: covered}
}

func (c *cellContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *cellContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenParagraph {
		return newParagraphContext()
	}
	return nil
}

func (c *cellContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token != TokenParagraph {
		return
	}
	pc, ok := child.(*paragraphContext)
	if !ok {
		return
	}
	if len(c.text) > 0 {
		c.text = append(c.text, '\n')
	}
	c.text = append(c.text, pc.text...)
}

func (c *cellContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if name.Token != TokenTableCell && name.Token != TokenCoveredTableCell {
		return
	}
	*c.colPtr++
	c.col = *c.colPtr
	c.repeat = 1
	if n, ok := attrInt(attrs, TokenNumberColumnsRepeated); ok && n > 1 {
		c.repeat = n
	}

	c.valueType, _ = attrString(attrs, TokenValueType)
	switch c.valueType {
	case "float", "currency", "percentage":
		c.value, _ = attrString(attrs, TokenValue)
	case "boolean":
		c.value, _ = attrString(attrs, TokenBooleanValue)
	case "date":
		c.value, _ = attrString(attrs, TokenDateValue)
	case "string":
		c.value, _ = attrString(attrs, TokenStringValue)
	}

	c.formula, _ = attrString(attrs, TokenFormula)
	if c.formula != "" {
		c.formula = stripFormulaPrefix(c.formula)
	}

	c.styleName, _ = attrString(attrs, TokenStyleName)
}

func (c *cellContext) EndElement(name ctxstack.Name) bool {
	if name.Token != TokenTableCell && name.Token != TokenCoveredTableCell {
		return false
	}

	if c.covered {
		*c.colPtr += c.repeat - 1
		return true
	}

	xfID := -1
	if c.styleName != "" && c.sheet != nil {
		xfID = c.d.xfForStyle(odfstyles.FamilyTableCell, c.styleName)
		if xfID >= 0 {
			c.sheet.SetFormat(c.row, c.col, xfID)
		}
	}

	c.commit()

	// table:number-columns-repeated compresses a run of identical
	// cells into one element; spreadsheet.Sheet has no "fill
	// rightward" primitive (FillDownCells only repeats downward into
	// subsequent rows), so each repeated column is committed in turn.
	for i := 1; i < c.repeat; i++ {
		c.col++
		if xfID >= 0 {
			c.sheet.SetFormat(c.row, c.col, xfID)
		}
		c.commit()
	}
	*c.colPtr = c.col

	return true
}

func (c *cellContext) Characters(strview.View, bool) {}

func (c *cellContext) commit() {
	if c.sheet == nil {
		return
	}

	if c.formula != "" {
		f := c.sheet.GetFormula()
		if f == nil {
			return
		}
		f.SetPosition(c.row, c.col)
		f.SetFormula(spreadsheet.GrammarODFF, []byte(c.formula))
		c.commitFormulaResult(f)
		f.Commit()
		return
	}

	switch c.valueType {
	case "float", "currency", "percentage":
		if v, err := strconv.ParseFloat(c.value, 64); err == nil {
			c.sheet.SetValue(c.row, c.col, v)
		}
	case "boolean":
		c.sheet.SetBool(c.row, c.col, c.value == "true")
	case "date":
		if y, mo, d, h, mi, s, ok := parseISODateTime(c.value); ok {
			c.sheet.SetDateTime(c.row, c.col, y, mo, d, h, mi, s)
		}
	case "string":
		c.setString(c.value)
	case "":
		if len(c.text) > 0 {
			c.sheet.SetAuto(c.row, c.col, c.text)
		}
	default:
		if len(c.text) > 0 {
			c.setString(string(c.text))
		}
	}
}

func (c *cellContext) setString(s string) {
	ss := c.d.factory.SharedStrings()
	if ss == nil {
		return
	}
	c.sheet.SetString(c.row, c.col, ss.Add([]byte(s)))
}

func (c *cellContext) commitFormulaResult(f spreadsheet.Formula) {
	switch c.valueType {
	case "float", "currency", "percentage":
		if v, err := strconv.ParseFloat(c.value, 64); err == nil {
			f.SetResultValue(v)
			return
		}
		f.SetResultEmpty()
	case "boolean":
		f.SetResultBool(c.value == "true")
	case "string":
		ss := c.d.factory.SharedStrings()
		if ss == nil {
			f.SetResultEmpty()
			return
		}
		f.SetResultString(ss.Add([]byte(c.value)))
	default:
		f.SetResultEmpty()
	}
}

// stripFormulaPrefix removes ODFF's grammar-namespace prefix
// ("of:=...") that table:formula values carry ahead of the actual
// formula text.
func stripFormulaPrefix(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 && i < 6 {
		s = s[i+1:]
	}
	return strings.TrimPrefix(s, "=")
}

// paragraphContext captures one <text:p> child's character data for
// cellContext to fold into the cell's string value.
type paragraphContext struct {
	text []byte
}

func newParagraphContext() *paragraphContext { return &paragraphContext{} }

func (c *paragraphContext) CanHandleElement(ctxstack.Name) bool               { return false }
func (c *paragraphContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *paragraphContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}
func (c *paragraphContext) StartElement(ctxstack.Name, []ctxstack.Attr)       {}

func (c *paragraphContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenParagraph
}

func (c *paragraphContext) Characters(text strview.View, _ bool) {
	c.text = append(c.text, text.Bytes()...)
}

// parseISODateTime decodes an office:date-value such as "2020-01-02"
// or "2020-01-02T10:30:00".
func parseISODateTime(s string) (year, month, day, hour, minute, second int, ok bool) {
	datePart, timePart, _ := strings.Cut(s, "T")
	dateFields := strings.Split(datePart, "-")
	if len(dateFields) != 3 {
		return 0, 0, 0, 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(dateFields[0]); err != nil {
		return 0, 0, 0, 0, 0, 0, false
	}
	if month, err = strconv.Atoi(dateFields[1]); err != nil {
		return 0, 0, 0, 0, 0, 0, false
	}
	if day, err = strconv.Atoi(dateFields[2]); err != nil {
		return 0, 0, 0, 0, 0, 0, false
	}
	if timePart == "" {
		return year, month, day, 0, 0, 0, true
	}
	timeFields := strings.Split(timePart, ":")
	if len(timeFields) != 3 {
		return year, month, day, 0, 0, 0, true
	}
	hour, _ = strconv.Atoi(timeFields[0])
	minute, _ = strconv.Atoi(timeFields[1])
	secFloat, _ := strconv.ParseFloat(timeFields[2], 64)
	second = int(secFloat)
	return year, month, day, hour, minute, second, true
}
