package xlsx

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

type sheetRef struct {
	name string
	rID  string
}

type definedNameRef struct {
	name     string
	formula  string
	sheetIdx int // -1 for workbook-scoped
}

// workbookContext is the root context for workbook.xml: it never
// pushes a child context, collecting the flat <sheets>/<sheet> and
// <definedNames>/<definedName> lists directly since neither needs
// further nesting handling.
type workbookContext struct {
	sheets       []sheetRef
	definedNames []definedNameRef

	inDefinedName bool
	currentName   string
	formulaText   []byte
}

func newWorkbookContext() *workbookContext { return &workbookContext{} }

func (c *workbookContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenSheets, TokenSheet, TokenDefinedNames, TokenDefinedName:
		return true
	}
	return false
}

func (c *workbookContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *workbookContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *workbookContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenSheet:
		n, _ := attrString(attrs, TokenName)
		rid, _ := attrString(attrs, TokenID)
		c.sheets = append(c.sheets, sheetRef{name: n, rID: rid})
	case TokenDefinedName:
		c.currentName, _ = attrString(attrs, TokenName)
		c.formulaText = nil
		c.inDefinedName = true
	}
}

func (c *workbookContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenDefinedName:
		c.definedNames = append(c.definedNames, definedNameRef{
			name:     c.currentName,
			formula:  string(c.formulaText),
			sheetIdx: -1,
		})
		c.inDefinedName = false
		return false
	case TokenWorkbook:
		return true
	}
	return false
}

func (c *workbookContext) Characters(text strview.View, transient bool) {
	if c.inDefinedName {
		c.formulaText = append(c.formulaText, text.Bytes()...)
	}
}

// applyNamedExpressions publishes workbook-scoped defined names once
// the workbook is known; sheet-scoped ones (those whose name carries a
// localSheetId in the real format) are out of scope for this handler's
// simplification, which treats every defined name as workbook-global.
func (c *workbookContext) applyNamedExpressions(factory spreadsheet.ImportFactory) {
	ne := factory.NamedExpression()
	if ne == nil {
		return
	}
	for _, dn := range c.definedNames {
		ne.SetNamedExpression(dn.name, spreadsheet.GrammarExcelA1, dn.formula)
	}
}
