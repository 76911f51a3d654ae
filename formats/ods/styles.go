package ods

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/strview"
)

// stylesContext walks one <office:automatic-styles> or <office:styles>
// block (content.xml has the former, styles.xml has both), collecting
// every <style:style> and number-format family member into doc.styles
// / doc.numberFormatCodes; both blocks share this one implementation
// since ODF lets either appear in either part.
type stylesContext struct {
	d         *doc
	rootToken int
}

func newStylesContext(d *doc, rootToken int) *stylesContext {
	return &stylesContext{d: d, rootToken: rootToken}
}

func (c *stylesContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *stylesContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == odfstyles.TokenStyle {
		return odfstyles.NewContext()
	}
	if numberStyleRootTokens[name.Token] {
		return newNumberFormatContext(c.d, name.Token)
	}
	return nil
}

func (c *stylesContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token != odfstyles.TokenStyle {
		return
	}
	sc, ok := child.(*odfstyles.Context)
	if !ok {
		return
	}
	c.d.styles.Put(sc.Style())
}

func (c *stylesContext) StartElement(ctxstack.Name, []ctxstack.Attr) {}

func (c *stylesContext) EndElement(name ctxstack.Name) bool {
	return name.Token == c.rootToken
}

func (c *stylesContext) Characters(strview.View, bool) {}

// stylesRootContext only exists to hand the single
// <office:document-styles> root element to documentStylesContext; see
// contentRootContext's doc comment for why this indirection exists.
type stylesRootContext struct {
	d *doc
}

func newStylesRootContext(d *doc) *stylesRootContext { return &stylesRootContext{d: d} }

func (c *stylesRootContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *stylesRootContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenDocumentStyles {
		return newDocumentStylesContext(c.d)
	}
	return nil
}

func (c *stylesRootContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *stylesRootContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}
func (c *stylesRootContext) EndElement(ctxstack.Name) bool                  { return true }
func (c *stylesRootContext) Characters(strview.View, bool)                  {}

// documentStylesContext walks the root <office:document-styles>
// element of a standalone styles.xml part, dispatching its
// office:styles and office:automatic-styles children to stylesContext
// (office:master-styles, page layouts, is out of scope - no
// spreadsheet.ImportFactory component models print/page setup).
type documentStylesContext struct {
	d *doc
}

func newDocumentStylesContext(d *doc) *documentStylesContext {
	return &documentStylesContext{d: d}
}

func (c *documentStylesContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *documentStylesContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	switch name.Token {
	case TokenOfficeStyles:
		return newStylesContext(c.d, TokenOfficeStyles)
	case TokenAutomaticStyles:
		return newStylesContext(c.d, TokenAutomaticStyles)
	}
	return nil
}

func (c *documentStylesContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *documentStylesContext) StartElement(ctxstack.Name, []ctxstack.Attr)     {}

func (c *documentStylesContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenDocumentStyles
}

func (c *documentStylesContext) Characters(strview.View, bool) {}
