package xlsx

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// sstContext walks <sst><si>...</si>...</sst>; each <si> is handled by
// its own child context since it has to decide, only once it has seen
// all its children, whether it was a plain string (Add) or a run of
// differently formatted text (Append via a SegmentBuilder).
type sstContext struct {
	d *doc
}

func newSSTContext(d *doc) *sstContext { return &sstContext{d: d} }

func (c *sstContext) CanHandleElement(ctxstack.Name) bool { return false }

func (c *sstContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	if name.Token == TokenSI {
		return newSIContext(c.d)
	}
	return nil
}

func (c *sstContext) EndChildContext(name ctxstack.Name, child ctxstack.Context) {
	if name.Token != TokenSI {
		return
	}
	if sc, ok := child.(*siContext); ok {
		sc.commit()
	}
}

func (c *sstContext) StartElement(ctxstack.Name, []ctxstack.Attr) {}

func (c *sstContext) EndElement(name ctxstack.Name) bool {
	return name.Token == TokenSST
}

func (c *sstContext) Characters(strview.View, bool) {}

// siContext accumulates one shared-string table entry: a plain run of
// text directly inside <si><t>, or one or more <r> runs each carrying
// their own rPr formatting.
type siContext struct {
	d *doc

	hasRuns bool
	segment spreadsheet.SegmentBuilder

	plainText []byte

	inRun     bool
	runText   []byte
	bold      bool
	italic    bool
	fontName  string
	fontSize  float64
	haveSize  bool
	fontColor spreadsheet.Color
	haveColor bool

	active *[]byte
}

func newSIContext(d *doc) *siContext {
	return &siContext{d: d}
}

func (c *siContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenT, TokenR, TokenRPr, TokenB, TokenI, TokenSz, TokenName, TokenColor:
		return true
	}
	return false
}

func (c *siContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *siContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *siContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenT:
		if c.inRun {
			c.active = &c.runText
		} else {
			c.active = &c.plainText
		}
	case TokenR:
		c.inRun = true
		c.hasRuns = true
		c.runText = nil
		c.bold, c.italic = false, false
		c.fontName = ""
		c.haveSize, c.haveColor = false, false
	case TokenB:
		c.bold = true
	case TokenI:
		c.italic = true
	case TokenSz:
		if v, ok := attrFloat(attrs, TokenVal); ok {
			c.fontSize, c.haveSize = v, true
		}
	case TokenName:
		if v, ok := attrString(attrs, TokenVal); ok {
			c.fontName = v
		}
	case TokenColor:
		if v, ok := attrString(attrs, TokenRgb); ok {
			if parsed, ok := parseColor(v); ok {
				c.fontColor, c.haveColor = parsed, true
			}
		}
	}
}

func (c *siContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenT:
		c.active = nil
		return false
	case TokenR:
		c.flushRun()
		c.inRun = false
		return false
	case TokenSI:
		return true
	}
	return false
}

func (c *siContext) Characters(text strview.View, transient bool) {
	if c.active == nil {
		return
	}
	*c.active = append(*c.active, text.Bytes()...)
}

func (c *siContext) flushRun() {
	if c.segment == nil {
		ss := c.d.factory.SharedStrings()
		if ss == nil {
			return
		}
		c.segment = ss.StartSegment()
		if c.segment == nil {
			return
		}
	}
	c.segment.SetBold(c.bold)
	c.segment.SetItalic(c.italic)
	if c.fontName != "" {
		c.segment.SetFontName(c.fontName)
	}
	if c.haveSize {
		c.segment.SetFontSize(c.fontSize)
	}
	if c.haveColor {
		c.segment.SetFontColor(c.fontColor)
	}
	c.segment.AppendSegment(c.runText)
}

// commit finalizes this <si> entry and returns its shared-string table
// id, or -1 if the factory declined every relevant accessor.
func (c *siContext) commit() int {
	if c.hasRuns {
		if c.segment == nil {
			return -1
		}
		return c.segment.CommitSegments()
	}
	ss := c.d.factory.SharedStrings()
	if ss == nil {
		return -1
	}
	return ss.Add(c.plainText)
}
