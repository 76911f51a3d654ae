package gnumeric

import (
	"strconv"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

var filterOps = map[string]spreadsheet.FilterOp{
	"eq":  spreadsheet.FilterEqual,
	"gt":  spreadsheet.FilterGreater,
	"lt":  spreadsheet.FilterLess,
	"gte": spreadsheet.FilterGreaterEqual,
	"lte": spreadsheet.FilterLessEqual,
	"ne":  spreadsheet.FilterNotEqual,
}

// filterContext walks one <gnm:Filter> block's <gnm:Field> children,
// building one AND-combined filter node per the teacher's own
// always-op_and root node.
type filterContext struct {
	d          *doc
	sheet      spreadsheet.Sheet
	autoFilter spreadsheet.AutoFilter
	node       spreadsheet.FilterNode
}

func newFilterContext(d *doc, sheet spreadsheet.Sheet) *filterContext {
	return &filterContext{d: d, sheet: sheet}
}

func (c *filterContext) CanHandleElement(name ctxstack.Name) bool {
	return name.Token == TokenField
}

func (c *filterContext) CreateChildContext(name ctxstack.Name) ctxstack.Context {
	return newSkipContext(c.d, name.Token, "Filter-child")
}

func (c *filterContext) EndChildContext(ctxstack.Name, ctxstack.Context) {}
func (c *filterContext) Characters(strview.View, bool)                  {}

func (c *filterContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case TokenFilter:
		c.startFilter(attrs)
	case TokenField:
		c.startField(attrs)
	}
}

func (c *filterContext) startFilter(attrs []ctxstack.Attr) {
	if c.sheet == nil || c.d.resolver == nil {
		return
	}
	area, ok := attrString(attrs, TokenArea)
	if !ok {
		return
	}
	_, rng, ok := c.d.resolver.ResolveRange(area)
	if !ok {
		c.d.sink.Warnf("gnumeric: malformed filter area %q", area)
		return
	}
	c.autoFilter = c.sheet.StartAutoFilter(rng)
	if c.autoFilter == nil {
		return
	}
	c.node = c.autoFilter.StartNode(spreadsheet.BooleanAnd)
}

func (c *filterContext) startField(attrs []ctxstack.Attr) {
	if c.node == nil {
		return
	}
	field, ok := attrInt(attrs, TokenIndex)
	if !ok || field < 0 {
		c.d.sink.Warnf("gnumeric: filter field missing a valid Index attribute")
		return
	}
	fieldType, _ := attrString(attrs, TokenType)
	op := spreadsheet.FilterEqual
	if opName, ok := attrString(attrs, TokenOp0); ok {
		if mapped, ok := filterOps[opName]; ok {
			op = mapped
		}
	}

	// NB: due to a long-standing bug in Gnumeric itself, the Value0/
	// ValueType0 attribute names are swapped from what they describe:
	// Value0 carries the value-type code, ValueType0 carries the value
	// text.
	valueType, hasType := attrInt(attrs, TokenValue0)
	value, _ := attrString(attrs, TokenValueType0)

	switch fieldType {
	case "expr":
		if !hasType {
			c.d.sink.Warnf("gnumeric: filter field %d missing a value type", field)
			return
		}
		c.pushFieldExpression(field, op, valueType, value)
	case "blanks":
		c.node.AppendTextItem(field, spreadsheet.FilterEmpty, nil)
	case "noblanks":
		c.node.AppendTextItem(field, spreadsheet.FilterNotEmpty, nil)
	case "bucket":
		c.d.sink.Warnf("gnumeric: bucket filter field type is not yet handled")
	default:
		c.d.sink.Warnf("gnumeric: invalid filter field type %q", fieldType)
	}
}

func (c *filterContext) pushFieldExpression(field int, op spreadsheet.FilterOp, valueType int, value string) {
	switch valueType {
	case valueTypeEmpty:
		c.d.sink.Warnf("gnumeric: empty filter value type is not yet handled")
	case valueTypeBoolean:
		v := value == "1" || value == "true" || value == "TRUE"
		if v {
			c.node.AppendNumericItem(field, op, 1)
		} else {
			c.node.AppendNumericItem(field, op, 0)
		}
	case valueTypeFloatOld, valueTypeFloat:
		n, ok := parseFloat(value)
		if !ok {
			c.d.sink.Warnf("gnumeric: numeric filter value expected, got %q", value)
			return
		}
		c.node.AppendNumericItem(field, op, n)
	case valueTypeString:
		c.node.AppendTextItem(field, op, []byte(value))
	case valueTypeError:
		c.d.sink.Warnf("gnumeric: error filter value type is not yet handled")
	case valueTypeCellRange:
		c.d.sink.Warnf("gnumeric: cell-range filter value type is not yet handled")
	case valueTypeArray:
		c.d.sink.Warnf("gnumeric: array filter value type is not yet handled")
	default:
		c.d.sink.Warnf("gnumeric: unhandled filter value type (%d)", valueType)
	}
}

func (c *filterContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenField:
		return false
	case TokenFilter:
		if c.node != nil {
			c.node.Commit()
			c.node = nil
		}
		if c.autoFilter != nil {
			c.autoFilter.Commit()
			c.autoFilter = nil
		}
	}
	return name.Token == TokenFilter
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
