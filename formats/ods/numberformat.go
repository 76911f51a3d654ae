package ods

import (
	"fmt"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/strview"
)

// numberFormatBuilder accumulates one number-style's format code as
// its element children are walked, left to right, except for
// style:map children (handled by prependMappedRule below).
type numberFormatBuilder struct {
	code string
}

func (b *numberFormatBuilder) appendFragment(s string) {
	b.code += s
}

// prependMappedRule implements odf_number_format_context's
// style:map handling: each style:map encountered prepends its
// "[condition]mapped-code;" onto the LEFT of whatever code has
// already been accumulated, so style:map elements fold right-to-left
// rather than append left-to-right like every other child.
func (b *numberFormatBuilder) prependMappedRule(condition, mappedCode string) {
	b.code = "[" + condition + "]" + mappedCode + ";" + b.code
}

// numberFormatContext walks one number:*-style (or currency-style,
// percentage-style, date-style, time-style, boolean-style, text-style)
// element and its format-component children, registering the finished
// code under the element's style:name in doc.numberFormatCodes.
type numberFormatContext struct {
	d *doc

	rootToken int
	styleName string

	builder numberFormatBuilder

	active *[]byte
	text   []byte
}

func newNumberFormatContext(d *doc, rootToken int) *numberFormatContext {
	return &numberFormatContext{d: d, rootToken: rootToken}
}

func (c *numberFormatContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenNumber, TokenScientificNumber, TokenFraction, TokenCurrencySymbol,
		TokenNumberText, TokenDay, TokenMonth, TokenYear, TokenHours, TokenMinutes,
		TokenSeconds, TokenAmPm, TokenBoolean, TokenStyleMap:
		return true
	}
	return false
}

func (c *numberFormatContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *numberFormatContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *numberFormatContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	switch name.Token {
	case c.rootToken:
		if v, ok := attrString(attrs, odfstyles.TokenName); ok {
			c.styleName = v
		}
	case TokenNumber:
		decimals, _ := attrInt(attrs, TokenDecimalPlaces)
		minInt, haveMinInt := attrInt(attrs, TokenMinIntegerDigits)
		if !haveMinInt {
			minInt = 1
		}
		grouping := false
		if v, ok := attrString(attrs, TokenGrouping); ok {
			grouping = v == "true"
		}
		c.builder.appendFragment(numberPlaceholder(minInt, decimals, grouping))
	case TokenScientificNumber:
		c.builder.appendFragment("0.00E+00")
	case TokenFraction:
		c.builder.appendFragment("# ?/?")
	case TokenCurrencySymbol:
		c.text = nil
		c.active = &c.text
	case TokenNumberText:
		c.text = nil
		c.active = &c.text
	case TokenDay:
		c.builder.appendFragment("DD")
	case TokenMonth:
		c.builder.appendFragment("MM")
	case TokenYear:
		c.builder.appendFragment("YYYY")
	case TokenHours:
		c.builder.appendFragment("HH")
	case TokenMinutes:
		c.builder.appendFragment("MM")
	case TokenSeconds:
		c.builder.appendFragment("SS")
	case TokenAmPm:
		c.builder.appendFragment("AM/PM")
	case TokenBoolean:
		c.builder.appendFragment("BOOLEAN")
	case TokenStyleMap:
		condition, _ := attrString(attrs, TokenCondition)
		applyName, _ := attrString(attrs, TokenApplyStyleName)
		mappedCode := c.d.numberFormatCodes[applyName]
		if mappedCode == "" {
			c.d.sink.Warnf("ods: style:map in number style %q references unknown or not-yet-defined style %q", c.styleName, applyName)
			return
		}
		c.builder.prependMappedRule(normalizeCondition(condition), mappedCode)
	}
}

func (c *numberFormatContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenCurrencySymbol:
		c.builder.appendFragment(fmt.Sprintf("[$%s]", string(c.text)))
		c.active = nil
		return false
	case TokenNumberText:
		c.builder.appendFragment(string(c.text))
		c.active = nil
		return false
	case c.rootToken:
		if c.rootToken == TokenPercentageStyle {
			c.builder.appendFragment("%")
		}
		if c.styleName != "" {
			c.d.numberFormatCodes[c.styleName] = c.builder.code
		}
		return true
	}
	return false
}

func (c *numberFormatContext) Characters(text strview.View, _ bool) {
	if c.active == nil {
		return
	}
	*c.active = append(*c.active, text.Bytes()...)
}

func numberPlaceholder(minIntegerDigits, decimalPlaces int, grouping bool) string {
	intPart := strings.Repeat("0", minIntegerDigits)
	if minIntegerDigits == 0 {
		intPart = "#"
	}
	if grouping {
		intPart = groupDigits(intPart)
	}
	if decimalPlaces <= 0 {
		return intPart
	}
	return intPart + "." + strings.Repeat("0", decimalPlaces)
}

// groupDigits prefixes "#,##" to a run of "0" placeholders, e.g.
// "0" -> "#,##0"; a longer run keeps all its placeholders
// ("0000" -> "#,##0000").
func groupDigits(intPart string) string {
	if len(intPart) <= 3 {
		return "#,##" + intPart
	}
	return "#,##" + intPart
}

func normalizeCondition(condition string) string {
	return strings.TrimPrefix(condition, "value()")
}

// numberStyleRootTokens lists the element tokens numberFormatContext
// may be the root of, keyed the same way styles.go's dispatcher needs
// to decide whether a given child of <office:automatic-styles> or
// <office:styles> is a style:style or a number-format family member.
var numberStyleRootTokens = map[int]bool{
	TokenNumberStyle:     true,
	TokenCurrencyStyle:   true,
	TokenPercentageStyle: true,
	TokenDateStyle:       true,
	TokenTimeStyle:       true,
	TokenBooleanStyle:    true,
	TokenTextStyle:       true,
}
