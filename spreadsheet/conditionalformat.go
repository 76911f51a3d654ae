package spreadsheet

// ConditionalFormatRuleType names a conditional-formatting rule kind;
// formats differ in which of these they can express. formats/gnumeric
// is the only handler in this module that emits conditional formats.
type ConditionalFormatRuleType int

const (
	RuleCellIs ConditionalFormatRuleType = iota
	RuleExpression
	RuleColorScale
	RuleDataBar
	RuleTop10
)

// ConditionalFormat is one cell range's list of conditional-formatting
// rules, each applied in priority order.
type ConditionalFormat interface {
	SetRange(rng Range)
	StartRule(ruleType ConditionalFormatRuleType) ConditionalFormatRule
	Commit()
}

// ConditionalFormatRule carries one rule's parameters. Not every
// setter applies to every RuleType; a handler calls only the ones its
// source format's rule kind supplies.
type ConditionalFormatRule interface {
	SetPriority(priority int)
	SetFormula(grammar FormulaGrammar, text []byte)
	SetOperator(op FilterOp)
	SetXf(xfID int)

	// Top10-specific.
	SetTop10Rank(rank int, percent, bottom bool)

	// ColorScale-specific: one call per color stop, in ascending order.
	AppendColorScaleStop(value float64, color Color)

	// DataBar-specific.
	SetDataBarColor(color Color)
	SetDataBarRange(min, max float64)

	Commit()
}
