package spreadsheet

// Formula is a single-cell formula record. A shared formula's master
// cell calls SetFormula; every other cell sharing that index calls
// only SetSharedFormulaIndex, per spec.md §4.10's shared-formula rule.
type Formula interface {
	SetPosition(row, col int)
	SetFormula(grammar FormulaGrammar, text []byte)
	SetSharedFormulaIndex(index int)

	SetResultValue(value float64)
	SetResultString(stringID int)
	SetResultBool(value bool)
	SetResultEmpty()
	SetResultError(code string)

	Commit()
}

// ArrayFormula is the completed record a format handler publishes once
// for an entire array-formula range: the master formula plus the
// per-cell result matrix accumulated as the handler walks the cells
// inside Range.
type ArrayFormula interface {
	SetRange(rng Range)
	SetFormula(grammar FormulaGrammar, text []byte)

	SetResultValue(row, col int, value float64)
	SetResultString(row, col int, stringID int)
	SetResultBool(row, col int, value bool)
	SetResultEmpty(row, col int)

	Commit()
}
