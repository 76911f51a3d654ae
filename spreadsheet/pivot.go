package spreadsheet

// PivotItemType tags a single cached item's value kind, mirroring the
// sharedItems child element vocabulary (s/n/d/e, plus the unused flag
// surfaced separately as Unused on the item append call).
type PivotItemType int

const (
	PivotItemString PivotItemType = iota
	PivotItemNumeric
	PivotItemDate
	PivotItemError
)

// GroupByKind is the range-grouping interval a field group's rangePr
// configures (spec.md §4.10 "Pivot cache").
type GroupByKind int

const (
	GroupByRange GroupByKind = iota
	GroupByDays
	GroupByHours
	GroupByMinutes
	GroupBySeconds
	GroupByMonths
	GroupByQuarters
	GroupByYears
)

// PivotCacheDefinition is one pivot cache: its source range (or named
// table) plus one field per source column.
type PivotCacheDefinition interface {
	SetWorksheetSourceRange(rng Range, sheetName string)
	SetWorksheetSourceTable(tableName string)
	SetFieldCount(n int)

	// StartField begins the index-th field; SharedItems flags, then
	// items, then an optional group, are all recorded against the
	// returned PivotCacheField before CommitField.
	StartField(index int) PivotCacheField
}

// PivotCacheField accumulates one field's shared-items summary, its
// item list, and an optional grouping.
type PivotCacheField interface {
	SetName(text []byte)

	SetContainsNumber(value bool)
	SetContainsString(value bool)
	SetContainsBlank(value bool)
	SetContainsDate(value bool)
	SetLongText(value bool)
	SetMinValue(value float64)
	SetMaxValue(value float64)
	SetMinDate(value Date)
	SetMaxDate(value Date)

	AppendItemString(text []byte, unused bool)
	AppendItemNumeric(value float64, unused bool)
	AppendItemDate(value Date, unused bool)
	AppendItemError(code string, unused bool)

	// StartGroup opens a fieldGroup whose base field index is base
	// (base >= 0, per spec.md §4.10); nil if this field has no group.
	StartGroup(base int) FieldGroup

	CommitField()
}

// FieldGroup carries a field group's range-grouping configuration and
// the discrete base-item-to-group-item links (discretePr/x).
type FieldGroup interface {
	SetRangeGrouping(by GroupByKind, auto bool, start, end, interval float64)
	SetDateRangeGrouping(by GroupByKind, autoStart, autoEnd bool, start, end Date)
	AppendGroupItem(text []byte)
	LinkBaseItemToGroupItem(baseItemIndex, groupItemIndex int)
	Commit()
}

// SummaryType is a data field's aggregation function, or the sentinel
// meaning a pivot field's item list is unsummarized.
type SummaryType int

const (
	SummaryDefault SummaryType = iota
	SummaryGrandTotal
	SummarySum
	SummaryCount
	SummaryCountNumbers
	SummaryAverage
	SummaryMax
	SummaryMin
	SummaryProduct
	SummaryStdDev
	SummaryStdDevP
	SummaryVar
	SummaryVarP
	SummaryBlankLine
	SummaryData
)

// PivotAxis is where a pivot field is placed in the table layout.
type PivotAxis int

const (
	AxisRow PivotAxis = iota
	AxisColumn
	AxisPage
	AxisValues
)

// DataFieldRefSentinel is the special rowFields/colFields field value
// meaning "the synthetic data-field placeholder" used when a pivot
// table has more than one data field.
const DataFieldRefSentinel = -2

// PivotTableDefinition is one pivot table's layout over a
// PivotCacheDefinition.
type PivotTableDefinition interface {
	SetName(name string)
	SetCacheID(id int)
	SetRange(rng Range)

	StartPivotFields() PivotFields
	StartRowFields() AxisFieldList
	StartColumnFields() AxisFieldList
	StartPageFields() AxisFieldList
	StartDataFields() DataFieldList
	StartRowItems() LineItemList
	StartColumnItems() LineItemList

	Commit()
}

// PivotFields accumulates the per-cache-field axis/item configuration.
type PivotFields interface {
	StartField(axis PivotAxis) PivotFieldItems
}

// PivotFieldItems accumulates one field's visible items.
type PivotFieldItems interface {
	// AppendItem references the i-th cache item (possibly hidden); a
	// summary other than SummaryDefault marks it a summary line rather
	// than a plain item reference.
	AppendItem(cacheItemIndex int, hidden bool, summary SummaryType)
	Commit()
}

// AxisFieldList is the ordered list of pivot-field indices placed on
// the row/column/page axis; DataFieldRefSentinel may appear among row
// or column fields.
type AxisFieldList interface {
	AppendField(pivotFieldIndex int)
	Commit()
}

// DataFieldList is the ordered list of value aggregations shown in the
// table body.
type DataFieldList interface {
	AppendField(pivotFieldIndex int, name string, subtotal SummaryType, showDataAsBaseField, showDataAsBaseItem int)
	Commit()
}

// LineItemList is the ordered list of materialized row/column axis
// combinations (rowItems/colItems), each a tuple of per-axis-field item
// indices.
type LineItemList interface {
	AppendItem(itemType SummaryType, values []int)
	Commit()
}
