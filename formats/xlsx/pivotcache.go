package xlsx

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/strview"
)

// pivotCacheDefinitionContext is the root context for one
// pivotCacheDefinition*.xml part: cacheSource/worksheetSource names the
// backing range or table, cacheFields/cacheField lists one field per
// source column, and each field's sharedItems lists the distinct values
// seen in that column (items flagged u="1" were pruned from the source
// range and must not be committed).
type pivotCacheDefinitionContext struct {
	def spreadsheet.PivotCacheDefinition

	fieldIndex int
	field      spreadsheet.PivotCacheField

	group     spreadsheet.FieldGroup
	groupBase int
}

func newPivotCacheDefinitionContext(def spreadsheet.PivotCacheDefinition) *pivotCacheDefinitionContext {
	return &pivotCacheDefinitionContext{def: def, fieldIndex: -1}
}

func (c *pivotCacheDefinitionContext) CanHandleElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenCacheSource, TokenWorksheetSource,
		TokenCacheFields, TokenCacheField, TokenSharedItems,
		TokenS, TokenN, TokenD, TokenE,
		TokenFieldGroup, TokenRangePr:
		return true
	}
	return false
}

func (c *pivotCacheDefinitionContext) CreateChildContext(ctxstack.Name) ctxstack.Context { return nil }
func (c *pivotCacheDefinitionContext) EndChildContext(ctxstack.Name, ctxstack.Context)   {}

func (c *pivotCacheDefinitionContext) StartElement(name ctxstack.Name, attrs []ctxstack.Attr) {
	if c.def == nil {
		return
	}

	switch name.Token {
	case TokenCacheFields:
		if n, ok := attrInt(attrs, TokenCountAttr); ok {
			c.def.SetFieldCount(n)
		}

	case TokenWorksheetSource:
		if ref, ok := attrString(attrs, TokenRef); ok {
			sheet, _ := attrString(attrs, TokenSheet)
			if rng, ok := parseRange(ref); ok {
				c.def.SetWorksheetSourceRange(rng, sheet)
			}
		} else if table, ok := attrString(attrs, TokenName); ok {
			c.def.SetWorksheetSourceTable(table)
		}

	case TokenCacheField:
		c.fieldIndex++
		c.field = c.def.StartField(c.fieldIndex)
		if c.field == nil {
			return
		}
		if n, ok := attrString(attrs, TokenName); ok {
			c.field.SetName([]byte(n))
		}

	case TokenSharedItems:
		if c.field == nil {
			return
		}
		if v, ok := attrBool(attrs, TokenContainsNumber); ok {
			c.field.SetContainsNumber(v)
		}
		if v, ok := attrBool(attrs, TokenContainsString); ok {
			c.field.SetContainsString(v)
		}
		if v, ok := attrBool(attrs, TokenContainsBlank); ok {
			c.field.SetContainsBlank(v)
		}
		if v, ok := attrBool(attrs, TokenContainsDate); ok {
			c.field.SetContainsDate(v)
		}
		if v, ok := attrFloat(attrs, TokenMinValue); ok {
			c.field.SetMinValue(v)
		}
		if v, ok := attrFloat(attrs, TokenMaxValue); ok {
			c.field.SetMaxValue(v)
		}

	case TokenS:
		c.appendItem(func(unused bool) {
			if v, ok := attrString(attrs, TokenVal); ok {
				c.field.AppendItemString([]byte(v), unused)
			}
		}, attrs)

	case TokenN:
		c.appendItem(func(unused bool) {
			if v, ok := attrFloat(attrs, TokenVal); ok {
				c.field.AppendItemNumeric(v, unused)
			}
		}, attrs)

	case TokenD:
		c.appendItem(func(unused bool) {
			if v, ok := attrString(attrs, TokenVal); ok {
				if d, ok := parseISODate(v); ok {
					c.field.AppendItemDate(d, unused)
				}
			}
		}, attrs)

	case TokenE:
		c.appendItem(func(unused bool) {
			if v, ok := attrString(attrs, TokenVal); ok {
				c.field.AppendItemError(v, unused)
			}
		}, attrs)

	case TokenFieldGroup:
		if c.field == nil {
			return
		}
		base, _ := attrInt(attrs, TokenBase)
		c.groupBase = base
		c.group = c.field.StartGroup(base)

	case TokenRangePr:
		if c.group == nil {
			return
		}
		by, _ := attrString(attrs, TokenGroupBy)
		kind := groupByKindFromName(by)
		if startDate, ok1 := attrString(attrs, TokenStartDate); ok1 {
			endDate, _ := attrString(attrs, TokenEndDate)
			sd, _ := parseISODate(startDate)
			ed, _ := parseISODate(endDate)
			autoStart, hasAutoStart := attrBool(attrs, TokenAutoStart)
			autoEnd, hasAutoEnd := attrBool(attrs, TokenAutoEnd)
			c.group.SetDateRangeGrouping(kind, !hasAutoStart || autoStart, !hasAutoEnd || autoEnd, sd, ed)
			return
		}
		start, _ := attrFloat(attrs, TokenStartNum)
		end, _ := attrFloat(attrs, TokenEndNum)
		interval, _ := attrFloat(attrs, TokenGroupInterval)
		autoStart, hasAutoStart := attrBool(attrs, TokenAutoStart)
		autoEnd, hasAutoEnd := attrBool(attrs, TokenAutoEnd)
		auto := (!hasAutoStart || autoStart) && (!hasAutoEnd || autoEnd)
		c.group.SetRangeGrouping(kind, auto, start, end, interval)
	}
}

// appendItem skips committing the value entirely when u="1"/"true"
// marks the shared item as unused (pruned from the live source range).
func (c *pivotCacheDefinitionContext) appendItem(commit func(unused bool), attrs []ctxstack.Attr) {
	if c.field == nil {
		return
	}
	unused, _ := attrBool(attrs, TokenUnusedAttr)
	if unused {
		return
	}
	commit(false)
}

func (c *pivotCacheDefinitionContext) EndElement(name ctxstack.Name) bool {
	switch name.Token {
	case TokenFieldGroup:
		if c.group != nil {
			c.group.Commit()
		}
		c.group = nil
	case TokenCacheField:
		if c.field != nil {
			c.field.CommitField()
		}
		c.field = nil
	case TokenPivotCacheDefinition:
		return true
	}
	return false
}

func (c *pivotCacheDefinitionContext) Characters(strview.View, bool) {}

func groupByKindFromName(s string) spreadsheet.GroupByKind {
	switch s {
	case "days":
		return spreadsheet.GroupByDays
	case "hours":
		return spreadsheet.GroupByHours
	case "minutes":
		return spreadsheet.GroupByMinutes
	case "seconds":
		return spreadsheet.GroupBySeconds
	case "months":
		return spreadsheet.GroupByMonths
	case "quarters":
		return spreadsheet.GroupByQuarters
	case "years":
		return spreadsheet.GroupByYears
	default:
		return spreadsheet.GroupByRange
	}
}
