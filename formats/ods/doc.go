package ods

import (
	"github.com/dhamidi/orcus-go/formats/odfstyles"
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/dhamidi/orcus-go/spreadsheet"
)

// doc is the state shared by every context walking one ODS document's
// content.xml and styles.xml parts: the consumer-owned factory, the
// style registry both parts populate (content.xml's automatic styles
// and styles.xml's named office styles share one Family/name space per
// odf_styles.hpp), and the caches that turn a repeated style-name
// reference into the spreadsheet.Styles id a cell actually carries.
type doc struct {
	factory spreadsheet.ImportFactory
	sink    orcuslog.Sink

	styles *odfstyles.Registry

	// numberFormatCodes maps a number-style's style:name to the format
	// code numberFormatContext accumulated for it.
	numberFormatCodes map[string]string
	// numberFormatIDs caches the spreadsheet.Styles NumberFormat id
	// already committed for a given code, so the same number-style
	// referenced by many cell styles only gets committed once.
	numberFormatIDs map[string]int

	// xfByStyleName caches the committed xf id for a style name already
	// resolved via Styles(), keyed by styleCacheKey so table-cell,
	// column and row styles of the same name stay apart.
	xfByStyleName map[string]int

	sheetIndex int
}

func newDoc(factory spreadsheet.ImportFactory, sink orcuslog.Sink) *doc {
	return &doc{
		factory:           factory,
		sink:              orcuslog.Or(sink),
		styles:            odfstyles.NewRegistry(),
		numberFormatCodes: make(map[string]string),
		numberFormatIDs:   make(map[string]int),
		xfByStyleName:     make(map[string]int),
	}
}

// numberFormatIDFor commits (once) the NumberFormat record for a
// number-style name already collected in numberFormatCodes, returning
// -1 if the name is unknown or the factory declined the styles table.
func (d *doc) numberFormatIDFor(name string) int {
	if name == "" {
		return -1
	}
	if id, ok := d.numberFormatIDs[name]; ok {
		return id
	}
	code, ok := d.numberFormatCodes[name]
	if !ok {
		return -1
	}
	styles := d.factory.Styles()
	if styles == nil {
		return -1
	}
	nf := styles.StartNumberFormat()
	if nf == nil {
		return -1
	}
	nf.SetCode([]byte(code))
	id := nf.Commit()
	d.numberFormatIDs[name] = id
	return id
}

// xfForStyle resolves a table:style-name reference (on a cell, a
// table-column, or a table-row) into a committed cell-category Xf id,
// applying the style's (possibly parent-inherited) property sets and
// its data-style-name's number format. family picks which style
// family's name space the lookup searches (table-cell for actual
// cells, table-column/table-row for their own default formats).
func (d *doc) xfForStyle(family odfstyles.Family, name string) int {
	if name == "" {
		return -1
	}
	cacheKey := styleCacheKey(family, name)
	if id, ok := d.xfByStyleName[cacheKey]; ok {
		return id
	}
	style, ok := d.styles.Get(family, name)
	if !ok {
		d.sink.Warnf("ods: unknown style %q", name)
		return -1
	}
	resolved := d.styles.Resolve(style)

	styles := d.factory.Styles()
	if styles == nil {
		return -1
	}
	xf := styles.StartXf(spreadsheet.XfCategoryCell)
	if xf == nil {
		return -1
	}
	resolved.ApplyToXf(styles, xf)
	if resolved.DataStyleName != "" {
		if nfID := d.numberFormatIDFor(resolved.DataStyleName); nfID >= 0 {
			xf.SetNumberFormat(nfID)
		}
	}
	id := xf.Commit()
	d.xfByStyleName[cacheKey] = id
	return id
}

func styleCacheKey(family odfstyles.Family, name string) string {
	switch family {
	case odfstyles.FamilyTableColumn:
		return "col:" + name
	case odfstyles.FamilyTableRow:
		return "row:" + name
	default:
		return "cell:" + name
	}
}
