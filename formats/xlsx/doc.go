package xlsx

import "github.com/dhamidi/orcus-go/spreadsheet"

// doc is the state shared across every part of one workbook import:
// the consumer-owned factory plus the style-table index caches built
// while parsing styles.xml, since cellXfs/cellStyleXfs reference fonts/
// fills/borders/numFmts by position and sheet cells reference cellXfs
// by position in turn.
type doc struct {
	factory spreadsheet.ImportFactory

	fontIDs      []int
	fillIDs      []int
	borderIDs    []int
	numFmtIDs    map[int]int // xlsx numFmtId -> committed NumberFormat id
	cellStyleXfs []int       // position -> committed Xf id (XfCategoryCellStyle)
	cellXfs      []int       // position -> committed Xf id (XfCategoryCell)

	sheetIndex int
}

func newDoc(factory spreadsheet.ImportFactory) *doc {
	return &doc{factory: factory, numFmtIDs: make(map[int]int)}
}
