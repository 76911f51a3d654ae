package ods

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/spreadsheet"
)

// parseCellRangeAddress decodes an ODF table:cell-range-address value
// such as "$Sheet1.$A$1:$C$5" (or the single-cell "$Sheet1.$B$2")
// into the sheet name and the inclusive Range it designates.
func parseCellRangeAddress(s string) (sheetName string, rng spreadsheet.Range, ok bool) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return "", spreadsheet.Range{}, false
	}
	sheetName = strings.Trim(s[:dot], "$")
	rest := s[dot+1:]

	parts := strings.SplitN(rest, ":", 2)
	firstRow, firstCol, ok := parseCellAddress(parts[0])
	if !ok {
		return "", spreadsheet.Range{}, false
	}
	if len(parts) == 1 {
		return sheetName, spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: firstRow, LastCol: firstCol}, true
	}
	lastRow, lastCol, ok := parseCellAddress(parts[1])
	if !ok {
		return "", spreadsheet.Range{}, false
	}
	return sheetName, spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: lastRow, LastCol: lastCol}, true
}

// parseCellAddress decodes an A1-style cell reference (with optional
// leading "$" column/row anchors, e.g. "$A$1") into zero-based
// (row, col).
func parseCellAddress(s string) (row, col int, ok bool) {
	s = strings.ReplaceAll(s, "$", "")
	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, false
	}
	letters, digits := s[:i], s[i:]

	col = 0
	for _, r := range letters {
		col = col*26 + int(upper(byte(r))-'A'+1)
	}
	col--

	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, 0, false
	}
	return n - 1, col, true
}

func isAlpha(b byte) bool {
	u := upper(b)
	return u >= 'A' && u <= 'Z'
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
