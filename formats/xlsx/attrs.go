package xlsx

import (
	"strconv"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/spreadsheet"
)

func findAttr(attrs []ctxstack.Attr, token int) (ctxstack.Attr, bool) {
	for _, a := range attrs {
		if a.Name.Token == token {
			return a, true
		}
	}
	return ctxstack.Attr{}, false
}

func attrString(attrs []ctxstack.Attr, token int) (string, bool) {
	a, ok := findAttr(attrs, token)
	if !ok {
		return "", false
	}
	return a.Value.String(), true
}

func attrInt(attrs []ctxstack.Attr, token int) (int, bool) {
	s, ok := attrString(attrs, token)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func attrFloat(attrs []ctxstack.Attr, token int) (float64, bool) {
	s, ok := attrString(attrs, token)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func attrBool(attrs []ctxstack.Attr, token int) (bool, bool) {
	s, ok := attrString(attrs, token)
	if !ok {
		return false, false
	}
	return s == "1" || s == "true", true
}

// cellRef splits an A1-style reference like "C7" into 0-based
// (row, col), ignoring any leading '$' anchors.
func cellRef(ref string) (row, col int, ok bool) {
	i := 0
	for i < len(ref) && (ref[i] == '$' || (ref[i] >= 'A' && ref[i] <= 'Z')) {
		i++
	}
	letters := ref[:i]
	digits := ref[i:]
	if letters == "" || digits == "" {
		return 0, 0, false
	}
	c := 0
	for _, ch := range letters {
		if ch == '$' {
			continue
		}
		c = c*26 + int(ch-'A'+1)
	}
	r, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, false
	}
	return r - 1, c - 1, true
}

// parseRange splits an A1-style range reference like "A1:C10" (a bare
// cell reference is treated as a single-cell range) into a
// spreadsheet.Range.
func parseRange(ref string) (spreadsheet.Range, bool) {
	parts := strings.SplitN(ref, ":", 2)
	firstRow, firstCol, ok := cellRef(parts[0])
	if !ok {
		return spreadsheet.Range{}, false
	}
	if len(parts) == 1 {
		return spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: firstRow, LastCol: firstCol}, true
	}
	lastRow, lastCol, ok := cellRef(parts[1])
	if !ok {
		return spreadsheet.Range{}, false
	}
	return spreadsheet.Range{FirstRow: firstRow, FirstCol: firstCol, LastRow: lastRow, LastCol: lastCol}, true
}

// parseISODate parses the "2012-01-01T00:00:00" style timestamp used
// in pivot cache date items and range-grouping bounds.
func parseISODate(s string) (spreadsheet.Date, bool) {
	datePart := s
	timePart := ""
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		datePart, timePart = s[:idx], s[idx+1:]
	}
	dateFields := strings.SplitN(datePart, "-", 3)
	if len(dateFields) != 3 {
		return spreadsheet.Date{}, false
	}
	year, err1 := strconv.Atoi(dateFields[0])
	month, err2 := strconv.Atoi(dateFields[1])
	day, err3 := strconv.Atoi(dateFields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return spreadsheet.Date{}, false
	}
	d := spreadsheet.Date{Year: year, Month: month, Day: day}
	if timePart != "" {
		timeFields := strings.SplitN(timePart, ":", 3)
		if len(timeFields) == 3 {
			d.Hour, _ = strconv.Atoi(timeFields[0])
			d.Minute, _ = strconv.Atoi(timeFields[1])
			d.Second, _ = strconv.Atoi(timeFields[2])
		}
	}
	return d, true
}
