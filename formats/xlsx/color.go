package xlsx

import (
	"encoding/hex"

	"github.com/dhamidi/orcus-go/spreadsheet"
)

// parseColor decodes an OOXML "rgb" attribute value, an 8 hex digit
// ARGB string (e.g. "FFFF0000" for opaque red). A bare 6 hex digit
// value (no alpha) is accepted too, defaulting alpha to opaque.
func parseColor(s string) (spreadsheet.Color, bool) {
	switch len(s) {
	case 8:
		b, err := hex.DecodeString(s)
		if err != nil {
			return spreadsheet.Color{}, false
		}
		return spreadsheet.Color{A: b[0], R: b[1], G: b[2], B: b[3]}, true
	case 6:
		b, err := hex.DecodeString(s)
		if err != nil {
			return spreadsheet.Color{}, false
		}
		return spreadsheet.Color{A: 0xff, R: b[0], G: b[1], B: b[2]}, true
	default:
		return spreadsheet.Color{}, false
	}
}
