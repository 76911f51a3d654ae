package odfstyles

import (
	"encoding/hex"
	"strings"

	"github.com/dhamidi/orcus-go/spreadsheet"
)

// parseHexColor decodes an ODF "#RRGGBB" color value, opaque (alpha
// is implicit in ODF's color model).
func parseHexColor(s string) (spreadsheet.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return spreadsheet.Color{}, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return spreadsheet.Color{}, false
	}
	return spreadsheet.Color{A: 0xff, R: b[0], G: b[1], B: b[2]}, true
}

func borderLineStyleFromAttr(s string) spreadsheet.BorderLineStyle {
	switch s {
	case "none":
		return spreadsheet.BorderStyleNone
	case "double":
		return spreadsheet.BorderStyleDouble
	case "dotted":
		return spreadsheet.BorderStyleDotted
	case "dashed":
		return spreadsheet.BorderStyleDashed
	default:
		return spreadsheet.BorderStyleThin
	}
}

func horizontalAlignFromAttr(s string) spreadsheet.HorizontalAlignment {
	switch s {
	case "start", "left":
		return spreadsheet.HAlignLeft
	case "center", "centre":
		return spreadsheet.HAlignCenter
	case "end", "right":
		return spreadsheet.HAlignRight
	case "justify":
		return spreadsheet.HAlignJustify
	default:
		return spreadsheet.HAlignDefault
	}
}

func verticalAlignFromAttr(s string) spreadsheet.VerticalAlignment {
	switch s {
	case "top":
		return spreadsheet.VAlignTop
	case "middle":
		return spreadsheet.VAlignCenter
	case "bottom":
		return spreadsheet.VAlignBottom
	default:
		return spreadsheet.VAlignDefault
	}
}
