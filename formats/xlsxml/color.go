package xlsxml

import (
	"strconv"

	"github.com/dhamidi/orcus-go/spreadsheet"
)

// parseColor accepts the xls-xml "#RRGGBB" color syntax; "Automatic"
// and anything else unparseable yields ok=false.
func parseColor(s string) (spreadsheet.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return spreadsheet.Color{}, false
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return spreadsheet.Color{}, false
	}
	return spreadsheet.Color{A: 0xFF, R: byte(r), G: byte(g), B: byte(b)}, true
}

func horizontalAlignmentFromName(s string) spreadsheet.HorizontalAlignment {
	switch s {
	case "Left":
		return spreadsheet.HAlignLeft
	case "Center":
		return spreadsheet.HAlignCenter
	case "Right":
		return spreadsheet.HAlignRight
	case "Fill":
		return spreadsheet.HAlignFill
	case "Justify":
		return spreadsheet.HAlignJustify
	case "CenterAcrossSelection":
		return spreadsheet.HAlignCenterAcrossSelection
	case "Distributed":
		return spreadsheet.HAlignDistributed
	default:
		return spreadsheet.HAlignDefault
	}
}

func verticalAlignmentFromName(s string) spreadsheet.VerticalAlignment {
	switch s {
	case "Top":
		return spreadsheet.VAlignTop
	case "Center":
		return spreadsheet.VAlignCenter
	case "Bottom":
		return spreadsheet.VAlignBottom
	case "Justify":
		return spreadsheet.VAlignJustify
	case "Distributed":
		return spreadsheet.VAlignDistributed
	default:
		return spreadsheet.VAlignDefault
	}
}

func borderDirectionFromPosition(s string) (spreadsheet.BorderDirection, bool) {
	switch s {
	case "Top":
		return spreadsheet.BorderTop, true
	case "Bottom":
		return spreadsheet.BorderBottom, true
	case "Left":
		return spreadsheet.BorderLeft, true
	case "Right":
		return spreadsheet.BorderRight, true
	case "DiagonalLeft", "DiagonalRight":
		return spreadsheet.BorderDiagonal, true
	default:
		return 0, false
	}
}

func borderLineStyleFromName(s string) spreadsheet.BorderLineStyle {
	switch s {
	case "Continuous":
		return spreadsheet.BorderStyleThin
	case "Double":
		return spreadsheet.BorderStyleDouble
	case "Dot":
		return spreadsheet.BorderStyleDotted
	case "Dash":
		return spreadsheet.BorderStyleDashed
	case "Hair":
		return spreadsheet.BorderStyleHair
	case "None":
		return spreadsheet.BorderStyleNone
	default:
		return spreadsheet.BorderStyleThin
	}
}

func patternTypeFromName(s string) spreadsheet.PatternType {
	switch s {
	case "Solid":
		return spreadsheet.PatternSolid
	case "Gray125":
		return spreadsheet.PatternGray125
	case "":
		return spreadsheet.PatternNone
	default:
		return spreadsheet.PatternSolid
	}
}
