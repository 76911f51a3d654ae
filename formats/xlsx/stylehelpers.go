package xlsx

import "github.com/dhamidi/orcus-go/spreadsheet"

func borderDirectionFromToken(token int) spreadsheet.BorderDirection {
	switch token {
	case TokenLeft:
		return spreadsheet.BorderLeft
	case TokenRight:
		return spreadsheet.BorderRight
	case TokenTop:
		return spreadsheet.BorderTop
	case TokenBottom:
		return spreadsheet.BorderBottom
	case TokenDiagonal:
		return spreadsheet.BorderDiagonal
	default:
		return spreadsheet.BorderLeft
	}
}

func borderLineStyleFromName(s string) spreadsheet.BorderLineStyle {
	switch s {
	case "thin":
		return spreadsheet.BorderStyleThin
	case "medium":
		return spreadsheet.BorderStyleMedium
	case "thick":
		return spreadsheet.BorderStyleThick
	case "dashed":
		return spreadsheet.BorderStyleDashed
	case "dotted":
		return spreadsheet.BorderStyleDotted
	case "double":
		return spreadsheet.BorderStyleDouble
	case "hair":
		return spreadsheet.BorderStyleHair
	default:
		return spreadsheet.BorderStyleNone
	}
}

func horizontalAlignmentFromName(s string) spreadsheet.HorizontalAlignment {
	switch s {
	case "left":
		return spreadsheet.HAlignLeft
	case "center":
		return spreadsheet.HAlignCenter
	case "right":
		return spreadsheet.HAlignRight
	case "justify":
		return spreadsheet.HAlignJustify
	case "fill":
		return spreadsheet.HAlignFill
	case "centerContinuous":
		return spreadsheet.HAlignCenterAcrossSelection
	case "distributed":
		return spreadsheet.HAlignDistributed
	default:
		return spreadsheet.HAlignDefault
	}
}

func verticalAlignmentFromName(s string) spreadsheet.VerticalAlignment {
	switch s {
	case "top":
		return spreadsheet.VAlignTop
	case "center":
		return spreadsheet.VAlignCenter
	case "bottom":
		return spreadsheet.VAlignBottom
	case "justify":
		return spreadsheet.VAlignJustify
	case "distributed":
		return spreadsheet.VAlignDistributed
	default:
		return spreadsheet.VAlignDefault
	}
}

// patternTypeFromName maps the OOXML patternType vocabulary onto
// spreadsheet.PatternType. "mediumGray" and "gray0625" have no distinct
// value in that enum (it was sized to the xls-xml pattern vocabulary,
// which doesn't distinguish them); both fall back to their nearest
// neighbor (darkGray, gray125) rather than being silently dropped.
func patternTypeFromName(s string) spreadsheet.PatternType {
	switch s {
	case "none":
		return spreadsheet.PatternNone
	case "solid":
		return spreadsheet.PatternSolid
	case "gray125":
		return spreadsheet.PatternGray125
	case "gray0625":
		return spreadsheet.PatternGray125
	case "mediumGray":
		return spreadsheet.PatternDarkGray
	case "darkGray":
		return spreadsheet.PatternDarkGray
	case "lightGray":
		return spreadsheet.PatternLightGray
	case "darkHorizontal":
		return spreadsheet.PatternDarkHorizontal
	case "darkVertical":
		return spreadsheet.PatternDarkVertical
	case "darkDown":
		return spreadsheet.PatternDarkDown
	case "darkUp":
		return spreadsheet.PatternDarkUp
	case "darkGrid":
		return spreadsheet.PatternDarkGrid
	case "darkTrellis":
		return spreadsheet.PatternDarkTrellis
	case "lightHorizontal":
		return spreadsheet.PatternLightHorizontal
	case "lightVertical":
		return spreadsheet.PatternLightVertical
	case "lightDown":
		return spreadsheet.PatternLightDown
	case "lightUp":
		return spreadsheet.PatternLightUp
	case "lightGrid":
		return spreadsheet.PatternLightGrid
	case "lightTrellis":
		return spreadsheet.PatternLightTrellis
	default:
		return spreadsheet.PatternNone
	}
}
