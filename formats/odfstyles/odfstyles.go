// Package odfstyles implements the ODF style-family machinery shared
// between an ODS document's content.xml automatic styles and its
// styles.xml office styles: a <style:style> element's family
// (table-cell, table-column, table-row, table, graphic, paragraph,
// text) decides which of its property children apply, and any family
// may reference a parent style by name for attribute inheritance, the
// same lookup-by-(family,name) shape liborcus's odf_styles_map_type
// keeps (_examples/original_source/src/liborcus/odf_styles.hpp).
package odfstyles

import "github.com/dhamidi/orcus-go/spreadsheet"

// Family mirrors odf_style_family from odf_styles.hpp.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyTableColumn
	FamilyTableRow
	FamilyTableCell
	FamilyTable
	FamilyGraphic
	FamilyParagraph
	FamilyText
)

// FamilyFromAttr maps a style:family attribute value to a Family.
func FamilyFromAttr(s string) Family {
	switch s {
	case "table-column":
		return FamilyTableColumn
	case "table-row":
		return FamilyTableRow
	case "table-cell":
		return FamilyTableCell
	case "table":
		return FamilyTable
	case "graphic":
		return FamilyGraphic
	case "paragraph":
		return FamilyParagraph
	case "text":
		return FamilyText
	default:
		return FamilyUnknown
	}
}

// BorderSpec is one edge's fo:border-* value, already split into its
// width/style/color components (ODF packs all three into one
// whitespace-separated string, e.g. "0.75pt solid #000000").
type BorderSpec struct {
	WidthPt float64
	Style   spreadsheet.BorderLineStyle
	Color   spreadsheet.Color
	HasColor bool
}

// Style is one <style:style> entry's accumulated properties across
// whichever of its family's property child elements were present.
type Style struct {
	Name           string
	Family         Family
	ParentName     string
	DataStyleName  string // style:data-style-name, a number-format reference

	HasFill      bool
	FillColor    spreadsheet.Color
	HasBorder    [5]bool // indexed by spreadsheet.BorderDirection
	Border       [5]BorderSpec
	HasColumnWidth bool
	ColumnWidthPt  float64
	HasRowHeight   bool
	RowHeightPt    float64

	HasFont   bool
	FontName  string
	FontSize  float64
	HaveSize  bool
	Bold      bool
	Italic    bool
	Underline bool
	HasFontColor bool
	FontColor    spreadsheet.Color

	HasAlign bool
	HAlign   spreadsheet.HorizontalAlignment
	VAlign   spreadsheet.VerticalAlignment
	WrapText bool
}

// Registry collects styles by (family, name), shared across an ODS
// document's content.xml and styles.xml parts so a content.xml
// automatic style can reference a styles.xml office style as its
// style:parent-style-name.
type Registry struct {
	byFamily map[Family]map[string]*Style
}

func NewRegistry() *Registry {
	return &Registry{byFamily: make(map[Family]map[string]*Style)}
}

func (r *Registry) Put(s *Style) {
	if s == nil || s.Name == "" {
		return
	}
	names, ok := r.byFamily[s.Family]
	if !ok {
		names = make(map[string]*Style)
		r.byFamily[s.Family] = names
	}
	names[s.Name] = s
}

func (r *Registry) Get(family Family, name string) (*Style, bool) {
	names, ok := r.byFamily[family]
	if !ok {
		return nil, false
	}
	s, ok := names[name]
	return s, ok
}

// Resolve walks s's style:parent-style-name chain (bounded to avoid an
// accidental cycle) and returns the effective style with every unset
// field in s filled in from its nearest ancestor that sets it.
// liborcus resolves this lazily per attribute at xf-export time
// (odf_helper.cpp); this package does it once, eagerly, since
// formats/ods only ever needs the fully-resolved record.
func (r *Registry) Resolve(s *Style) *Style {
	if s == nil {
		return nil
	}
	chain := []*Style{s}
	seen := map[string]bool{s.Name: true}
	cur := s
	for cur.ParentName != "" && !seen[cur.ParentName] {
		parent, ok := r.Get(cur.Family, cur.ParentName)
		if !ok {
			break
		}
		chain = append(chain, parent)
		seen[cur.ParentName] = true
		cur = parent
	}

	out := &Style{Name: s.Name, Family: s.Family}
	for i := len(chain) - 1; i >= 0; i-- {
		merge(out, chain[i])
	}
	return out
}

func merge(dst, src *Style) {
	if src.DataStyleName != "" {
		dst.DataStyleName = src.DataStyleName
	}
	if src.HasFill {
		dst.HasFill, dst.FillColor = true, src.FillColor
	}
	for i := range src.HasBorder {
		if src.HasBorder[i] {
			dst.HasBorder[i], dst.Border[i] = true, src.Border[i]
		}
	}
	if src.HasColumnWidth {
		dst.HasColumnWidth, dst.ColumnWidthPt = true, src.ColumnWidthPt
	}
	if src.HasRowHeight {
		dst.HasRowHeight, dst.RowHeightPt = true, src.RowHeightPt
	}
	if src.HasFont {
		dst.HasFont = true
		if src.FontName != "" {
			dst.FontName = src.FontName
		}
		if src.HaveSize {
			dst.HaveSize, dst.FontSize = true, src.FontSize
		}
		dst.Bold = dst.Bold || src.Bold
		dst.Italic = dst.Italic || src.Italic
		dst.Underline = dst.Underline || src.Underline
		if src.HasFontColor {
			dst.HasFontColor, dst.FontColor = true, src.FontColor
		}
	}
	if src.HasAlign {
		dst.HasAlign, dst.HAlign, dst.VAlign, dst.WrapText = true, src.HAlign, src.VAlign, src.WrapText
	}
}

// ApplyToXf commits s's resolved properties onto an already-started
// spreadsheet.Xf, for family FamilyTableCell; the caller is
// responsible for calling Styles().StartXf first and Commit after.
func (s *Style) ApplyToXf(styles spreadsheet.Styles, xf spreadsheet.Xf) {
	if s.HasFill {
		fill := styles.StartFillStyle()
		if fill != nil {
			fill.SetPatternType(spreadsheet.PatternSolid)
			fill.SetForegroundColor(s.FillColor)
			xf.SetFill(fill.Commit())
		}
	}
	if hasAnyBorder(s) {
		border := styles.StartBorderStyle()
		if border != nil {
			for dir := spreadsheet.BorderTop; dir <= spreadsheet.BorderDiagonal; dir++ {
				if !s.HasBorder[dir] {
					continue
				}
				b := s.Border[dir]
				border.SetStyle(dir, b.Style)
				border.SetWidth(dir, b.WidthPt)
				if b.HasColor {
					border.SetColor(dir, b.Color)
				}
			}
			xf.SetBorder(border.Commit())
		}
	}
	if s.HasFont {
		font := styles.StartFontStyle()
		if font != nil {
			if s.FontName != "" {
				font.SetName(s.FontName)
			}
			if s.HaveSize {
				font.SetSize(s.FontSize)
			}
			font.SetBold(s.Bold)
			font.SetItalic(s.Italic)
			font.SetUnderline(s.Underline)
			if s.HasFontColor {
				font.SetColor(s.FontColor)
			}
			xf.SetFont(font.Commit())
		}
	}
	if s.HasAlign {
		xf.SetHorizontalAlignment(s.HAlign)
		xf.SetVerticalAlignment(s.VAlign)
		xf.SetWrapText(s.WrapText)
		xf.SetApplyAlignment(true)
	}
}

func hasAnyBorder(s *Style) bool {
	for _, v := range s.HasBorder {
		if v {
			return true
		}
	}
	return false
}
