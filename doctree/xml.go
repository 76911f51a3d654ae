package doctree

import (
	"strings"

	"github.com/dhamidi/orcus-go/sax"
	"github.com/dhamidi/orcus-go/xmlns"
)

// xmlFrame tracks one still-open element: its attributes and text are
// known as soon as they're scanned, but its own arena slot can't be
// reserved until EndElement, once we know whether it collapses to a
// bare scalar (no attributes, no child elements) or needs a map node
// with "@attr"/"#text" entries alongside its real children. Each
// finished child records its own arena index here; the parent back-
// patches that child's parentIndex once its own slot exists.
type xmlFrame struct {
	name       string
	attrNames  []string
	attrValues []string
	text       []byte
	childIdx   []int
}

type xmlHandler struct {
	doc   *Document
	stack []*xmlFrame
}

func (h *xmlHandler) Declaration(sax.Declaration) {}

func (h *xmlHandler) StartElement(_ xmlns.ID, _ int, rawName string, attrs []sax.Attr) {
	f := &xmlFrame{name: localName(rawName)}
	for _, a := range attrs {
		f.attrNames = append(f.attrNames, localName(a.RawName))
		f.attrValues = append(f.attrValues, string(a.Value))
	}
	h.stack = append(h.stack, f)
}

func (h *xmlHandler) Characters(text []byte, _ bool) {
	if len(h.stack) == 0 {
		return
	}
	top := h.stack[len(h.stack)-1]
	top.text = append(top.text, text...)
}

func (h *xmlHandler) EndElement(_ xmlns.ID, _ int, _ string) {
	n := len(h.stack)
	f := h.stack[n-1]
	h.stack = h.stack[:n-1]

	text := strings.TrimSpace(string(f.text))
	hasAttrs := len(f.attrNames) > 0
	hasChildren := len(f.childIdx) > 0

	var idx int
	if !hasAttrs && !hasChildren {
		idx = h.push(node{kind: KindScalar, scalarType: ScalarString, text: text, key: f.name}, -1)
	} else {
		idx = h.push(node{kind: KindMap, key: f.name}, -1)
		for i, name := range f.attrNames {
			h.push(node{kind: KindScalar, scalarType: ScalarString, text: f.attrValues[i], key: "@" + name}, idx)
		}
		if text != "" {
			h.push(node{kind: KindScalar, scalarType: ScalarString, text: text, key: "#text"}, idx)
		}
		for _, childIdx := range f.childIdx {
			h.doc.arena[childIdx].parentIndex = idx
			h.doc.arena[idx].children = append(h.doc.arena[idx].children, childIdx)
		}
	}

	if len(h.stack) == 0 {
		h.doc.root = idx
		return
	}
	parent := h.stack[len(h.stack)-1]
	parent.childIdx = append(parent.childIdx, idx)
}

// push appends n to the arena, wiring it into parentIdx's children
// immediately if parentIdx is already known (attrs/text of a map node
// being assembled in EndElement); parentIdx -1 means "unknown yet",
// patched in by the caller once available.
func (h *xmlHandler) push(n node, parentIdx int) int {
	n.parentIndex = parentIdx
	idx := len(h.doc.arena)
	h.doc.arena = append(h.doc.arena, n)
	if parentIdx >= 0 {
		h.doc.arena[parentIdx].children = append(h.doc.arena[parentIdx].children, idx)
	}
	return idx
}

func localName(rawName string) string {
	if i := strings.IndexByte(rawName, ':'); i >= 0 {
		return rawName[i+1:]
	}
	return rawName
}

// BuildFromXML parses an XML document into a generic Document tree,
// collapsing every element into a scalar (bare text), a map (one
// "@attr" entry per attribute, "#text" for any direct text alongside
// real children, one entry per child element), matching the shape
// BuildFromJSON/BuildFromYAML already produce so DumpJSON/DumpYAML
// render all three formats identically.
func BuildFromXML(data []byte, repo *xmlns.Repository) (*Document, error) {
	doc := &Document{}
	handler := &xmlHandler{doc: doc}
	nsCxt := repo.CreateContext()
	tokens := sax.NewMapTokenTable(nil)
	if err := sax.Parse(data, handler, nsCxt, tokens); err != nil {
		return nil, err
	}
	return doc, nil
}
