package sax

import "github.com/dhamidi/orcus-go/xmlns"

// UnknownToken is returned by a TokenTable for any name it does not
// recognize, mirroring XML_UNKNOWN_TOKEN in spec.md §4.5.
const UnknownToken = -1

// TokenTable maps element/attribute local names to small per-format
// integer ids. Each format package (xlsxml, xlsx, ods, gnumeric, …)
// supplies its own table.
type TokenTable interface {
	TokenID(name []byte) int
	TokenName(id int) string
}

// MapTokenTable is a TokenTable backed by a plain name→id map, good
// enough for every format handler in this module: tables are small,
// built once, and never mutated after construction.
type MapTokenTable struct {
	byName map[string]int
	byID   map[int]string
}

// NewMapTokenTable builds a table from name→id pairs.
func NewMapTokenTable(entries map[string]int) *MapTokenTable {
	t := &MapTokenTable{
		byName: make(map[string]int, len(entries)),
		byID:   make(map[int]string, len(entries)),
	}
	for name, id := range entries {
		t.byName[name] = id
		t.byID[id] = name
	}
	return t
}

// TokenID returns the id registered for name, or UnknownToken.
func (t *MapTokenTable) TokenID(name []byte) int {
	if id, ok := t.byName[string(name)]; ok {
		return id
	}
	return UnknownToken
}

// TokenName returns the name registered for id, or "" if unknown.
func (t *MapTokenTable) TokenName(id int) string {
	return t.byID[id]
}

// Declaration is the optional XML declaration at the top of a
// document (spec.md §4.5): `<?xml version="1.0" encoding="UTF-8"?>`.
type Declaration struct {
	Version    string
	Encoding   string
	Standalone string
}

// Attr is one flat (ns, name, value) attribute entry on a start-element
// event.
type Attr struct {
	NS        xmlns.ID
	Token     int
	RawName   string // the raw local name, for TokenUnknown diagnostics
	Value     []byte
	Transient bool
}

// Handler receives the balanced sequence of element/character events a
// Parser produces, per spec.md §4.5.
type Handler interface {
	Declaration(decl Declaration)
	StartElement(ns xmlns.ID, token int, rawName string, attrs []Attr)
	EndElement(ns xmlns.ID, token int, rawName string)
	Characters(text []byte, transient bool)
}
