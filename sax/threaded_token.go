package sax

import "github.com/dhamidi/orcus-go/xmlns"

// TokenKind identifies which Handler event a Token carries, for the
// threaded producer/consumer variant (spec.md §4.5's "parse_token").
type TokenKind int

const (
	TokenDeclaration TokenKind = iota
	TokenStartElement
	TokenEndElement
	TokenCharacters
)

// Token is one queued event, shaped so that a consumer goroutine can
// replay it against a Handler without re-parsing.
type Token struct {
	Kind TokenKind

	Decl Declaration

	NS      xmlns.ID
	Elem    int
	RawName string
	Attrs   []Attr

	Text      []byte
	Transient bool
}

// Replay invokes the matching Handler method for this token.
func (t Token) Replay(h Handler) {
	switch t.Kind {
	case TokenDeclaration:
		h.Declaration(t.Decl)
	case TokenStartElement:
		h.StartElement(t.NS, t.Elem, t.RawName, t.Attrs)
	case TokenEndElement:
		h.EndElement(t.NS, t.Elem, t.RawName)
	case TokenCharacters:
		h.Characters(t.Text, t.Transient)
	}
}

// tokenCollector is a Handler that appends every event as a Token.
// ThreadedParser does not use it; its producer uses threadedCollector.
type tokenCollector struct {
	tokens []Token
}

func (c *tokenCollector) Declaration(decl Declaration) {
	c.tokens = append(c.tokens, Token{Kind: TokenDeclaration, Decl: decl})
}

func (c *tokenCollector) StartElement(ns xmlns.ID, token int, rawName string, attrs []Attr) {
	// Attribute values are copied out: the parser's scratch buffer does
	// not outlive this call, and threaded consumers drain batches well
	// after the producer has moved on.
	owned := make([]Attr, len(attrs))
	for i, a := range attrs {
		owned[i] = a
		owned[i].Value = append([]byte(nil), a.Value...)
		owned[i].Transient = false
	}
	c.tokens = append(c.tokens, Token{Kind: TokenStartElement, NS: ns, Elem: token, RawName: rawName, Attrs: owned})
}

func (c *tokenCollector) EndElement(ns xmlns.ID, token int, rawName string) {
	c.tokens = append(c.tokens, Token{Kind: TokenEndElement, NS: ns, Elem: token, RawName: rawName})
}

func (c *tokenCollector) Characters(text []byte, transient bool) {
	owned := text
	if transient {
		owned = append([]byte(nil), text...)
	}
	c.tokens = append(c.tokens, Token{Kind: TokenCharacters, Text: owned, Transient: false})
}
