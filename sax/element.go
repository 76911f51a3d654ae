package sax

import (
	"bytes"

	"github.com/dhamidi/orcus-go/xmlns"
)

// rawAttr is one attribute as scanned, before namespace resolution.
type rawAttr struct {
	prefix []byte
	local  []byte
	value  []byte
}

// parseElement parses one element, including its full subtree, and
// reports start/characters/end events to handler. nsCxt's bindings
// declared by this element (and its xmlns:* attributes) are popped
// again before returning, so sibling elements see the outer scope.
func (p *Parser) parseElement(s *scanner, handler Handler, nsCxt *xmlns.Context, tokens TokenTable) error {
	startPos := s.pos
	if s.peek() != '<' {
		return newParseError(int64(s.pos), "expected '<' at start of element")
	}
	s.advance()

	rawName := s.scanName()
	if rawName == nil {
		return newParseError(int64(startPos), "expected element name")
	}
	prefix, local := splitQName(rawName)

	attrs, selfClosing, err := p.parseAttributes(s)
	if err != nil {
		return err
	}

	pushedPrefixes := pushNamespaceDecls(nsCxt, attrs)
	defer func() {
		for _, pfx := range pushedPrefixes {
			nsCxt.Pop(pfx)
		}
	}()

	elemNS := resolveElementNS(nsCxt, prefix)
	elemToken := tokens.TokenID(local)

	resolved, err := p.resolveAttrs(nsCxt, tokens, attrs)
	if err != nil {
		return err
	}

	handler.StartElement(elemNS, elemToken, string(rawName), resolved)

	if selfClosing {
		handler.EndElement(elemNS, elemToken, string(rawName))
		return nil
	}

	if err := p.parseContent(s, handler, nsCxt, tokens, rawName); err != nil {
		return err
	}

	handler.EndElement(elemNS, elemToken, string(rawName))
	return nil
}

// parseContent consumes character data, CDATA, comments, PIs, and
// nested elements until the matching end tag for elementName is found.
func (p *Parser) parseContent(s *scanner, handler Handler, nsCxt *xmlns.Context, tokens TokenTable, elementName []byte) error {
	for {
		if s.eof() {
			return newParseError(int64(s.pos), "unexpected end of document inside element %q", elementName)
		}

		switch {
		case s.matches("</"):
			return p.expectEndTag(s, elementName)

		case s.matches("<![CDATA["):
			text, err := p.scanCDATA(s)
			if err != nil {
				return err
			}
			handler.Characters(text, false)

		case s.matches("<!--"):
			if err := p.skipComment(s); err != nil {
				return err
			}

		case s.matches("<?"):
			if err := p.skipProcessingInstruction(s); err != nil {
				return err
			}

		case s.peek() == '<':
			if err := p.parseElement(s, handler, nsCxt, tokens); err != nil {
				return err
			}

		default:
			text, transient, err := p.scanCharacterData(s)
			if err != nil {
				return err
			}
			if len(text) > 0 {
				handler.Characters(text, transient)
			}
		}
	}
}

func (p *Parser) expectEndTag(s *scanner, elementName []byte) error {
	start := s.pos
	s.advanceN(2)
	name := s.scanName()
	s.skipSpace()
	if s.peek() != '>' {
		return newParseError(int64(start), "malformed end tag for %q", elementName)
	}
	s.advance()
	if !bytes.Equal(name, elementName) {
		return newParseError(int64(start), "mismatched end tag: expected %q, got %q", elementName, name)
	}
	return nil
}

func (p *Parser) scanCDATA(s *scanner) ([]byte, error) {
	start := s.pos
	s.advanceN(9)
	contentStart := s.pos
	for !s.matches("]]>") {
		if s.eof() {
			return nil, newParseError(int64(start), "unterminated CDATA section")
		}
		s.advance()
	}
	text := s.input[contentStart:s.pos]
	s.advanceN(3)
	return text, nil
}

// scanCharacterData consumes a run of text up to the next '<', decoding
// entity references. If no entities were present the result is a
// direct, non-transient view into the input; otherwise it is decoded
// into the parser's reusable scratch buffer and reported transient.
func (p *Parser) scanCharacterData(s *scanner) ([]byte, bool, error) {
	start := s.pos
	hasEntity := false
	for s.peek() != '<' && !s.eof() {
		if s.peek() == '&' {
			hasEntity = true
		}
		s.advance()
	}
	raw := s.input[start:s.pos]
	if !hasEntity {
		return raw, false, nil
	}
	decoded, err := p.decodeEntities(raw)
	if err != nil {
		return nil, false, err
	}
	return decoded, true, nil
}

// parseAttributes scans zero or more name="value" pairs up to the
// closing '>' or self-closing "/>", decoding entity references in each
// value directly (attribute values are returned as non-transient byte
// slices: a view into the input when the value has no entity
// reference, otherwise a freshly allocated decoded copy).
func (p *Parser) parseAttributes(s *scanner) ([]rawAttr, bool, error) {
	var attrs []rawAttr
	for {
		s.skipSpace()
		if s.matches("/>") {
			s.advanceN(2)
			return attrs, true, nil
		}
		if s.peek() == '>' {
			s.advance()
			return attrs, false, nil
		}
		if s.eof() {
			return nil, false, newParseError(int64(s.pos), "unterminated start tag")
		}

		name := s.scanName()
		if name == nil {
			return nil, false, newParseError(int64(s.pos), "expected attribute name or '>'")
		}
		s.skipSpace()
		if s.peek() != '=' {
			return nil, false, newParseError(int64(s.pos), "expected '=' after attribute name %q", name)
		}
		s.advance()
		s.skipSpace()

		quote := s.peek()
		if quote != '\'' && quote != '"' {
			return nil, false, newParseError(int64(s.pos), "expected quoted attribute value for %q", name)
		}
		s.advance()
		valStart := s.pos
		for s.peek() != quote {
			if s.eof() {
				return nil, false, newParseError(int64(valStart), "unterminated attribute value for %q", name)
			}
			s.advance()
		}
		raw := s.input[valStart:s.pos]
		s.advance()

		decoded, err := decodeEntitiesFresh(raw)
		if err != nil {
			return nil, false, err
		}

		prefix, local := splitQName(name)
		attrs = append(attrs, rawAttr{prefix: prefix, local: local, value: decoded})
	}
}

func splitQName(name []byte) (prefix, local []byte) {
	if i := bytes.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return nil, name
}

// pushNamespaceDecls scans attrs for xmlns / xmlns:prefix declarations
// and pushes them onto nsCxt, returning the prefixes pushed (for the
// caller to pop on element close). Namespace declarations take effect
// for the whole element, including its own prefix and attributes, so
// this must run before ns resolution.
func pushNamespaceDecls(nsCxt *xmlns.Context, attrs []rawAttr) []string {
	var pushed []string
	for _, a := range attrs {
		switch {
		case a.prefix == nil && bytes.Equal(a.local, []byte("xmlns")):
			nsCxt.Push("", string(a.value))
			pushed = append(pushed, "")
		case bytes.Equal(a.prefix, []byte("xmlns")):
			prefix := string(a.local)
			nsCxt.Push(prefix, string(a.value))
			pushed = append(pushed, prefix)
		}
	}
	return pushed
}

func resolveElementNS(nsCxt *xmlns.Context, prefix []byte) xmlns.ID {
	return nsCxt.Get(string(prefix))
}

// resolveAttrs maps each non-namespace-declaration attribute to its
// resolved namespace id and token id. Unprefixed attributes never
// inherit the default namespace (XML Namespaces semantics).
func (p *Parser) resolveAttrs(nsCxt *xmlns.Context, tokens TokenTable, attrs []rawAttr) ([]Attr, error) {
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.prefix == nil && bytes.Equal(a.local, []byte("xmlns")) {
			continue
		}
		if bytes.Equal(a.prefix, []byte("xmlns")) {
			continue
		}
		var ns xmlns.ID
		if a.prefix != nil {
			ns = nsCxt.Get(string(a.prefix))
		}
		out = append(out, Attr{
			NS:        ns,
			Token:     tokens.TokenID(a.local),
			RawName:   string(a.local),
			Value:     a.value,
			Transient: false,
		})
	}
	return out, nil
}
