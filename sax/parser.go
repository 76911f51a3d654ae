package sax

import (
	"github.com/dhamidi/orcus-go/xmlns"
)

// Parser drives a single-threaded SAX scan over one XML document,
// invoking Handler methods in document order (spec.md §4.5). It owns a
// scratch buffer used to decode entity references in character data,
// which is reused (and therefore overwritten) across Characters calls;
// any event whose view points into that buffer is reported transient.
// Attribute values are decoded without it.
type Parser struct {
	scratch []byte
}

// NewParser returns a Parser with an empty scratch buffer, ready for
// repeated use across documents.
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans data, resolving namespaces against nsCxt and mapping
// element/attribute names through tokens, and invokes handler for each
// event. nsCxt should be a fresh xmlns.Context for the document (or one
// seeded with predefined prefixes); its pushed bindings are fully
// popped again by the time Parse returns.
func Parse(data []byte, handler Handler, nsCxt *xmlns.Context, tokens TokenTable) error {
	return NewParser().Parse(data, handler, nsCxt, tokens)
}

// Parse is the method form of the package-level Parse, reusing p's
// scratch buffer across calls.
func (p *Parser) Parse(data []byte, handler Handler, nsCxt *xmlns.Context, tokens TokenTable) error {
	s := newScanner(data)
	skipBOM(s)

	if err := p.parseDeclarationIfPresent(s, handler); err != nil {
		return err
	}

	if err := p.skipMisc(s); err != nil {
		return err
	}

	if s.eof() {
		return newParseError(int64(s.pos), "no root element found")
	}
	if err := p.parseElement(s, handler, nsCxt, tokens); err != nil {
		return err
	}

	return p.skipMisc(s)
}

func skipBOM(s *scanner) {
	if s.matches("\xef\xbb\xbf") {
		s.advanceN(3)
	}
}

func (p *Parser) parseDeclarationIfPresent(s *scanner, handler Handler) error {
	s.skipSpace()
	if !s.matches("<?xml") {
		return nil
	}
	start := s.pos
	s.advanceN(5)
	s.skipSpace()

	var decl Declaration
	for {
		s.skipSpace()
		if s.matches("?>") {
			s.advanceN(2)
			handler.Declaration(decl)
			return nil
		}
		if s.eof() {
			return newParseError(int64(start), "unterminated XML declaration")
		}
		name := s.scanName()
		if name == nil {
			return newParseError(int64(s.pos), "expected attribute name in XML declaration")
		}
		s.skipSpace()
		if s.peek() != '=' {
			return newParseError(int64(s.pos), "expected '=' in XML declaration")
		}
		s.advance()
		s.skipSpace()
		value, err := p.scanQuotedLiteral(s)
		if err != nil {
			return err
		}
		switch string(name) {
		case "version":
			decl.Version = string(value)
		case "encoding":
			decl.Encoding = string(value)
		case "standalone":
			decl.Standalone = string(value)
		}
	}
}

// scanQuotedLiteral reads a '...' or "..." literal with no entity
// processing (used for declaration pseudo-attributes).
func (p *Parser) scanQuotedLiteral(s *scanner) ([]byte, error) {
	quote := s.peek()
	if quote != '\'' && quote != '"' {
		return nil, newParseError(int64(s.pos), "expected quoted literal")
	}
	s.advance()
	start := s.pos
	for s.peek() != quote {
		if s.eof() {
			return nil, newParseError(int64(start), "unterminated quoted literal")
		}
		s.advance()
	}
	value := s.input[start:s.pos]
	s.advance()
	return value, nil
}

// skipMisc consumes comments, processing instructions, and a DOCTYPE
// declaration (with its optional internal subset) between the prolog
// and the root element, or after the root element closes.
func (p *Parser) skipMisc(s *scanner) error {
	for {
		s.skipSpace()
		switch {
		case s.matches("<!--"):
			if err := p.skipComment(s); err != nil {
				return err
			}
		case s.matches("<?"):
			if err := p.skipProcessingInstruction(s); err != nil {
				return err
			}
		case s.matches("<!DOCTYPE"):
			if err := p.skipDoctype(s); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *Parser) skipComment(s *scanner) error {
	start := s.pos
	s.advanceN(4)
	for !s.matches("-->") {
		if s.eof() {
			return newParseError(int64(start), "unterminated comment")
		}
		s.advance()
	}
	s.advanceN(3)
	return nil
}

func (p *Parser) skipProcessingInstruction(s *scanner) error {
	start := s.pos
	s.advanceN(2)
	for !s.matches("?>") {
		if s.eof() {
			return newParseError(int64(start), "unterminated processing instruction")
		}
		s.advance()
	}
	s.advanceN(2)
	return nil
}

func (p *Parser) skipDoctype(s *scanner) error {
	start := s.pos
	s.advanceN(9)
	depth := 0
	for {
		if s.eof() {
			return newParseError(int64(start), "unterminated DOCTYPE declaration")
		}
		ch := s.peek()
		switch ch {
		case '[':
			depth++
			s.advance()
		case ']':
			depth--
			s.advance()
		case '>':
			s.advance()
			if depth <= 0 {
				return nil
			}
		default:
			s.advance()
		}
	}
}
