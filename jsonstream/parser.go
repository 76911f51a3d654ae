package jsonstream

import (
	"strconv"

	"github.com/dhamidi/orcus-go/strview"
)

// Parser is a recursive-descent JSON parser. It owns a scratch buffer
// reused across ParseQuoted calls, so string/key events whose view
// points into that buffer are reported transient, per spec.md §4.7.
type Parser struct {
	scratch []byte
}

// NewParser returns a ready-to-use Parser.
func NewParser() *Parser { return &Parser{} }

// Parse scans data top to bottom and reports events to handler.
func Parse(data []byte, handler Handler) error {
	return NewParser().Parse(data, handler)
}

type scanner struct {
	input []byte
	pos   int
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) peekN(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *scanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	return ch
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

func (s *scanner) skipSpace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

// Parse is the method form of the package-level Parse, reusing p's
// scratch buffer across calls.
func (p *Parser) Parse(data []byte, handler Handler) error {
	s := &scanner{input: data}
	handler.BeginParse()
	s.skipSpace()
	if err := p.parseValue(s, handler); err != nil {
		return err
	}
	s.skipSpace()
	if !s.eof() {
		return newParseError(s.pos, "unexpected trailing data after top-level value")
	}
	handler.EndParse()
	return nil
}

func (p *Parser) parseValue(s *scanner, handler Handler) error {
	s.skipSpace()
	switch {
	case s.eof():
		return newParseError(s.pos, "unexpected end of input, expected a value")
	case s.peek() == '{':
		return p.parseObject(s, handler)
	case s.peek() == '[':
		return p.parseArray(s, handler)
	case s.peek() == '"':
		text, transient, err := p.parseString(s)
		if err != nil {
			return err
		}
		handler.String(text, transient)
		return nil
	case s.peek() == 't':
		return p.parseLiteral(s, "true", func() { handler.BooleanTrue() })
	case s.peek() == 'f':
		return p.parseLiteral(s, "false", func() { handler.BooleanFalse() })
	case s.peek() == 'n':
		return p.parseLiteral(s, "null", func() { handler.Null() })
	case s.peek() == '-' || isDigit(s.peek()):
		return p.parseNumber(s, handler)
	default:
		return newParseError(s.pos, "unexpected character %q, expected a value", s.peek())
	}
}

func (p *Parser) parseLiteral(s *scanner, lit string, emit func()) error {
	start := s.pos
	for i := 0; i < len(lit); i++ {
		if s.peek() != lit[i] {
			return newParseError(start, "expected literal %q", lit)
		}
		s.advance()
	}
	emit()
	return nil
}

func (p *Parser) parseObject(s *scanner, handler Handler) error {
	start := s.pos
	s.advance() // '{'
	handler.BeginObject()
	s.skipSpace()
	if s.peek() == '}' {
		s.advance()
		handler.EndObject()
		return nil
	}
	for {
		s.skipSpace()
		if s.peek() != '"' {
			return newParseError(s.pos, "expected a quoted object key")
		}
		key, transient, err := p.parseString(s)
		if err != nil {
			return err
		}
		handler.ObjectKey(key, transient)

		s.skipSpace()
		if s.peek() != ':' {
			return newParseError(s.pos, "expected ':' after object key")
		}
		s.advance()

		if err := p.parseValue(s, handler); err != nil {
			return err
		}

		s.skipSpace()
		switch s.peek() {
		case ',':
			s.advance()
			continue
		case '}':
			s.advance()
			handler.EndObject()
			return nil
		default:
			return newParseError(start, "unterminated object, expected ',' or '}'")
		}
	}
}

func (p *Parser) parseArray(s *scanner, handler Handler) error {
	start := s.pos
	s.advance() // '['
	handler.BeginArray()
	s.skipSpace()
	if s.peek() == ']' {
		s.advance()
		handler.EndArray()
		return nil
	}
	for {
		if err := p.parseValue(s, handler); err != nil {
			return err
		}
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.advance()
			continue
		case ']':
			s.advance()
			handler.EndArray()
			return nil
		default:
			return newParseError(start, "unterminated array, expected ',' or ']'")
		}
	}
}

// parseString delegates to strview.ParseQuoted (shared with
// yamlstream's quoted scalars) using p's reusable scratch buffer.
func (p *Parser) parseString(s *scanner) ([]byte, bool, error) {
	start := s.pos
	result, consumed := strview.ParseQuoted(s.input[s.pos:], &p.scratch)
	s.pos += consumed
	if !result.ConsumedDelimiter {
		return nil, false, newParseError(start, "unterminated string literal")
	}
	if result.HasControlChar {
		return nil, false, newParseError(start, "unescaped control character in string literal")
	}
	return result.View.Bytes(), result.Transient, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// parseNumber scans a JSON number (optional '-', digits, optional
// fraction, optional exponent) in the same digit/fraction/exponent
// shape as the teacher's scanNumber, then hands the raw text to
// strconv for the actual float64 conversion.
func (p *Parser) parseNumber(s *scanner, handler Handler) error {
	start := s.pos
	if s.peek() == '-' {
		s.advance()
	}
	if s.peek() == '0' {
		s.advance()
	} else if isDigit(s.peek()) {
		for isDigit(s.peek()) {
			s.advance()
		}
	} else {
		return newParseError(start, "malformed number")
	}

	if s.peek() == '.' {
		s.advance()
		if !isDigit(s.peek()) {
			return newParseError(start, "malformed number: expected digit after '.'")
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return newParseError(start, "malformed number: expected digit in exponent")
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.input[start:s.pos])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return newParseError(start, "malformed number %q: %v", text, err)
	}
	handler.Number(value)
	return nil
}
