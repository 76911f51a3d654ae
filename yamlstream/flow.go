package yamlstream

import (
	"bytes"

	"github.com/dhamidi/orcus-go/strview"
)

// flowScanner is a byte cursor over one line's worth of flow-collection
// syntax (`{...}` / `[...]`); flow collections in this parser are
// confined to a single logical line, which covers every construct
// spec.md §4.8 actually requires (block collections are the only ones
// that span multiple lines).
type flowScanner struct {
	input []byte
	pos   int
}

func (s *flowScanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *flowScanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	return ch
}

func (s *flowScanner) eof() bool { return s.pos >= len(s.input) }

func (s *flowScanner) skipSpace() {
	for s.peek() == ' ' || s.peek() == '\t' {
		s.advance()
	}
}

// parseFlowValue parses one flow scalar or collection starting at the
// cursor and reports it to handler.
func parseFlowValue(s *flowScanner, offset int, handler Handler) error {
	s.skipSpace()
	switch {
	case s.eof():
		handler.Null()
		return nil
	case s.peek() == '{':
		return parseFlowMap(s, offset, handler)
	case s.peek() == '[':
		return parseFlowSeq(s, offset, handler)
	case s.peek() == '"' || s.peek() == '\'':
		return parseFlowQuoted(s, offset, handler)
	default:
		text := scanFlowScalar(s, ",}]")
		emitPlainScalar(text, handler)
		return nil
	}
}

func parseFlowQuoted(s *flowScanner, offset int, handler Handler) error {
	var scratch []byte
	result, consumed := strview.ParseQuoted(s.input[s.pos:], &scratch)
	if !result.ConsumedDelimiter {
		return newParseError(offset+s.pos, "unterminated quoted scalar")
	}
	s.pos += consumed
	handler.String(result.View.Bytes(), result.Transient)
	return nil
}

func parseFlowMap(s *flowScanner, offset int, handler Handler) error {
	start := s.pos
	s.advance() // '{'
	handler.BeginMap()
	s.skipSpace()
	if s.peek() == '}' {
		s.advance()
		handler.EndMap()
		return nil
	}
	for {
		s.skipSpace()
		var key []byte
		if s.peek() == '"' || s.peek() == '\'' {
			var scratch []byte
			result, consumed := strview.ParseQuoted(s.input[s.pos:], &scratch)
			if !result.ConsumedDelimiter {
				return newParseError(offset+s.pos, "unterminated quoted key")
			}
			s.pos += consumed
			key = append([]byte(nil), result.View.Bytes()...)
		} else {
			key = scanFlowScalar(s, ":")
		}
		handler.MapKey(key, false)

		s.skipSpace()
		if s.peek() != ':' {
			return newParseError(offset+s.pos, "expected ':' in flow mapping")
		}
		s.advance()

		if err := parseFlowValue(s, offset, handler); err != nil {
			return err
		}

		s.skipSpace()
		switch s.peek() {
		case ',':
			s.advance()
			continue
		case '}':
			s.advance()
			handler.EndMap()
			return nil
		default:
			return newParseError(offset+start, "unterminated flow mapping, expected ',' or '}'")
		}
	}
}

func parseFlowSeq(s *flowScanner, offset int, handler Handler) error {
	start := s.pos
	s.advance() // '['
	handler.BeginSequence()
	s.skipSpace()
	if s.peek() == ']' {
		s.advance()
		handler.EndSequence()
		return nil
	}
	for {
		if err := parseFlowValue(s, offset, handler); err != nil {
			return err
		}
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.advance()
			continue
		case ']':
			s.advance()
			handler.EndSequence()
			return nil
		default:
			return newParseError(offset+start, "unterminated flow sequence, expected ',' or ']'")
		}
	}
}

// scanFlowScalar reads an unquoted scalar up to (but not including)
// the first byte in stopSet, trimming surrounding whitespace.
func scanFlowScalar(s *flowScanner, stopSet string) []byte {
	start := s.pos
	for !s.eof() && !bytes.ContainsRune([]byte(stopSet), rune(s.peek())) {
		s.advance()
	}
	return bytes.TrimSpace(s.input[start:s.pos])
}
