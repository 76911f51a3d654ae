package yamlstream

import (
	"bytes"

	"github.com/dhamidi/orcus-go/strview"
)

// blockParser walks the line-split input with the recursive-descent
// shape spec.md §4.8 describes as an indent/scope state machine: each
// call into parseNode commits to exactly one value (scalar, sequence,
// or mapping) at a given indent and returns the index of the first
// line belonging to whatever comes next.
type blockParser struct {
	lines   []rawLine
	handler Handler
}

func (bp *blockParser) skipBlank(i int) int {
	for i < len(bp.lines) && (bp.lines[i].blank || len(stripComment(bp.lines[i].text)) == 0) {
		i++
	}
	return i
}

func isSeqMarker(content []byte) bool {
	if len(content) == 1 && content[0] == '-' {
		return true
	}
	return len(content) >= 2 && content[0] == '-' && content[1] == ' '
}

// splitKeyValue looks for a `key: value` shape: a quoted or unquoted
// key followed by a colon that is itself followed by a space or
// end-of-line (the usual YAML disambiguation from colons inside plain
// scalars, e.g. a bare URL). ok is false if content is not a key line.
func splitKeyValue(content []byte) (key []byte, value []byte, ok bool) {
	if len(content) == 0 {
		return nil, nil, false
	}
	if content[0] == '{' || content[0] == '[' {
		return nil, nil, false
	}

	if content[0] == '"' || content[0] == '\'' {
		var scratch []byte
		result, consumed := strview.ParseQuoted(content, &scratch)
		if !result.ConsumedDelimiter {
			return nil, nil, false
		}
		rest := bytes.TrimLeft(content[consumed:], " \t")
		if len(rest) == 0 || rest[0] != ':' {
			return nil, nil, false
		}
		return append([]byte(nil), result.View.Bytes()...), bytes.TrimLeft(rest[1:], " \t"), true
	}

	for i := 0; i < len(content); i++ {
		if content[i] != ':' {
			continue
		}
		if i+1 == len(content) || content[i+1] == ' ' || content[i+1] == '\t' {
			key = bytes.TrimSpace(content[:i])
			if len(key) == 0 {
				return nil, nil, false
			}
			value = bytes.TrimLeft(content[i+1:], " \t")
			return key, value, true
		}
	}
	return nil, nil, false
}

func (bp *blockParser) parseNode(i, indent int) (int, error) {
	i = bp.skipBlank(i)
	if i >= len(bp.lines) || bp.lines[i].indent < indent {
		bp.handler.Null()
		return i, nil
	}

	content := stripComment(bp.lines[i].text)
	switch {
	case isSeqMarker(content):
		return bp.parseSequence(i, indent)
	default:
		if _, _, ok := splitKeyValue(content); ok {
			return bp.parseMapping(i, indent)
		}
		return bp.parseScalarBlock(i, indent)
	}
}

func (bp *blockParser) parseMapping(i, indent int) (int, error) {
	bp.handler.BeginMap()
	for {
		i = bp.skipBlank(i)
		if i >= len(bp.lines) || bp.lines[i].indent != indent {
			break
		}
		content := stripComment(bp.lines[i].text)
		key, value, ok := splitKeyValue(content)
		if !ok {
			break
		}
		bp.handler.MapKey(key, false)

		next, err := bp.parseMapEntryValue(i, indent, value)
		if err != nil {
			return 0, err
		}
		i = next
	}
	bp.handler.EndMap()
	return i, nil
}

// parseMapEntryValue handles everything that can follow `key:` on line
// i: an empty value (content resumes at deeper indent, or is null), a
// literal block (`|`), a flow collection, a quoted scalar, or a plain
// scalar.
func (bp *blockParser) parseMapEntryValue(i, indent int, value []byte) (int, error) {
	trimmed := bytes.TrimSpace(value)
	line := bp.lines[i]

	if len(trimmed) == 0 {
		next := bp.skipBlank(i + 1)
		if next < len(bp.lines) && bp.lines[next].indent > indent {
			return bp.parseNode(i+1, bp.lines[next].indent)
		}
		bp.handler.Null()
		return i + 1, nil
	}

	if trimmed[0] == '|' {
		return bp.parseLiteralBlock(i+1, indent)
	}

	if trimmed[0] == '-' && len(trimmed) > 1 && trimmed[1] != ' ' {
		return 0, newParseError(line.offset, "inline sequence after ':' is not allowed")
	}
	if string(trimmed) == "-" {
		return 0, newParseError(line.offset, "inline sequence after ':' is not allowed")
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		fs := &flowScanner{input: trimmed}
		if err := parseFlowValue(fs, line.offset, bp.handler); err != nil {
			return 0, err
		}
		return i + 1, nil
	}

	if trimmed[0] == '"' || trimmed[0] == '\'' {
		var scratch []byte
		result, _ := strview.ParseQuoted(trimmed, &scratch)
		if !result.ConsumedDelimiter {
			return 0, newParseError(line.offset, "unterminated quoted scalar")
		}
		bp.handler.String(append([]byte(nil), result.View.Bytes()...), false)
		return i + 1, nil
	}

	emitPlainScalar(trimmed, bp.handler)
	return i + 1, nil
}

func (bp *blockParser) parseSequence(i, indent int) (int, error) {
	bp.handler.BeginSequence()
	for {
		i = bp.skipBlank(i)
		if i >= len(bp.lines) || bp.lines[i].indent != indent {
			break
		}
		content := stripComment(bp.lines[i].text)
		if !isSeqMarker(content) {
			break
		}

		rest := content[1:]
		trimmedRest := bytes.TrimLeft(rest, " ")
		consumedSpace := len(rest) - len(trimmedRest)
		itemIndent := bp.lines[i].indent + 1 + consumedSpace

		next, err := bp.parseSequenceItem(i, indent, itemIndent, trimmedRest)
		if err != nil {
			return 0, err
		}
		i = next
	}
	bp.handler.EndSequence()
	return i, nil
}

func (bp *blockParser) parseSequenceItem(i, seqIndent, itemIndent int, rest []byte) (int, error) {
	line := bp.lines[i]

	if len(rest) == 0 {
		next := bp.skipBlank(i + 1)
		if next < len(bp.lines) && bp.lines[next].indent > seqIndent {
			return bp.parseNode(i+1, bp.lines[next].indent)
		}
		bp.handler.Null()
		return i + 1, nil
	}

	if key, value, ok := splitKeyValue(rest); ok {
		return bp.parseInlineMapItem(i, seqIndent, itemIndent, key, value)
	}

	if rest[0] == '{' || rest[0] == '[' {
		fs := &flowScanner{input: rest}
		if err := parseFlowValue(fs, line.offset, bp.handler); err != nil {
			return 0, err
		}
		return i + 1, nil
	}

	if rest[0] == '"' || rest[0] == '\'' {
		var scratch []byte
		result, _ := strview.ParseQuoted(rest, &scratch)
		if !result.ConsumedDelimiter {
			return 0, newParseError(line.offset, "unterminated quoted scalar")
		}
		bp.handler.String(append([]byte(nil), result.View.Bytes()...), false)
		return i + 1, nil
	}

	emitPlainScalar(rest, bp.handler)
	return i + 1, nil
}

// parseInlineMapItem handles the common `- key: value` shorthand: the
// first mapping entry sits on the same line as the sequence marker,
// and any further entries of the same map are indented to line up with
// where `key` started.
func (bp *blockParser) parseInlineMapItem(i, seqIndent, itemIndent int, key, value []byte) (int, error) {
	bp.handler.BeginMap()
	bp.handler.MapKey(key, false)

	next, err := bp.parseMapEntryValue(i, itemIndent, value)
	if err != nil {
		return 0, err
	}
	i = next

	for {
		i = bp.skipBlank(i)
		if i >= len(bp.lines) || bp.lines[i].indent != itemIndent {
			break
		}
		content := stripComment(bp.lines[i].text)
		k, v, ok := splitKeyValue(content)
		if !ok {
			break
		}
		bp.handler.MapKey(k, false)
		next, err := bp.parseMapEntryValue(i, itemIndent, v)
		if err != nil {
			return 0, err
		}
		i = next
	}

	bp.handler.EndMap()
	return i, nil
}

func (bp *blockParser) parseScalarBlock(i, indent int) (int, error) {
	line := bp.lines[i]
	content := stripComment(line.text)
	trimmed := bytes.TrimSpace(content)

	if len(trimmed) > 0 && (trimmed[0] == '"' || trimmed[0] == '\'') {
		var scratch []byte
		result, consumed := strview.ParseQuoted(trimmed, &scratch)
		if !result.ConsumedDelimiter {
			return 0, newParseError(line.offset, "unterminated quoted scalar")
		}
		_ = consumed
		bp.handler.String(append([]byte(nil), result.View.Bytes()...), false)
		return i + 1, nil
	}

	var parts [][]byte
	j := i
	for j < len(bp.lines) {
		l := bp.lines[j]
		if l.blank || l.indent != indent {
			break
		}
		c := stripComment(l.text)
		if isSeqMarker(c) {
			break
		}
		if _, _, ok := splitKeyValue(c); ok {
			break
		}
		parts = append(parts, bytes.TrimSpace(c))
		j++
	}
	emitPlainScalar(bytes.Join(parts, []byte(" ")), bp.handler)
	return j, nil
}

// parseLiteralBlock gathers lines indented more than parentIndent into
// a literal string, preserving each line's indentation relative to the
// first non-blank line (spec.md §4.8 step 2), and trims trailing blank
// lines per YAML's default clip chomping.
func (bp *blockParser) parseLiteralBlock(start, parentIndent int) (int, error) {
	var buf [][]byte
	baseIndent := -1
	i := start
	for i < len(bp.lines) {
		l := bp.lines[i]
		if l.blank {
			buf = append(buf, nil)
			i++
			continue
		}
		if l.indent <= parentIndent {
			break
		}
		if baseIndent == -1 {
			baseIndent = l.indent
		}
		extra := l.indent - baseIndent
		line := append(bytes.Repeat([]byte(" "), extra), l.text...)
		buf = append(buf, line)
		i++
	}
	for len(buf) > 0 && len(buf[len(buf)-1]) == 0 {
		buf = buf[:len(buf)-1]
	}
	bp.handler.String(bytes.Join(buf, []byte("\n")), true)
	return i, nil
}
