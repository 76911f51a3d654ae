package yamlstream

import "bytes"

// rawLine is one physical, newline-terminated line of the input.
type rawLine struct {
	offset int    // byte offset of the first content byte (after indent)
	indent int    // count of leading space bytes
	text   []byte // everything after the leading spaces, newline excluded
	blank  bool   // true if text is empty or whitespace only; comment-only lines are not blank
}

// splitLines breaks data into physical lines without interpreting
// comments (callers strip `#`-to-end-of-line themselves, since literal
// blocks must NOT have comments stripped).
func splitLines(data []byte) []rawLine {
	var lines []rawLine
	pos := 0
	for pos <= len(data) {
		end := bytes.IndexByte(data[pos:], '\n')
		var lineBytes []byte
		var next int
		if end < 0 {
			lineBytes = data[pos:]
			next = len(data) + 1
		} else {
			lineBytes = data[pos : pos+end]
			next = pos + end + 1
		}
		lineBytes = bytes.TrimSuffix(lineBytes, []byte("\r"))

		indent := 0
		for indent < len(lineBytes) && lineBytes[indent] == ' ' {
			indent++
		}
		content := lineBytes[indent:]
		lines = append(lines, rawLine{
			offset: pos + indent,
			indent: indent,
			text:   content,
			blank:  len(bytes.TrimSpace(content)) == 0,
		})

		if end < 0 {
			break
		}
		pos = next
	}
	return lines
}

// stripComment removes a `#` comment from text, provided the `#` is
// not inside a quoted scalar and is either at the start of the
// (trimmed) text or preceded by whitespace, per common YAML practice.
func stripComment(text []byte) []byte {
	inSingle, inDouble := false, false
	for i, b := range text {
		switch {
		case b == '\'' && !inDouble:
			inSingle = !inSingle
		case b == '"' && !inSingle:
			inDouble = !inDouble
		case b == '#' && !inSingle && !inDouble:
			if i == 0 || text[i-1] == ' ' || text[i-1] == '\t' {
				return bytes.TrimRight(text[:i], " \t")
			}
		}
	}
	return text
}
