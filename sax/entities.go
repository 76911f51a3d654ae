package sax

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// decodeEntities expands &amp; &lt; &gt; &apos; &quot; and numeric
// character references in raw into p's reusable scratch buffer,
// encoding numeric references with unicode/utf8. Callers must treat
// the result as transient.
func (p *Parser) decodeEntities(raw []byte) ([]byte, error) {
	p.scratch = p.scratch[:0]
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			p.scratch = append(p.scratch, raw[i])
			i++
			continue
		}
		end := bytes.IndexByte(raw[i:], ';')
		if end < 0 {
			return nil, newParseError(0, "unterminated entity reference")
		}
		ref := raw[i+1 : i+end]
		decoded, err := expandEntity(ref)
		if err != nil {
			return nil, err
		}
		p.scratch = append(p.scratch, decoded...)
		i += end + 1
	}
	return p.scratch, nil
}

// decodeEntitiesFresh is decodeEntities without a shared scratch
// buffer, used for attribute values (each of which is independent and
// small, so a fresh allocation per attribute is simpler than threading
// scratch ownership through parseAttributes).
func decodeEntitiesFresh(raw []byte) ([]byte, error) {
	if bytes.IndexByte(raw, '&') < 0 {
		return raw, nil
	}
	var out []byte
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			out = append(out, raw[i])
			i++
			continue
		}
		end := bytes.IndexByte(raw[i:], ';')
		if end < 0 {
			return nil, newParseError(0, "unterminated entity reference")
		}
		ref := raw[i+1 : i+end]
		decoded, err := expandEntity(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
		i += end + 1
	}
	return out, nil
}

func expandEntity(ref []byte) ([]byte, error) {
	switch string(ref) {
	case "amp":
		return []byte("&"), nil
	case "lt":
		return []byte("<"), nil
	case "gt":
		return []byte(">"), nil
	case "apos":
		return []byte("'"), nil
	case "quot":
		return []byte("\""), nil
	}

	if len(ref) > 1 && ref[0] == '#' {
		var r rune
		if len(ref) > 2 && (ref[1] == 'x' || ref[1] == 'X') {
			v, err := strconv.ParseUint(string(ref[2:]), 16, 32)
			if err != nil {
				return nil, newParseError(0, "invalid hex character reference &%s;", ref)
			}
			r = rune(v)
		} else {
			v, err := strconv.ParseUint(string(ref[1:]), 10, 32)
			if err != nil {
				return nil, newParseError(0, "invalid decimal character reference &%s;", ref)
			}
			r = rune(v)
		}
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, r)
		return buf[:n], nil
	}

	return nil, newParseError(0, "unknown entity reference &%s;", ref)
}
