package strview

// QuotedResult is the output of ParseQuoted: either a view straight into
// the original stream (Transient == false, caller needs no copy), or a
// view into a scratch buffer the caller supplied (Transient == true)
// because escape sequences forced materialization — the caller must
// copy the bytes before the scratch buffer is reused.
type QuotedResult struct {
	View              View
	Transient         bool
	HasControlChar    bool
	ConsumedDelimiter bool
}

// ParseQuoted scans a quote-delimited string starting at src[0] (which
// must be the opening quote byte) and returns the decoded content plus
// the number of source bytes consumed (including both quotes). scratch
// is reused across calls by the caller to avoid per-call allocation
// when escapes are present; ParseQuoted only writes into it, never
// retains it past the call.
func ParseQuoted(src []byte, scratch *[]byte) (QuotedResult, int) {
	if len(src) == 0 {
		return QuotedResult{}, 0
	}
	quote := src[0]
	i := 1
	hasControl := false
	needsCopy := false

	// Fast scan: find the closing quote and detect whether any escape
	// or control character forces materialization.
	for j := i; j < len(src); j++ {
		b := src[j]
		if b == quote {
			if !needsCopy {
				return QuotedResult{
					View:              Of(src[i:j]),
					Transient:         false,
					HasControlChar:    hasControl,
					ConsumedDelimiter: true,
				}, j + 1
			}
			break
		}
		if b == '\\' {
			needsCopy = true
		}
		if b < 0x20 {
			hasControl = true
		}
	}
	if !needsCopy {
		// No closing quote found at all: unterminated string, return
		// everything after the opening quote as transient-free best effort.
		return QuotedResult{
			View:              Of(src[i:]),
			Transient:         false,
			HasControlChar:    hasControl,
			ConsumedDelimiter: false,
		}, len(src)
	}

	buf := (*scratch)[:0]
	j := i
	for j < len(src) {
		b := src[j]
		if b == quote {
			j++
			*scratch = buf
			return QuotedResult{
				View:              Of(buf),
				Transient:         true,
				HasControlChar:    hasControl,
				ConsumedDelimiter: true,
			}, j
		}
		if b < 0x20 {
			hasControl = true
		}
		if b == '\\' && j+1 < len(src) {
			esc := src[j+1]
			switch esc {
			case '"':
				buf = append(buf, '"')
			case '\'':
				buf = append(buf, '\'')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				n, cp := decodeUnicodeEscape(src[j:])
				buf = appendRune(buf, cp)
				j += n
				*scratch = buf
				continue
			default:
				buf = append(buf, esc)
			}
			j += 2
			continue
		}
		buf = append(buf, b)
		j++
	}
	*scratch = buf
	return QuotedResult{
		View:              Of(buf),
		Transient:         true,
		HasControlChar:    hasControl,
		ConsumedDelimiter: false,
	}, j
}

// decodeUnicodeEscape decodes a \uHHHH escape (with surrogate-pair
// handling for astral code points) starting at src[0] == '\\'. Returns
// the number of source bytes consumed and the decoded rune.
func decodeUnicodeEscape(src []byte) (int, rune) {
	if len(src) < 6 {
		return len(src), 0xFFFD
	}
	hi := hex4(src[2:6])
	if hi >= 0xD800 && hi <= 0xDBFF && len(src) >= 12 && src[6] == '\\' && src[7] == 'u' {
		lo := hex4(src[8:12])
		if lo >= 0xDC00 && lo <= 0xDFFF {
			cp := 0x10000 + (rune(hi-0xD800)<<10 | rune(lo-0xDC00))
			return 12, cp
		}
	}
	return 6, rune(hi)
}

func hex4(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		}
	}
	return v
}

func appendRune(buf []byte, r rune) []byte {
	var tmp [4]byte
	n := encodeRune(tmp[:], r)
	return append(buf, tmp[:n]...)
}

func encodeRune(dst []byte, r rune) int {
	return copy(dst, string(r))
}
