// Package scan implements the vectorized scan primitives used by the
// parser hot loop: skip-while-in-set, skip-control-and-space, and
// match-fixed-prefix. Each has a scalar fallback; an optional SIMD fast
// path must produce bit-identical results to the scalar loop.
package scan

// SkipSet advances past any run of bytes in charsToSkip (at most 16
// distinct bytes) starting at src[pos] and returns the new position.
// It never reads past len(src).
func SkipSet(src []byte, pos int, charsToSkip []byte) int {
	return skipSet(src, pos, charsToSkip)
}

// SkipSpaceAndControl advances past bytes <= 0x20 or with the high bit
// set, starting at src[pos], and returns the new position.
func SkipSpaceAndControl(src []byte, pos int) int {
	return skipSpaceAndControl(src, pos)
}

// ParseExpected reports whether src[pos:pos+len(expected)] equals
// expected; if so it returns the advanced position and true.
func ParseExpected(src []byte, pos int, expected []byte) (int, bool) {
	return parseExpected(src, pos, expected)
}

func inSet(b byte, set []byte) bool {
	for _, c := range set {
		if b == c {
			return true
		}
	}
	return false
}

func skipSetScalar(src []byte, pos int, charsToSkip []byte) int {
	n := len(src)
	for pos < n && inSet(src[pos], charsToSkip) {
		pos++
	}
	return pos
}

func skipSpaceAndControlScalar(src []byte, pos int) int {
	n := len(src)
	for pos < n {
		b := src[pos]
		if b <= 0x20 || b&0x80 != 0 {
			pos++
			continue
		}
		break
	}
	return pos
}

func parseExpectedScalar(src []byte, pos int, expected []byte) (int, bool) {
	if pos+len(expected) > len(src) {
		return pos, false
	}
	for i, c := range expected {
		if src[pos+i] != c {
			return pos, false
		}
	}
	return pos + len(expected), true
}
