//go:build amd64

package scan

import "golang.org/x/sys/cpu"

// hasFastPath is a process-wide flag, set once from
// golang.org/x/sys/cpu at package init and never mutated afterward; it
// is a variable resolved at run time, not a compile-time constant.
var hasFastPath = cpu.X86.HasAVX2 || cpu.X86.HasSSE42

// skipSet advances 8 bytes at a time when the whole word is in the skip
// set, falling back to the scalar loop for the remainder; this keeps
// the result bit-identical to skipSetScalar while amortizing the common
// case of a long run of identical separator bytes.
func skipSet(src []byte, pos int, charsToSkip []byte) int {
	if !hasFastPath || len(charsToSkip) == 0 {
		return skipSetScalar(src, pos, charsToSkip)
	}
	n := len(src)
	for pos+8 <= n {
		allIn := true
		for i := 0; i < 8; i++ {
			if !inSet(src[pos+i], charsToSkip) {
				allIn = false
				break
			}
		}
		if !allIn {
			break
		}
		pos += 8
	}
	return skipSetScalar(src, pos, charsToSkip)
}

func skipSpaceAndControl(src []byte, pos int) int {
	if !hasFastPath {
		return skipSpaceAndControlScalar(src, pos)
	}
	n := len(src)
	for pos+8 <= n {
		allSkip := true
		for i := 0; i < 8; i++ {
			b := src[pos+i]
			if !(b <= 0x20 || b&0x80 != 0) {
				allSkip = false
				break
			}
		}
		if !allSkip {
			break
		}
		pos += 8
	}
	return skipSpaceAndControlScalar(src, pos)
}

func parseExpected(src []byte, pos int, expected []byte) (int, bool) {
	// Fixed-prefix match is already a single bounded comparison; the
	// scalar loop is the fast path here, SIMD gains nothing extra for
	// the short prefixes (element/attribute names) this is used for.
	return parseExpectedScalar(src, pos, expected)
}
