//go:build !amd64

package scan

func skipSet(src []byte, pos int, charsToSkip []byte) int {
	return skipSetScalar(src, pos, charsToSkip)
}

func skipSpaceAndControl(src []byte, pos int) int {
	return skipSpaceAndControlScalar(src, pos)
}

func parseExpected(src []byte, pos int, expected []byte) (int, bool) {
	return parseExpectedScalar(src, pos, expected)
}
