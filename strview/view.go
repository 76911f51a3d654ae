// Package strview implements a non-owning string view and a
// content-addressed interning pool used throughout the parser hot loop.
package strview

import "unicode/utf8"

// View is a (pointer, length) pair into someone else's byte buffer. It
// owns nothing; equality and hashing are content-based, never by
// pointer identity, except where a caller explicitly asks for identity
// via Identity.
type View struct {
	data []byte
}

// Of wraps an existing byte slice. The caller is responsible for keeping
// the backing array alive for as long as the view is used.
func Of(b []byte) View {
	return View{data: b}
}

// FromString wraps a Go string without copying; the returned View
// shares the string's backing array.
func FromString(s string) View {
	return View{data: stringBytes(s)}
}

func (v View) Len() int { return len(v.data) }

func (v View) Empty() bool { return len(v.data) == 0 }

func (v View) Bytes() []byte { return v.data }

func (v View) String() string { return string(v.data) }

// Identity returns a value that is stable and comparable for the
// lifetime of the backing array: the address of the first byte, or 0
// for an empty view.
func (v View) Identity() uintptr {
	if len(v.data) == 0 {
		return 0
	}
	return uintptr(ptrOf(v.data))
}

// Equal is content equality, never pointer equality.
func (v View) Equal(other View) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Less implements a lexicographic ordering, byte-wise.
func (v View) Less(other View) bool {
	n := len(v.data)
	if len(other.data) < n {
		n = len(other.data)
	}
	for i := 0; i < n; i++ {
		if v.data[i] != other.data[i] {
			return v.data[i] < other.data[i]
		}
	}
	return len(v.data) < len(other.data)
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Trim drops leading/trailing blanks (space, tab, CR, LF) and returns a
// sub-view; it allocates nothing.
func (v View) Trim() View {
	start, end := 0, len(v.data)
	for start < end && isBlank(v.data[start]) {
		start++
	}
	for end > start && isBlank(v.data[end-1]) {
		end--
	}
	return View{data: v.data[start:end]}
}

// Hash computes the FNV-style 32-bit content hash spec'd for the
// interning pool: h = 0; for each byte b: h = (h * 0x01000193) ^ b.
func (v View) Hash() uint32 {
	var h uint32
	for _, b := range v.data {
		h = (h * 0x01000193) ^ uint32(b)
	}
	return h
}

// ValidUTF8 reports whether the view's bytes form valid UTF-8; used by
// format handlers that must reject malformed character data.
func (v View) ValidUTF8() bool {
	return utf8.Valid(v.data)
}
