package gnumeric

import (
	"strconv"

	"github.com/dhamidi/orcus-go/ctxstack"
)

func findAttr(attrs []ctxstack.Attr, token int) (ctxstack.Attr, bool) {
	for _, a := range attrs {
		if a.Name.Token == token {
			return a, true
		}
	}
	return ctxstack.Attr{}, false
}

func attrString(attrs []ctxstack.Attr, token int) (string, bool) {
	a, ok := findAttr(attrs, token)
	if !ok {
		return "", false
	}
	return a.Value.String(), true
}

func attrInt(attrs []ctxstack.Attr, token int) (int, bool) {
	s, ok := attrString(attrs, token)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func attrFloat(attrs []ctxstack.Attr, token int) (float64, bool) {
	s, ok := attrString(attrs, token)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func attrBool(attrs []ctxstack.Attr, token int) bool {
	s, ok := attrString(attrs, token)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		return n != 0
	}
	return s == "true"
}

// parseGnumericRGB decodes Gnumeric's "RRRR:GGGG:BBBB" 16-bit-per-
// channel color attribute syntax into 8-bit RGB, matching
// parse_gnumeric_rgb's >>8 truncation.
func parseGnumericRGB(v string) (r, g, b byte, ok bool) {
	var parts [3]string
	rest := v
	for i := 0; i < 3; i++ {
		idx := -1
		for j := 0; j < len(rest); j++ {
			if rest[j] == ':' {
				idx = j
				break
			}
		}
		if i < 2 {
			if idx < 0 {
				return 0, 0, 0, false
			}
			parts[i] = rest[:idx]
			rest = rest[idx+1:]
		} else {
			parts[i] = rest
		}
	}
	channels := make([]byte, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = byte(n >> 8)
	}
	return channels[0], channels[1], channels[2], true
}
