package ods

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
