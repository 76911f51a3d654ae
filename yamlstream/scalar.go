package yamlstream

import (
	"bytes"

	"github.com/dhamidi/orcus-go/strview"
)

// emitPlainScalar classifies an unquoted scalar per spec.md §4.8 step 6
// and reports the matching Handler event. Quoted scalars bypass this
// entirely and are always reported as String.
func emitPlainScalar(text []byte, handler Handler) {
	trimmed := bytes.TrimSpace(text)

	switch string(trimmed) {
	case "null", "~", "":
		handler.Null()
		return
	case "true", "yes", "on":
		handler.Boolean(true)
		return
	case "false", "no", "off":
		handler.Boolean(false)
		return
	}

	if v, ok := strview.ParseNumber(trimmed); ok {
		handler.Number(v)
		return
	}

	handler.String(trimmed, false)
}
