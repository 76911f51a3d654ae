// Package orcusenv reads the small set of environment variables that
// tune format-handler behavior at runtime, one function per knob, the
// same shape spec.md §4.10's threaded-import switch describes.
package orcusenv

import (
	"os"
	"strconv"
)

// Bool reads name from the environment and parses it as a bool
// (accepting anything strconv.ParseBool accepts); an unset or
// unparseable value falls back to def.
func Bool(name string, def bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

// UseThreadsForODS reports whether formats/ods should parse content.xml
// and styles.xml concurrently, controlled by ORCUS_ODS_USE_THREADS.
func UseThreadsForODS() bool {
	return Bool("ORCUS_ODS_USE_THREADS", false)
}
