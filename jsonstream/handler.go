// Package jsonstream implements an event-based JSON parser (spec.md
// §4.7), plus a threaded producer/consumer variant mirroring the sax
// package's.
package jsonstream

// Handler receives JSON parse events in document order.
type Handler interface {
	BeginParse()
	EndParse()

	BeginObject()
	EndObject()
	ObjectKey(text []byte, transient bool)

	BeginArray()
	EndArray()

	BooleanTrue()
	BooleanFalse()
	Null()
	String(text []byte, transient bool)
	Number(value float64)
}
