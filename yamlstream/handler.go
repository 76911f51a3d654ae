// Package yamlstream implements the indent-driven block YAML parser
// from spec.md §4.8: comments and blank lines are stripped, scopes
// open/close as indent changes, and scalars classify into number,
// null, boolean, or string.
package yamlstream

// Handler receives YAML parse events in document order. Multiple
// documents (separated by `---`) each get their own BeginDocument/
// EndDocument pair.
type Handler interface {
	BeginDocument()
	EndDocument()

	BeginMap()
	EndMap()
	MapKey(text []byte, transient bool)

	BeginSequence()
	EndSequence()

	Null()
	Boolean(value bool)
	Number(value float64)
	String(text []byte, transient bool)
}
