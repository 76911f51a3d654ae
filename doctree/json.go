package doctree

import "github.com/dhamidi/orcus-go/jsonstream"

// jsonBuilder adapts builder to jsonstream.Handler. Object keys arrive
// via ObjectKey just before the value event they label, so setKey
// simply stages the key for the very next push.
type jsonBuilder struct {
	*builder
}

func (b *jsonBuilder) BeginParse() {}
func (b *jsonBuilder) EndParse()   {}

func (b *jsonBuilder) BeginObject() { b.enterContainer(KindMap) }
func (b *jsonBuilder) EndObject()   { b.exitContainer() }
func (b *jsonBuilder) ObjectKey(text []byte, _ bool) { b.setKey(string(text)) }

func (b *jsonBuilder) BeginArray() { b.enterContainer(KindSequence) }
func (b *jsonBuilder) EndArray()   { b.exitContainer() }

func (b *jsonBuilder) BooleanTrue()  { b.scalar(node{scalarType: ScalarBool, boolean: true}) }
func (b *jsonBuilder) BooleanFalse() { b.scalar(node{scalarType: ScalarBool, boolean: false}) }
func (b *jsonBuilder) Null()         { b.scalar(node{scalarType: ScalarNull}) }
func (b *jsonBuilder) String(text []byte, _ bool) {
	b.scalar(node{scalarType: ScalarString, text: string(text)})
}
func (b *jsonBuilder) Number(value float64) {
	b.scalar(node{scalarType: ScalarNumber, number: value})
}

// BuildFromJSON parses a single JSON document into a Document tree.
func BuildFromJSON(data []byte) (*Document, error) {
	jb := &jsonBuilder{builder: newBuilder()}
	if err := jsonstream.Parse(data, jb); err != nil {
		return nil, err
	}
	return jb.doc, nil
}
