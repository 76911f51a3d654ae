package doctree

import "github.com/dhamidi/orcus-go/yamlstream"

// yamlBuilder adapts builder to yamlstream.Handler, starting a fresh
// arena at each BeginDocument so a multi-document stream (`---`
// separated) yields one independent Document per section.
type yamlBuilder struct {
	current *builder
	docs    []*Document
}

func (b *yamlBuilder) BeginDocument() { b.current = newBuilder() }
func (b *yamlBuilder) EndDocument() {
	b.docs = append(b.docs, b.current.doc)
	b.current = nil
}

func (b *yamlBuilder) BeginMap()              { b.current.enterContainer(KindMap) }
func (b *yamlBuilder) EndMap()                { b.current.exitContainer() }
func (b *yamlBuilder) MapKey(text []byte, _ bool) { b.current.setKey(string(text)) }

func (b *yamlBuilder) BeginSequence() { b.current.enterContainer(KindSequence) }
func (b *yamlBuilder) EndSequence()   { b.current.exitContainer() }

func (b *yamlBuilder) Null()          { b.current.scalar(node{scalarType: ScalarNull}) }
func (b *yamlBuilder) Boolean(v bool) { b.current.scalar(node{scalarType: ScalarBool, boolean: v}) }
func (b *yamlBuilder) Number(v float64) {
	b.current.scalar(node{scalarType: ScalarNumber, number: v})
}
func (b *yamlBuilder) String(text []byte, _ bool) {
	b.current.scalar(node{scalarType: ScalarString, text: string(text)})
}

// BuildFromYAML parses a (possibly multi-document) YAML stream into
// one Document per `---`-separated section.
func BuildFromYAML(data []byte) ([]*Document, error) {
	yb := &yamlBuilder{}
	if err := yamlstream.Parse(data, yb); err != nil {
		return nil, err
	}
	return yb.docs, nil
}
