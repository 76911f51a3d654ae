// Package xmlctx bridges sax's flat event stream into a ctxstack.Stack
// dispatch, the wiring every XML-based format handler (xlsxml, xlsx,
// ods, odfstyles) needs and would otherwise duplicate verbatim.
package xmlctx

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/sax"
	"github.com/dhamidi/orcus-go/strview"
	"github.com/dhamidi/orcus-go/xmlns"
)

// Bridge adapts a *ctxstack.Stack into a sax.Handler.
type Bridge struct {
	Stack         *ctxstack.Stack
	OnDeclaration func(sax.Declaration)
}

// NewBridge returns a sax.Handler that drives stack.
func NewBridge(stack *ctxstack.Stack) *Bridge {
	return &Bridge{Stack: stack}
}

func (b *Bridge) Declaration(decl sax.Declaration) {
	if b.OnDeclaration != nil {
		b.OnDeclaration(decl)
	}
}

func (b *Bridge) StartElement(ns xmlns.ID, token int, rawName string, attrs []sax.Attr) {
	name := ctxstack.Name{NS: ns, Token: token}
	out := make([]ctxstack.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = ctxstack.Attr{
			Name:      ctxstack.Name{NS: a.NS, Token: a.Token},
			Value:     strview.Of(a.Value),
			Transient: a.Transient,
		}
	}
	b.Stack.StartElement(name, out)
}

func (b *Bridge) EndElement(ns xmlns.ID, token int, rawName string) {
	b.Stack.EndElement(ctxstack.Name{NS: ns, Token: token})
}

func (b *Bridge) Characters(text []byte, transient bool) {
	b.Stack.Characters(strview.Of(text), transient)
}

// Parse runs sax.Parse over data, bridging events into stack.
func Parse(data []byte, stack *ctxstack.Stack, nsCxt *xmlns.Context, tokens sax.TokenTable) error {
	return sax.Parse(data, NewBridge(stack), nsCxt, tokens)
}
