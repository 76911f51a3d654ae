package gnumeric

import (
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/dhamidi/orcus-go/spreadsheet"
)

// doc is the state shared by every context walking one Gnumeric
// document: the consumer-owned factory, the warning sink, and a
// resolver fetched once since every sheet's Merge/Filter-area/Name
// position reference resolves through the same global-context
// resolver.
type doc struct {
	factory  spreadsheet.ImportFactory
	sink     orcuslog.Sink
	resolver spreadsheet.ReferenceResolver
}

func newDoc(factory spreadsheet.ImportFactory, sink orcuslog.Sink) *doc {
	d := &doc{factory: factory, sink: orcuslog.Or(sink)}
	d.resolver = factory.ReferenceResolver(spreadsheet.ResolverContext{Grammar: spreadsheet.GrammarGnumeric})
	return d
}
