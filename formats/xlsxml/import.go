package xlsxml

import (
	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/xmlctx"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
)

// Import parses an xls-xml (SpreadsheetML 2003) document and drives
// factory's consumer calls. The namespace repository passed in should
// already have PredefinedNamespaces registered if the caller wants
// stable cross-document namespace ids; a throwaway repository works
// fine for a single, one-shot import.
func Import(data []byte, factory spreadsheet.ImportFactory, repo *xmlns.Repository) error {
	d := &doc{factory: factory, xfByStyle: make(map[string]int)}

	stack := ctxstack.NewStack(newRootContext(d))
	nsCxt := repo.CreateContext()

	if err := xmlctx.Parse(data, stack, nsCxt, Tokens); err != nil {
		return err
	}

	factory.Finalize()
	return nil
}
