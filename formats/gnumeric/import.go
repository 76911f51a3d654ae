package gnumeric

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/xmlctx"
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
)

// Import reads a Gnumeric (.gnumeric) document from data and drives
// factory through its Workbook/Sheets/Sheet walk. Gnumeric's own file
// format is gzip-compressed XML by convention (no third-party gzip
// library appears anywhere among this handler's sibling packages, so
// this is the one place the standard library's compress/gzip stands
// in); data lacking the gzip magic bytes is assumed to be already
// decompressed XML, so callers may hand in either form. sink receives
// warnings for malformed or unsupported content encountered along the
// way; a nil sink discards them.
func Import(data []byte, factory spreadsheet.ImportFactory, repo *xmlns.Repository, sink orcuslog.Sink) error {
	xmlData, err := maybeGunzip(data)
	if err != nil {
		return fmt.Errorf("gnumeric: %w", err)
	}

	d := newDoc(factory, sink)
	root := newRootContext(d)
	stack := ctxstack.NewStack(root)
	nsCxt := repo.CreateContext()
	if err := xmlctx.Parse(xmlData, stack, nsCxt, Tokens); err != nil {
		return fmt.Errorf("gnumeric: parsing document: %w", err)
	}

	factory.Finalize()
	return nil
}

func maybeGunzip(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return data, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing gzip stream: %w", err)
	}
	return out, nil
}
