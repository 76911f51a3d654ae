package ods

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/xmlctx"
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/dhamidi/orcus-go/orcusenv"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
	"github.com/dhamidi/orcus-go/zipfile"
)

const (
	contentPart = "content.xml"
	stylesPart  = "styles.xml"
)

// Import reads an ODF spreadsheet (.ods) package from data and drives
// factory through its styles.xml and content.xml parts, in that order:
// content.xml's own automatic-styles block is walked in document order
// by documentContentContext before any cell references it, but a cell
// style can also be defined only in styles.xml's office:styles family,
// so that part must be fully registered first. sink receives warnings
// for malformed or unresolvable references encountered along the way;
// a nil sink discards them.
func Import(data []byte, factory spreadsheet.ImportFactory, repo *xmlns.Repository, sink orcuslog.Sink) error {
	archive := zipfile.New(bytes.NewReader(data), int64(len(data)))
	if err := archive.Load(); err != nil {
		return fmt.Errorf("ods: %w", err)
	}

	var stylesData, contentData []byte
	var stylesErr, contentErr error

	if orcusenv.UseThreadsForODS() {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			stylesData, stylesErr = archive.ReadFileEntry(stylesPart)
		}()
		go func() {
			defer wg.Done()
			contentData, contentErr = archive.ReadFileEntry(contentPart)
		}()
		wg.Wait()
	} else {
		stylesData, stylesErr = archive.ReadFileEntry(stylesPart)
		contentData, contentErr = archive.ReadFileEntry(contentPart)
	}

	if contentErr != nil {
		return fmt.Errorf("ods: reading %s: %w", contentPart, contentErr)
	}

	d := newDoc(factory, sink)

	// styles.xml is optional; a package with no separate styles part
	// relies entirely on content.xml's own automatic-styles.
	if stylesErr == nil && len(stylesData) > 0 {
		sc := newStylesRootContext(d)
		if err := parsePart(stylesData, ctxstack.NewStack(sc), repo); err != nil {
			return fmt.Errorf("ods: parsing %s: %w", stylesPart, err)
		}
	}

	root := newContentRootContext(d)
	if err := parsePart(contentData, ctxstack.NewStack(root), repo); err != nil {
		return fmt.Errorf("ods: parsing %s: %w", contentPart, err)
	}

	factory.Finalize()
	return nil
}

func parsePart(data []byte, stack *ctxstack.Stack, repo *xmlns.Repository) error {
	nsCxt := repo.CreateContext()
	return xmlctx.Parse(data, stack, nsCxt, Tokens)
}
