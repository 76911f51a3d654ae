package xlsx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dhamidi/orcus-go/ctxstack"
	"github.com/dhamidi/orcus-go/formats/xmlctx"
	"github.com/dhamidi/orcus-go/spreadsheet"
	"github.com/dhamidi/orcus-go/xmlns"
	"github.com/dhamidi/orcus-go/zipfile"
)

const (
	workbookPart = "xl/workbook.xml"
	stylesPart   = "xl/styles.xml"
	sstPart      = "xl/sharedStrings.xml"
)

// Import reads an OOXML (.xlsx) package from data and drives factory
// through its workbook, styles, shared-strings and worksheet parts, in
// that order (styles/shared strings/sheets all depend on state only the
// workbook and styles parts establish first). Pivot cache parts are not
// read here; see ImportPivotCache.
func Import(data []byte, factory spreadsheet.ImportFactory, repo *xmlns.Repository) error {
	archive := zipfile.New(bytes.NewReader(data), int64(len(data)))
	if err := archive.Load(); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	wbData, err := archive.ReadFileEntry(workbookPart)
	if err != nil {
		return fmt.Errorf("xlsx: reading %s: %w", workbookPart, err)
	}
	wbRels, _ := readRelationships(archive, workbookPart)

	wb := newWorkbookContext()
	if err := parsePart(wbData, ctxstack.NewStack(wb), repo); err != nil {
		return fmt.Errorf("xlsx: parsing %s: %w", workbookPart, err)
	}
	wb.applyNamedExpressions(factory)

	d := newDoc(factory)

	if data, err := archive.ReadFileEntry(stylesPart); err == nil {
		sc := newStylesContext(d)
		if err := parsePart(data, ctxstack.NewStack(sc), repo); err != nil {
			return fmt.Errorf("xlsx: parsing %s: %w", stylesPart, err)
		}
	}

	if data, err := archive.ReadFileEntry(sstPart); err == nil {
		sc := newSSTContext(d)
		if err := parsePart(data, ctxstack.NewStack(sc), repo); err != nil {
			return fmt.Errorf("xlsx: parsing %s: %w", sstPart, err)
		}
	}

	for i, ref := range wb.sheets {
		partPath, ok := wbRels[ref.rID]
		if !ok {
			continue
		}
		sheetData, err := archive.ReadFileEntry(partPath)
		if err != nil {
			continue
		}
		sheet := factory.AppendSheet(i, ref.name)
		if sheet == nil {
			continue
		}
		wc := newWorksheetContext(d, sheet)
		if err := parsePart(sheetData, ctxstack.NewStack(wc), repo); err != nil {
			return fmt.Errorf("xlsx: parsing %s: %w", partPath, err)
		}
	}

	factory.Finalize()
	return nil
}

// PivotCacheParts lists the xl/pivotCache/pivotCacheDefinition*.xml
// parts present in the archive, for a caller that wants to import
// them via ImportPivotCache. ImportFactory has no accessor for pivot
// cache definitions, so Import itself cannot drive these parts; a
// caller that supports pivot tables opens the archive separately (or
// reuses PivotCacheParts) and supplies its own
// spreadsheet.PivotCacheDefinition per part.
func PivotCacheParts(data []byte) ([]string, error) {
	archive := zipfile.New(bytes.NewReader(data), int64(len(data)))
	if err := archive.Load(); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	var parts []string
	for i := 0; i < archive.EntryCount(); i++ {
		name := archive.EntryName(i)
		if strings.HasPrefix(name, "xl/pivotCache/pivotCacheDefinition") && strings.HasSuffix(name, ".xml") {
			parts = append(parts, name)
		}
	}
	return parts, nil
}

// ImportPivotCache parses one pivotCacheDefinition*.xml part into def.
func ImportPivotCache(data []byte, def spreadsheet.PivotCacheDefinition, repo *xmlns.Repository) error {
	return parsePart(data, ctxstack.NewStack(newPivotCacheDefinitionContext(def)), repo)
}

// ReadZipPart reads one named part out of an xlsx package, for a
// caller driving ImportPivotCache directly against a part name
// returned by PivotCacheParts.
func ReadZipPart(data []byte, partPath string) ([]byte, error) {
	archive := zipfile.New(bytes.NewReader(data), int64(len(data)))
	if err := archive.Load(); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	return archive.ReadFileEntry(partPath)
}

func parsePart(data []byte, stack *ctxstack.Stack, repo *xmlns.Repository) error {
	nsCxt := repo.CreateContext()
	return xmlctx.Parse(data, stack, nsCxt, Tokens)
}

func readRelationships(archive *zipfile.Archive, partPath string) (relationshipTable, error) {
	data, err := archive.ReadFileEntry(relsPathFor(partPath))
	if err != nil {
		return nil, err
	}
	return parseRelationships(data, partDir(partPath))
}

func partDir(partPath string) string {
	idx := strings.LastIndexByte(partPath, '/')
	if idx < 0 {
		return ""
	}
	return partPath[:idx]
}
