package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dhamidi/orcus-go/doctree"
)

func formatDateTime(year, month, day, hour, minute, second int) string {
	if hour == 0 && minute == 0 && second == 0 {
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)
}

// sheetSummary is the per-sheet line orcus dump prints: name,
// dimensions, and how many distinct cells actually carry data (a
// sheet's declared size can be far larger than its populated region).
type sheetSummary struct {
	Name       string
	Rows, Cols int
	Cells      int
}

// summary reduces f to the line counts and style totals `orcus dump`
// prints, per spec.md §6's "sheet names, dimensions, style counts".
func (f *recordingFactory) summary() (sheets []sheetSummary, fonts, fills, borders, numFmts, xfs, cellStyles int) {
	for _, s := range f.sheets {
		rows, cols := s.GetSheetSize()
		sheets = append(sheets, sheetSummary{Name: s.name, Rows: rows, Cols: cols, Cells: len(s.cells)})
	}
	return sheets, len(f.fonts), len(f.fills), f.borders, len(f.numFmts), len(f.xfs), f.styles
}

// toPlain renders f into a plain JSON-marshalable value for `orcus
// convert`: one object per sheet, cells addressed by "row,col" keys,
// plus the workbook's defined names. The cells sit in a Go map, so
// encoding/json writes them in string order of their keys ("10,0"
// before "2,0"), not row-major.
func (f *recordingFactory) toPlain() any {
	sheets := make([]any, 0, len(f.sheets))
	for _, s := range f.sheets {
		sheets = append(sheets, s.toPlain())
	}

	names := make([]any, 0, len(f.namedExprs))
	for _, n := range f.namedExprs {
		names = append(names, namedExprPlain(n))
	}

	return map[string]any{
		"sheets": sheets,
		"names":  names,
	}
}

func (s *recordedSheet) toPlain() any {
	type cellOut struct {
		key string
		val any
	}
	keys := make([]cellKey, 0, len(s.cells))
	for k := range s.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].row != keys[j].row {
			return keys[i].row < keys[j].row
		}
		return keys[i].col < keys[j].col
	})

	cells := make(map[string]any, len(keys))
	for _, k := range keys {
		c := s.cells[k]
		cells[fmt.Sprintf("%d,%d", k.row, k.col)] = c.toPlain(s.factory)
	}

	names := make([]any, 0, len(s.namedExprs))
	for _, n := range s.namedExprs {
		names = append(names, namedExprPlain(n))
	}

	return map[string]any{
		"name":  s.name,
		"rows":  s.rows,
		"cols":  s.cols,
		"cells": cells,
		"names": names,
	}
}

func (c *recordedCell) toPlain(f *recordingFactory) any {
	out := map[string]any{"kind": c.Kind}
	switch c.Kind {
	case "number":
		out["value"] = c.Number
	case "bool":
		out["value"] = c.Bool
	case "string":
		out["value"] = f.stringAt(c.StringID)
	case "datetime", "auto", "error":
		out["value"] = c.Text
	}
	if c.Formula != "" {
		out["formula"] = c.Formula
	}
	return out
}

func (f *recordingFactory) stringAt(id int) string {
	if id < 0 || id >= len(f.shared) {
		return ""
	}
	return f.shared[id]
}

func namedExprPlain(n namedExprRecord) any {
	out := map[string]any{"name": n.Name}
	if n.Sheet != "" {
		out["sheet"] = n.Sheet
	}
	if n.HasRange {
		out["range"] = fmt.Sprintf("R%dC%d:R%dC%d", n.Range.FirstRow, n.Range.FirstCol, n.Range.LastRow, n.Range.LastCol)
	}
	if n.Formula != "" {
		out["formula"] = n.Formula
	}
	return out
}

// renderDoctree round-trips plain through doctree (marshal to JSON,
// rebuild a Document from it) so convert's YAML output reuses
// doctree's own dumper instead of a second hand-rolled one.
func renderDoctree(plain any) (*doctree.Document, error) {
	data, err := json.Marshal(plain)
	if err != nil {
		return nil, err
	}
	return doctree.BuildFromJSON(data)
}
