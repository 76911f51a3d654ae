package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/orcus-go/diag"
	"github.com/dhamidi/orcus-go/jsonstream"
	"github.com/dhamidi/orcus-go/sax"
	"github.com/dhamidi/orcus-go/yamlstream"
	"github.com/dhamidi/orcus-go/zipfile"
)

// printDiagnostic renders err against source on stderr. A ParseError
// from sax, jsonstream, or yamlstream carries a byte offset, so it
// gets diag's full line/col/caret rendering; a zip ArchiveError or any
// other error just prints its message, matching spec.md §6's "human
// readable line/column messages with a caret-style snippet" promise
// for the cases that actually have a byte position to point at.
func printDiagnostic(err error, source []byte, copyToClipboard bool) {
	var saxErr *sax.ParseError
	var jsonErr *jsonstream.ParseError
	var yamlErr *yamlstream.ParseError
	var archiveErr *zipfile.ArchiveError

	var offset int64
	var message string
	haveOffset := true

	switch {
	case errors.As(err, &saxErr):
		offset, message = saxErr.Offset, saxErr.Message
	case errors.As(err, &jsonErr):
		offset, message = jsonErr.Offset, jsonErr.Message
	case errors.As(err, &yamlErr):
		offset, message = yamlErr.Offset, yamlErr.Message
	case errors.As(err, &archiveErr):
		message, haveOffset = archiveErr.Message, false
	default:
		message, haveOffset = err.Error(), false
	}

	if !haveOffset {
		fmt.Fprintln(os.Stderr, message)
		return
	}

	loc := diag.Locate(source, offset)
	diag.Render(os.Stderr, loc, message)
	if copyToClipboard {
		if copyErr := diag.CopyToClipboard(os.Stderr, loc.Text); copyErr != nil {
			fmt.Fprintf(os.Stderr, "copy to clipboard: %v\n", copyErr)
		}
	}
}
