package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/orcus-go/formats/gnumeric"
	"github.com/dhamidi/orcus-go/formats/ods"
	"github.com/dhamidi/orcus-go/formats/xlsx"
	"github.com/dhamidi/orcus-go/formats/xlsxml"
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/dhamidi/orcus-go/xmlns"
)

// supportedFormats lists the --format values orcus dump/convert
// accept, in the order spec.md §1 introduces the format handlers.
var supportedFormats = []string{"xlsx", "ods", "xlsxml", "gnumeric"}

// detectFormat guesses --format from a file's extension when the flag
// is left at its default, the same sniff-by-suffix cmd/sai's own
// dump/parse commands use for .class vs .java.
func detectFormat(filename string) (string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm"):
		return "xlsx", nil
	case strings.HasSuffix(lower, ".ods") || strings.HasSuffix(lower, ".fods"):
		return "ods", nil
	case strings.HasSuffix(lower, ".xml"):
		return "xlsxml", nil
	case strings.HasSuffix(lower, ".gnumeric") || strings.HasSuffix(lower, ".gnm"):
		return "gnumeric", nil
	default:
		return "", fmt.Errorf("cannot guess format from %q, pass --format explicitly", filename)
	}
}

// importSpreadsheet parses data in the given format into a fresh
// recordingFactory, using a throwaway namespace repository; xlsx and
// xlsxml register their predefined namespace sets on it first, while
// ods and gnumeric define none.
func importSpreadsheet(format string, data []byte, sink orcuslog.Sink) (*recordingFactory, error) {
	factory := newRecordingFactory()
	repo := xmlns.NewRepository()

	var err error
	switch format {
	case "xlsx":
		repo.AddPredefined(xlsx.PredefinedNamespaces)
		err = xlsx.Import(data, factory, repo)
	case "ods":
		err = ods.Import(data, factory, repo, sink)
	case "xlsxml":
		repo.AddPredefined(xlsxml.PredefinedNamespaces)
		err = xlsxml.Import(data, factory, repo)
	case "gnumeric":
		err = gnumeric.Import(data, factory, repo, sink)
	default:
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(supportedFormats, ", "))
	}
	if err != nil {
		return nil, err
	}
	return factory, nil
}
