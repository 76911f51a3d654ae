package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/spf13/cobra"
)

// newDumpCmd implements `orcus dump`: drive a format handler with a
// recordingFactory and print sheet names, dimensions, and style-table
// counts, the textual summary spec.md's SPEC_FULL.md §6 describes.
func newDumpCmd() *cobra.Command {
	var format formatFlag
	var debug bool
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "dump INPUT",
		Short: "Dump a spreadsheet document's sheet and style summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			formatName := format.value
			if formatName == "" {
				formatName, err = detectFormat(filename)
				if err != nil {
					return err
				}
			}

			sink := orcuslog.Or(nil)
			if debug {
				sink = orcuslog.New("orcus", true)
			}

			factory, err := importSpreadsheet(formatName, data, sink)
			if err != nil {
				printDiagnostic(err, data, copyToClipboard)
				return fmt.Errorf("dump %s: %w", filename, err)
			}

			sheets, fonts, fills, borders, numFmts, xfs, cellStyles := factory.summary()

			fmt.Printf("%s (%s)\n", filename, formatName)
			fmt.Printf("  sheets: %d\n", len(sheets))
			for _, s := range sheets {
				fmt.Printf("    %-24s %4d rows x %4d cols, %d populated cells\n", s.Name, s.Rows, s.Cols, s.Cells)
			}
			fmt.Printf("  styles: %d fonts, %d fills, %d borders, %d number formats, %d cell formats, %d cell styles\n",
				fonts, fills, borders, numFmts, xfs, cellStyles)
			fmt.Printf("  shared strings: %d\n", len(factory.shared))
			fmt.Printf("  defined names: %d\n", len(factory.namedExprs))
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "source format: xlsx, ods, xlsxml, or gnumeric (guessed from the file extension if omitted)")
	cmd.Flags().BoolVar(&debug, "debug", false, "raise the orcuslog sink to debug level")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy a parse failure's source snippet to the clipboard via OSC52")
	return cmd
}
