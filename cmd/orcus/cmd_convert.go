package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/orcus-go/doctree"
	"github.com/dhamidi/orcus-go/orcuslog"
	"github.com/spf13/cobra"
)

// newConvertCmd implements `orcus convert`: drive a format handler
// with a recordingFactory the same way dump does, but render the full
// cell-by-cell contents rather than a summary, as JSON or YAML.
func newConvertCmd() *cobra.Command {
	var format formatFlag
	var to string
	var outputPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Convert a spreadsheet document's cell contents to JSON or YAML",
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
				printDiagnostic(err, data, false)
				return fmt.Errorf("convert %s: %w", filename, err)
			}

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outputPath, err)
				}
				defer f.Close()
				out = f
			}

			plain := factory.toPlain()
			switch to {
			case "json", "":
				rendered, err := json.MarshalIndent(plain, "", "  ")
				if err != nil {
					return fmt.Errorf("render json: %w", err)
				}
				fmt.Fprintln(out, string(rendered))
			case "yaml":
				doc, err := renderDoctree(plain)
				if err != nil {
					return fmt.Errorf("render yaml: %w", err)
				}
				rendered, err := doctree.DumpYAML(doc)
				if err != nil {
					return fmt.Errorf("render yaml: %w", err)
				}
				if _, err := out.Write(rendered); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", to)
			}
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "source format: xlsx, ods, xlsxml, or gnumeric (guessed from the file extension if omitted)")
	cmd.Flags().StringVar(&to, "to", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&debug, "debug", false, "raise the orcuslog sink to debug level")
	return cmd
}
