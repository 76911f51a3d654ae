package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/orcus-go/doctree"
	"github.com/spf13/cobra"
)

// newYAMLCmd ports spec.md §6's single-purpose orcus-yaml converter
// as a subcommand: read a (possibly multi-document) YAML stream, print
// it back as YAML or JSON.
func newYAMLCmd() *cobra.Command {
	var outputPath string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "yaml INPUT",
		Short: "Convert a YAML document to YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			docs, err := doctree.BuildFromYAML(data)
			if err != nil {
				printDiagnostic(err, data, false)
				return fmt.Errorf("parse %s: %w", args[0], err)
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

			for _, doc := range docs {
				var rendered []byte
				var err error
				switch outputFormat {
				case "json":
					rendered, err = doctree.DumpJSON(doc)
				case "yaml", "":
					rendered, err = doctree.DumpYAML(doc)
				default:
					return fmt.Errorf("unknown output format %q (want yaml or json)", outputFormat)
				}
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
				if _, err := out.Write(rendered); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				if outputFormat == "json" {
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
