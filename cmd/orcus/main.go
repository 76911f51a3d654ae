// Command orcus is a multi-format structured-document CLI: a YAML
// converter ported from spec.md §6's standalone orcus-yaml, plus dump
// and convert subcommands that drive the spreadsheet import handlers
// (formats/xlsx, formats/ods, formats/xlsxml, formats/gnumeric)
// through a recordingFactory and print what they found.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orcus",
		Short: "Structured-document and spreadsheet format toolkit",
	}

	rootCmd.AddCommand(newYAMLCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
