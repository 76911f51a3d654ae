package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// formatFlag is a pflag.Value validating --format against
// supportedFormats at flag-parse time, rather than waiting until
// importSpreadsheet's own default case rejects it.
type formatFlag struct {
	value string
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return f.value }

func (f *formatFlag) Set(v string) error {
	for _, s := range supportedFormats {
		if v == s {
			f.value = v
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want one of %s)", v, strings.Join(supportedFormats, ", "))
}

func (f *formatFlag) Type() string { return "format" }
