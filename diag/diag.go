// Package diag renders a byte offset into a parsed document (as
// carried by sax.ParseError, jsonstream.ParseError, yamlstream.ParseError
// and zipfile.ArchiveError) as a human-readable line/column snippet
// with a caret pointing at the offending byte, the same "where exactly
// did this go wrong" presentation cmd/orcus's dump/yaml commands print
// on a parse failure.
package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// Location is the line/column/text a byte offset resolves to.
type Location struct {
	Line   int // 1-based
	Col    int // 1-based, counted in display columns (runewidth-aware)
	Text   string
	Offset int64
}

// Locate finds the line and display column offset lands on within
// source, along with that line's full text (without its trailing
// newline). An offset past the end of source clamps to the last line.
func Locate(source []byte, offset int64) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(source)) {
		offset = int64(len(source))
	}

	line := 1
	lineStart := 0
	for i := 0; i < int(offset) && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lineEnd := bytes.IndexByte(source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source) - lineStart
	}
	text := string(source[lineStart : lineStart+lineEnd])

	col := displayColumn(text, int(offset)-lineStart)

	return Location{Line: line, Col: col, Text: text, Offset: offset}
}

// displayColumn converts a byte index within line into a 1-based
// display column, walking grapheme clusters (uniseg) so combining
// marks count once and measuring each cluster's printed width
// (runewidth) so wide/double-width runes advance the caret by more
// than one column.
func displayColumn(line string, byteIndex int) int {
	if byteIndex > len(line) {
		byteIndex = len(line)
	}
	col := 1
	rest := line[:byteIndex]
	for len(rest) > 0 {
		cluster, remaining, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		col += runewidth.StringWidth(cluster)
		rest = remaining
	}
	return col
}

// profile picks the termenv color profile for w, falling back to
// termenv's own ascii/256-color detection refined by go-isatty/x/term
// so a piped or redirected output never gets escape codes.
func profile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return termenv.Ascii
	}
	if _, _, err := term.GetSize(int(f.Fd())); err != nil {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

var (
	colorCaret   = colorful.Color{R: 0.86, G: 0.21, B: 0.27}
	colorLocator = colorful.Color{R: 0.40, G: 0.55, B: 0.85}
)

// Render writes a styled "line:col: message" header, the offending
// source line, and a caret line pointing at loc.Col to w.
func Render(w io.Writer, loc Location, message string) {
	p := profile(w)
	locator := termenv.String(fmt.Sprintf("%d:%d:", loc.Line, loc.Col)).Foreground(p.Color(colorLocator.Hex()))
	fmt.Fprintf(w, "%s %s\n", locator.String(), message)
	fmt.Fprintln(w, loc.Text)

	caret := termenv.String("^").Foreground(p.Color(colorCaret.Hex())).Bold()
	fmt.Fprintf(w, "%s%s\n", spaces(loc.Col-1), caret.String())
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return string(bytes.Repeat([]byte{' '}, n))
}

// CopyToClipboard sends text to the terminal's clipboard via an OSC52
// escape sequence (cmd/orcus dump --copy), working over SSH sessions
// that forward OSC52 without any local clipboard utility.
func CopyToClipboard(w io.Writer, text string) error {
	_, err := io.WriteString(w, osc52.New(text).String())
	return err
}
