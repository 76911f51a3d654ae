package yamlstream

import "bytes"

// Parse runs the indent-driven block parser over data and reports
// events to handler. A bare `---` line at column 0 starts a new
// document; documents with no explicit separator still get a single
// implicit BeginDocument/EndDocument pair.
func Parse(data []byte, handler Handler) error {
	lines := splitLines(data)
	bp := &blockParser{lines: lines, handler: handler}

	i := 0
	open := false
	for {
		i = bp.skipBlank(i)
		if i >= len(lines) {
			break
		}
		if isDocumentSeparator(lines[i]) {
			if open {
				handler.EndDocument()
			}
			handler.BeginDocument()
			open = true
			i++
			continue
		}

		if !open {
			handler.BeginDocument()
			open = true
		}

		next, err := bp.parseNode(i, lines[i].indent)
		if err != nil {
			return err
		}
		i = next
	}

	if !open {
		handler.BeginDocument()
		handler.Null()
	}
	handler.EndDocument()
	return nil
}

func isDocumentSeparator(line rawLine) bool {
	if line.indent != 0 {
		return false
	}
	trimmed := bytes.TrimRight(line.text, " \t")
	return bytes.Equal(trimmed, []byte("---"))
}
