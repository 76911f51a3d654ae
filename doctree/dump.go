package doctree

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// toPlain walks n into a plain Go value (map[string]any / []any /
// string / float64 / bool / nil), the same visitor-over-node shape
// format.ASTJSONEncoder uses to turn a parser.Node tree into its own
// marshalable mirror type, adapted here to arena indices instead of
// pointer children.
func toPlain(n *Node) any {
	switch n.Kind() {
	case KindScalar:
		switch n.ScalarType() {
		case ScalarString:
			return n.Text()
		case ScalarNumber:
			return n.Number()
		case ScalarBool:
			return n.Bool()
		default:
			return nil
		}
	case KindSequence:
		children := n.Children()
		out := make([]any, len(children))
		for i, c := range children {
			out[i] = toPlain(c)
		}
		return out
	case KindMap:
		children := n.Children()
		out := make(map[string]any, len(children))
		for _, c := range children {
			out[c.Key()] = toPlain(c)
		}
		return out
	default:
		return nil
	}
}

// DumpJSON renders doc as indented JSON.
func DumpJSON(doc *Document) ([]byte, error) {
	root := doc.Root()
	if root == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(toPlain(root), "", "  ")
}

// DumpYAML renders doc as block-style YAML, the same indent-per-depth
// style yamlstream itself parses back.
func DumpYAML(doc *Document) ([]byte, error) {
	var sb strings.Builder
	root := doc.Root()
	if root == nil {
		sb.WriteString("null\n")
		return []byte(sb.String()), nil
	}
	dumpYAMLNode(&sb, root, 0, true)
	return []byte(sb.String()), nil
}

func dumpYAMLNode(sb *strings.Builder, n *Node, depth int, topLevel bool) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind() {
	case KindScalar:
		sb.WriteString(indent)
		sb.WriteString(yamlScalar(n))
		sb.WriteByte('\n')
	case KindSequence:
		children := n.Children()
		if len(children) == 0 {
			sb.WriteString(indent)
			sb.WriteString("[]\n")
			return
		}
		for _, c := range children {
			sb.WriteString(indent)
			sb.WriteString("- ")
			dumpYAMLInline(sb, c, depth+1)
		}
	case KindMap:
		children := n.Children()
		if len(children) == 0 {
			sb.WriteString(indent)
			sb.WriteString("{}\n")
			return
		}
		for _, c := range children {
			sb.WriteString(indent)
			sb.WriteString(c.Key())
			sb.WriteByte(':')
			dumpYAMLField(sb, c, depth)
		}
	}
}

// dumpYAMLInline writes a sequence item's value starting right after
// its "- " marker: a scalar stays on the same line, a container opens
// a nested block at depth.
func dumpYAMLInline(sb *strings.Builder, n *Node, depth int) {
	if n.Kind() == KindScalar {
		sb.WriteString(yamlScalar(n))
		sb.WriteByte('\n')
		return
	}
	sb.WriteByte('\n')
	dumpYAMLNode(sb, n, depth, false)
}

// dumpYAMLField writes a map field's value following its "key:"
// marker, same same-line/nested-block split as dumpYAMLInline.
func dumpYAMLField(sb *strings.Builder, n *Node, depth int) {
	if n.Kind() == KindScalar {
		sb.WriteByte(' ')
		sb.WriteString(yamlScalar(n))
		sb.WriteByte('\n')
		return
	}
	sb.WriteByte('\n')
	dumpYAMLNode(sb, n, depth+1, false)
}

func yamlScalar(n *Node) string {
	switch n.ScalarType() {
	case ScalarString:
		return yamlQuoteIfNeeded(n.Text())
	case ScalarNumber:
		return strconv.FormatFloat(n.Number(), 'g', -1, 64)
	case ScalarBool:
		if n.Bool() {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

func yamlQuoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	needsQuote := strings.ContainsAny(s, ":#{}[]&*!|>'\"%@`") ||
		strings.TrimSpace(s) != s ||
		s == "true" || s == "false" || s == "null"
	if !needsQuote {
		return s
	}
	return fmt.Sprintf("%q", s)
}
