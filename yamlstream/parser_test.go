package yamlstream

import (
	"fmt"
	"testing"
)

type recordingHandler struct {
	events []string
}

func (h *recordingHandler) BeginDocument() { h.events = append(h.events, "begin_document") }
func (h *recordingHandler) EndDocument()   { h.events = append(h.events, "end_document") }

func (h *recordingHandler) BeginMap() { h.events = append(h.events, "begin_map") }
func (h *recordingHandler) EndMap()   { h.events = append(h.events, "end_map") }
func (h *recordingHandler) MapKey(text []byte, transient bool) {
	h.events = append(h.events, "key:"+string(text))
}

func (h *recordingHandler) BeginSequence() { h.events = append(h.events, "begin_sequence") }
func (h *recordingHandler) EndSequence()   { h.events = append(h.events, "end_sequence") }

func (h *recordingHandler) Null() { h.events = append(h.events, "null") }
func (h *recordingHandler) Boolean(value bool) {
	h.events = append(h.events, fmt.Sprintf("bool:%v", value))
}
func (h *recordingHandler) Number(value float64) {
	h.events = append(h.events, fmt.Sprintf("number:%g", value))
}
func (h *recordingHandler) String(text []byte, transient bool) {
	h.events = append(h.events, "string:"+string(text))
}

func TestParseBasicDocument(t *testing.T) {
	src := "dict:\n" +
		"  a: 1\n" +
		"  b: 2\n" +
		"  c:\n" +
		"    - foo\n" +
		"    - bar\n" +
		"list:\n" +
		"  - 1\n" +
		"  - 2\n" +
		"  - {a: 1.1, b: 1.2, c: 1.3}\n" +
		"number: 12.3\n" +
		"string: foo\n"

	h := &recordingHandler{}
	if err := Parse([]byte(src), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"begin_document",
		"begin_map",
		"key:dict", "begin_map",
		"key:a", "number:1",
		"key:b", "number:2",
		"key:c", "begin_sequence", "string:foo", "string:bar", "end_sequence",
		"end_map",
		"key:list", "begin_sequence",
		"number:1", "number:2",
		"begin_map", "key:a", "number:1.1", "key:b", "number:1.2", "key:c", "number:1.3", "end_map",
		"end_sequence",
		"key:number", "number:12.3",
		"key:string", "string:foo",
		"end_map",
		"end_document",
	}
	if len(h.events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(h.events), h.events, len(want), want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}

func TestParseLiteralBlockAndFoldedScalar(t *testing.T) {
	src := "literal block: |\n" +
		"  line 1\n" +
		"   line 2\n" +
		"    line 3\n" +
		"multi line:\n" +
		"  line 1\n" +
		"  line 2\n" +
		"  line 3\n"

	h := &recordingHandler{}
	if err := Parse([]byte(src), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"begin_document",
		"begin_map",
		"key:literal block", "string:line 1\n line 2\n  line 3",
		"key:multi line", "string:line 1 line 2 line 3",
		"end_map",
		"end_document",
	}
	if len(h.events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(h.events), h.events, len(want), want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "# a comment\n" +
		"a: 1 # trailing comment\n" +
		"\n" +
		"b: 2\n"

	h := &recordingHandler{}
	if err := Parse([]byte(src), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"begin_document", "begin_map",
		"key:a", "number:1",
		"key:b", "number:2",
		"end_map", "end_document",
	}
	if len(h.events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(h.events), h.events, len(want), want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}

func TestParseDocumentSeparator(t *testing.T) {
	src := "---\n" +
		"a: 1\n" +
		"---\n" +
		"b: 2\n"

	h := &recordingHandler{}
	if err := Parse([]byte(src), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"begin_document", "begin_map", "key:a", "number:1", "end_map", "end_document",
		"begin_document", "begin_map", "key:b", "number:2", "end_map", "end_document",
	}
	if len(h.events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(h.events), h.events, len(want), want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}

func TestParseQuotedScalarsAndBooleans(t *testing.T) {
	src := "name: \"has: colon\"\n" +
		"flag: true\n" +
		"other: false\n" +
		"empty:\n" +
		"label: 'single'\n"

	h := &recordingHandler{}
	if err := Parse([]byte(src), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"begin_document", "begin_map",
		"key:name", "string:has: colon",
		"key:flag", "bool:true",
		"key:other", "bool:false",
		"key:empty", "null",
		"key:label", "string:single",
		"end_map", "end_document",
	}
	if len(h.events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(h.events), h.events, len(want), want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}

func TestParseEmptyInputYieldsNullDocument(t *testing.T) {
	h := &recordingHandler{}
	if err := Parse([]byte(""), h); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"begin_document", "null", "end_document"}
	if len(h.events) != len(want) {
		t.Fatalf("got %v, want %v", h.events, want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, h.events[i], want[i])
		}
	}
}
