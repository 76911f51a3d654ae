package ctxstack

import (
	"testing"

	"github.com/dhamidi/orcus-go/strview"
)

// recordingContext is a minimal Context that logs start/end/char events
// and optionally yields a single child context for one element name.
type recordingContext struct {
	label     string
	closeOn   Name
	childFor  Name
	child     Context
	events    *[]string
	childEnds []string
}

func (c *recordingContext) CanHandleElement(name Name) bool {
	return name != c.childFor
}

func (c *recordingContext) CreateChildContext(name Name) Context {
	if name == c.childFor {
		return c.child
	}
	return nil
}

func (c *recordingContext) EndChildContext(name Name, child Context) {
	if rc, ok := child.(*recordingContext); ok {
		c.childEnds = append(c.childEnds, rc.label)
	}
}

func (c *recordingContext) StartElement(name Name, attrs []Attr) {
	*c.events = append(*c.events, c.label+":start:"+tokenLabel(name))
}

func (c *recordingContext) EndElement(name Name) bool {
	*c.events = append(*c.events, c.label+":end:"+tokenLabel(name))
	return name == c.closeOn
}

func (c *recordingContext) Characters(text strview.View, transient bool) {
	*c.events = append(*c.events, c.label+":chars:"+text.String())
}

func tokenLabel(n Name) string {
	switch n.Token {
	case 1:
		return "root"
	case 2:
		return "child"
	case 3:
		return "grandchild"
	default:
		return "?"
	}
}

func TestStackDelegatesToChildContext(t *testing.T) {
	var events []string
	rootName := Name{Token: 1}
	childName := Name{Token: 2}

	child := &recordingContext{label: "child", closeOn: childName, events: &events}
	root := &recordingContext{label: "root", closeOn: rootName, childFor: childName, child: child, events: &events}

	s := NewStack(root)
	s.StartElement(rootName, nil)
	s.StartElement(childName, nil)
	s.Characters(strview.FromString("hello"), false)
	s.EndElement(childName)
	s.EndElement(rootName)

	want := []string{
		"root:start:root",
		"child:start:child",
		"child:chars:hello",
		"child:end:child",
		"root:end:root",
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, events[i], want[i])
		}
	}

	if len(root.childEnds) != 1 || root.childEnds[0] != "child" {
		t.Errorf("expected root to observe child ending, got %v", root.childEnds)
	}
}

func TestStackHandlesOwnNestedElementsWithoutChildContext(t *testing.T) {
	var events []string
	rootName := Name{Token: 1}
	nestedName := Name{Token: 3}

	root := &recordingContext{label: "root", closeOn: rootName, events: &events}
	s := NewStack(root)

	s.StartElement(rootName, nil)
	s.StartElement(nestedName, nil) // root.CanHandleElement returns true, no child pushed
	s.EndElement(nestedName)        // false: not closeOn, stack stays at depth 1
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 after handling own nested element, got %d", s.Depth())
	}
	s.EndElement(rootName)
	if s.Depth() != 1 {
		t.Fatalf("root frame should never be popped, got depth %d", s.Depth())
	}
}

func TestValidatorWarnsButDoesNotAbortOnMismatch(t *testing.T) {
	var warnings []string
	rootName := Name{Token: 1}
	childName := Name{Token: 2}
	unexpected := Name{Token: 3}

	v := NewValidator([]ElementRule{{Parent: rootName, Child: childName}}, func(format string, args ...any) {
		warnings = append(warnings, format)
	})

	var events []string
	root := &recordingContext{label: "root", closeOn: rootName, childFor: unexpected, events: &events}
	child := &recordingContext{label: "child", closeOn: unexpected, events: &events}
	root.child = child

	s := NewStack(root)
	s.SetValidator(v)
	s.StartElement(rootName, nil)
	s.StartElement(unexpected, nil) // not registered as a child of root: should warn, not panic

	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(warnings), warnings)
	}
	if s.Depth() != 2 {
		t.Fatalf("parsing must continue despite the mismatch, got depth %d", s.Depth())
	}
}

func TestValidatorSilentOnExpectedChild(t *testing.T) {
	var warnings []string
	rootName := Name{Token: 1}
	childName := Name{Token: 2}

	v := NewValidator([]ElementRule{{Parent: rootName, Child: childName}}, func(format string, args ...any) {
		warnings = append(warnings, format)
	})

	var events []string
	child := &recordingContext{label: "child", closeOn: childName, events: &events}
	root := &recordingContext{label: "root", closeOn: rootName, childFor: childName, child: child, events: &events}

	s := NewStack(root)
	s.SetValidator(v)
	s.StartElement(rootName, nil)
	s.StartElement(childName, nil)

	if len(warnings) != 0 {
		t.Errorf("expected no warnings for a registered parent/child pair, got %v", warnings)
	}
}
