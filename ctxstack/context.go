// Package ctxstack implements the context-stack framework from
// spec.md §4.6/§4.11: a stack of Context handlers, each owning its own
// element-stack bookkeeping, with child-context delegation and an
// optional parent→child element validator.
//
// Grounded on liborcus's xml_context_base (each concrete context is a
// polymorphic handler over the same seven-operation capability set);
// generalized here from a virtual base class to a Go interface per
// spec.md §9's "deep polymorphism" design note.
package ctxstack

import "github.com/dhamidi/orcus-go/strview"

// Name identifies an element or attribute within one namespace. NS is
// an opaque per-format namespace id (xmlns.ID in practice); Token is a
// format-specific small integer assigned from that format's tokens
// table.
type Name struct {
	NS    any
	Token int
}

// Attr is one attribute in a start-element event.
type Attr struct {
	Name      Name
	Value     strview.View
	Transient bool
}

// Context is the capability set every context-stack handler must
// implement; see spec.md §4.6.
type Context interface {
	// CanHandleElement reports whether this context handles the named
	// element directly, as opposed to needing a child context.
	CanHandleElement(name Name) bool

	// CreateChildContext returns a (non-owned) child context to push
	// for name, or nil if this element is simply unhandled (the Stack
	// then delivers the element to this context itself).
	CreateChildContext(name Name) Context

	// EndChildContext is invoked before a child context is popped, so
	// the parent can consume the child's accumulated state.
	EndChildContext(name Name, child Context)

	StartElement(name Name, attrs []Attr)

	// EndElement returns true iff this was the closing element that
	// unwinds the whole context.
	EndElement(name Name) bool

	Characters(text strview.View, transient bool)
}

// ElementRule is one allowed parent→child transition in an optional
// validator table.
type ElementRule struct {
	Parent Name
	Child  Name
}

// Validator checks parent→child element nesting and logs (rather than
// aborts) on a mismatch, per spec.md §4.6.
type Validator struct {
	allowed map[Name]map[Name]bool
	warn    func(format string, args ...any)
}

// NewValidator builds a validator from an explicit rule table. A nil
// warn function makes mismatches silent.
func NewValidator(rules []ElementRule, warn func(string, ...any)) *Validator {
	v := &Validator{allowed: make(map[Name]map[Name]bool), warn: warn}
	for _, r := range rules {
		children := v.allowed[r.Parent]
		if children == nil {
			children = make(map[Name]bool)
			v.allowed[r.Parent] = children
		}
		children[r.Child] = true
	}
	return v
}

// Check logs a warning if child is not a registered child of parent in
// the rule table; it never aborts parsing.
func (v *Validator) Check(parent, child Name) {
	if v == nil {
		return
	}
	children, ok := v.allowed[parent]
	if !ok || !children[child] {
		if v.warn != nil {
			v.warn("unexpected child element %v under parent %v", child, parent)
		}
	}
}

// frame is one entry in a Stack: the pushed context plus the element
// name that caused it to be pushed (nil name for the root context).
type frame struct {
	ctx       Context
	name      Name
	hasName   bool
	localPath []Name // this context's own nested-element bookkeeping
}

// Stack drives the context-stack dispatch rules of spec.md §4.11: on
// StartElement, ask the top context whether it handles the element
// directly or needs a child; on EndElement, pop through EndChildContext
// when a context's own EndElement signals completion.
type Stack struct {
	frames    []frame
	validator *Validator
}

// NewStack creates a stack seeded with root as the outermost context.
func NewStack(root Context) *Stack {
	return &Stack{frames: []frame{{ctx: root}}}
}

// SetValidator installs an optional parent→child validator.
func (s *Stack) SetValidator(v *Validator) { s.validator = v }

// Top returns the currently active context.
func (s *Stack) Top() Context {
	return s.frames[len(s.frames)-1].ctx
}

// Depth reports the number of pushed contexts (root included).
func (s *Stack) Depth() int { return len(s.frames) }

// StartElement routes a start-element event per spec.md §4.11: if the
// current top handles it, push the element onto that context's own
// bookkeeping; otherwise ask for a child context and push both the
// child context and the element. When the top context returns no child
// (nil), the element stays with the top context as if it handled it.
// The validator, if set, checks the innermost open element against name.
func (s *Stack) StartElement(name Name, attrs []Attr) {
	top := &s.frames[len(s.frames)-1]
	if s.validator != nil {
		if n := len(top.localPath); n > 0 {
			s.validator.Check(top.localPath[n-1], name)
		} else if top.hasName {
			s.validator.Check(top.name, name)
		}
	}

	var child Context
	if !top.ctx.CanHandleElement(name) {
		child = top.ctx.CreateChildContext(name)
	}
	if child == nil {
		top.localPath = append(top.localPath, name)
		top.ctx.StartElement(name, attrs)
		return
	}

	s.frames = append(s.frames, frame{ctx: child, name: name, hasName: true})
	child.StartElement(name, attrs)
}

// EndElement routes an end-element event. If the topmost context's own
// EndElement reports completion (true), the framework pops it and
// notifies the parent via EndChildContext.
func (s *Stack) EndElement(name Name) {
	top := &s.frames[len(s.frames)-1]

	var done bool
	if top.ctx != nil {
		done = top.ctx.EndElement(name)
	} else {
		done = true
	}

	if !done {
		if n := len(top.localPath); n > 0 {
			top.localPath = top.localPath[:n-1]
		}
		return
	}

	if len(s.frames) == 1 {
		// Root context closing; nothing to hand off to.
		return
	}

	popped := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	parent := &s.frames[len(s.frames)-1]
	parent.ctx.EndChildContext(popped.name, popped.ctx)
}

// Characters routes character data to the current top context.
func (s *Stack) Characters(text strview.View, transient bool) {
	s.frames[len(s.frames)-1].ctx.Characters(text, transient)
}
