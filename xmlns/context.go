package xmlns

// binding is one (prefix, id) pair pushed onto a document's namespace
// stack.
type binding struct {
	prefix string
	id     ID
}

// Context is a per-document prefix→ID mapping, maintained as a stack so
// that nested element scopes correctly shadow outer ones. It is
// copyable (a snapshot of the prefix stack) and movable; once its
// backing repository goes away, lookups return Unknown rather than
// panicking.
type Context struct {
	repo     *Repository
	bindings []binding
	order    []ID // insertion order, for GetAllNamespaces
}

// Push looks up uri in the repository (registering it if new) and
// pushes a binding for prefix, returning the resulting ID.
func (c *Context) Push(prefix, uri string) ID {
	if c == nil || c.repo == nil {
		return Unknown
	}
	id := c.repo.Lookup(uri)
	c.bindings = append(c.bindings, binding{prefix: prefix, id: id})
	c.order = append(c.order, id)
	return id
}

// Pop removes the innermost binding for prefix, if any.
func (c *Context) Pop(prefix string) {
	if c == nil {
		return
	}
	for i := len(c.bindings) - 1; i >= 0; i-- {
		if c.bindings[i].prefix == prefix {
			c.bindings = append(c.bindings[:i], c.bindings[i+1:]...)
			return
		}
	}
}

// Get returns the innermost binding for prefix, or Unknown.
func (c *Context) Get(prefix string) ID {
	if c == nil {
		return Unknown
	}
	for i := len(c.bindings) - 1; i >= 0; i-- {
		if c.bindings[i].prefix == prefix {
			return c.bindings[i].id
		}
	}
	return Unknown
}

// GetAllNamespaces returns every ID pushed through this context, in
// insertion order (duplicates included, matching the order entries
// were first pushed).
func (c *Context) GetAllNamespaces() []ID {
	if c == nil {
		return nil
	}
	out := make([]ID, len(c.order))
	copy(out, c.order)
	return out
}

// Clone returns an independent snapshot of the current prefix stack,
// sharing the same backing repository.
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}
	clone := &Context{repo: c.repo}
	clone.bindings = append(clone.bindings, c.bindings...)
	clone.order = append(clone.order, c.order...)
	return clone
}
