// Package xmlns implements the XML namespace repository and
// per-document namespace context from spec.md §4.4: a URI→id
// repository shared across a whole run, plus a per-document
// prefix→id stack built on top of it.
package xmlns

import (
	"golang.org/x/exp/slices"

	"github.com/dhamidi/orcus-go/strview"
)

// ID is a stable per-URI identifier: a pointer to the interned URI
// string, never nil for a known namespace. Two repositories that
// register the same predefined list in the same order agree on index,
// but identifiers themselves are only pointer-comparable within one
// repository (spec.md §3's invariant).
type ID = *string

// Unknown is returned for names whose URI was never registered.
var Unknown ID = new(string)

func init() {
	*Unknown = ""
}

// Repository maps URI strings to stable IDs and indices.
type Repository struct {
	pool  *strview.Pool
	byURI map[string]ID
	ids   []ID
	uris  []string
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{pool: strview.NewPool(), byURI: make(map[string]ID)}
}

// AddPredefined registers a fixed, ordered list of URIs, assigning
// indices 0, 1, … in list order. Calling it twice with the same list
// is idempotent; indices are stable as long as the list and its order
// do not change (spec.md §4.4's cross-repository invariant).
func (r *Repository) AddPredefined(uris []string) {
	for _, uri := range uris {
		r.intern(uri)
	}
}

func (r *Repository) intern(uri string) ID {
	if id, ok := r.byURI[uri]; ok {
		return id
	}
	stored := r.pool.InternString(uri).String()
	id := new(string)
	*id = stored
	r.byURI[uri] = id
	r.ids = append(r.ids, id)
	r.uris = append(r.uris, stored)
	return id
}

// Lookup returns the ID for uri, registering it if it has not been seen
// before (used by Context.Push when a document declares a namespace not
// in the predefined list).
func (r *Repository) Lookup(uri string) ID {
	if uri == "" {
		return Unknown
	}
	return r.intern(uri)
}

// GetIdentifier returns the ID at the given predefined/registered
// index, or Unknown if out of range.
func (r *Repository) GetIdentifier(index int) ID {
	if index < 0 || index >= len(r.ids) {
		return Unknown
	}
	return r.ids[index]
}

// GetIndex returns the zero-based registration index for id, or -1.
func (r *Repository) GetIndex(id ID) int {
	return slices.Index(r.ids, id)
}

// URI returns the URI string an ID refers to.
func (r *Repository) URI(id ID) string {
	if id == nil {
		return ""
	}
	return *id
}

// CreateContext returns a namespace context bound to this repository.
func (r *Repository) CreateContext() *Context {
	return &Context{repo: r}
}
