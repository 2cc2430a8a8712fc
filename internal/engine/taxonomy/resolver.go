package taxonomy

import (
	"github.com/ErikKalkoken/go-set"
)

// Resolver holds the flattened taxonomy and both directions of the
// name/id mapping. It is immutable after construction.
type Resolver struct {
	names  []string
	order  []string
	ids    set.Set[string]
	byName map[string]string
}

// NewResolver flattens the tree and canonicalizes every leaf name
func NewResolver(root Node) *Resolver {
	r := &Resolver{
		names:  Flatten(root),
		ids:    set.Of[string](),
		byName: make(map[string]string),
	}

	for _, name := range r.names {
		id := CanonicalID(name)
		if id == "" {
			continue
		}
		r.byName[name] = id
		if !r.ids.Contains(id) {
			r.ids.Add(id)
			r.order = append(r.order, id)
		}
	}

	return r
}

// Names returns the leaf names in traversal order
func (r *Resolver) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// IDs returns the de-duplicated canonical id set
func (r *Resolver) IDs() set.Set[string] {
	return set.Of(r.order...)
}

// OrderedIDs returns the canonical ids in order of first appearance
func (r *Resolver) OrderedIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// IsCanonical reports whether id is one of the known canonical ids
func (r *Resolver) IsCanonical(id string) bool {
	return r.ids.Contains(id)
}

// IDFor returns the canonical id stored for a human-readable name
func (r *Resolver) IDFor(name string) (string, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Len returns the number of canonical ids
func (r *Resolver) Len() int {
	return len(r.order)
}
