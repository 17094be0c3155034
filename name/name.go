package name

import "sync/atomic"

// generation 0 is reserved: the zero Name carries no brand and never
// matches a minted one.
var generation atomic.Uint64

// Name is an opaque brand tied to a single dynamic invocation of [With].
// The zero value is "no brand". Names are comparable so the trust boundary
// can check them, but carry no other observable behavior.
//
//	Docs: docs/naming.md
type Name struct {
	id uint64
}

// IsZero reports whether n carries no brand. A zero Name must never be
// accepted where a minted brand is required.
func (n Name) IsZero() bool {
	return n.id == 0
}

// Named pairs a [Name] with a value. Copies of a Named carry the same
// brand; the association is part of the value.
//
//	Docs: docs/naming.md
type Named[V any] struct {
	name  Name
	value V
}

// Value returns the wrapped value.
func (n Named[V]) Value() V {
	return n.value
}

// Name returns the brand of the wrapped value.
func (n Named[V]) Name() Name {
	return n.name
}

func mint() Name {
	return Name{id: generation.Add(1)}
}

// With brands value under a freshly minted [Name] and runs fn with the
// resulting [Named]. The brand is valid for the dynamic extent of fn and is
// distinct from the brand of every other With invocation, including nested
// calls and repeated iterations at the same call site.
//
//	Docs: docs/naming.md
func With[V, T any](value V, fn func(Named[V]) T) T {
	return fn(Named[V]{name: mint(), value: value})
}

// WithErr is [With] for fallible continuations, the common shape in Go
// verification flows.
func WithErr[V, T any](value V, fn func(Named[V]) (T, error)) (T, error) {
	return fn(Named[V]{name: mint(), value: value})
}
