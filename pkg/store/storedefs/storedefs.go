// Package storedefs contains definitions of the binding store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "github.com/symtab-dev/symtab/pkg/vals"

// Store is the interface of a binding store: a tree of namespaces, each
// binding names to values of the four kinds in vals.
//
// Names and Namespaces return sorted slices that the caller may keep.
type Store interface {
	// Names returns the names in the namespace ns that have at least one value
	// bound, including values of unrecognized types.
	Names(ns Path) []string
	// Namespaces returns the names of the namespaces nested directly in ns
	// that have at least one binding anywhere in their subtree.
	Namespaces(ns Path) []string
	// Bindings returns all the values bound to name in ns, in no particular
	// order. It is what enumeration uses to discover which kinds are bound.
	Bindings(ns Path, name string) []any
	// HasName reports whether name appears in Names(ns).
	HasName(ns Path, name string) bool
	// HasNamespace reports whether name appears in Namespaces(ns).
	HasNamespace(ns Path, name string) bool

	// Get returns the value of kind k bound to name in ns.
	Get(ns Path, name string, k vals.Kind) (any, bool)
	// Set binds name in ns to v as kind k, replacing any value of the same
	// kind. Namespaces along ns are created as needed.
	Set(ns Path, name string, k vals.Kind, v any)
	// Unset removes the value of kind k bound to name in ns, and returns it.
	// The value itself is left untouched.
	Unset(ns Path, name string, k vals.Kind) (any, bool)
}
