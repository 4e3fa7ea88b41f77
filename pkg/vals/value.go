package vals

import "sort"

// Cell is a scalar container. The zero value holds nil.
type Cell struct {
	value any
}

// NewCell creates a Cell holding v.
func NewCell(v any) *Cell {
	return &Cell{v}
}

// Get returns the value in the cell.
func (c *Cell) Get() any { return c.value }

// Set replaces the value in the cell.
func (c *Cell) Set(v any) { c.value = v }

// Array is a mutable ordered sequence of values.
type Array struct {
	elems []any
}

// NewArray creates an Array from the given elements.
func NewArray(elems ...any) *Array {
	return &Array{append([]any(nil), elems...)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Index returns the i-th element and whether it exists. Negative indices count
// from the end.
func (a *Array) Index(i int) (any, bool) {
	if i < 0 {
		i += len(a.elems)
	}
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Push appends elements to the end.
func (a *Array) Push(vs ...any) {
	a.elems = append(a.elems, vs...)
}

// Pop removes and returns the last element, if any.
func (a *Array) Pop() (any, bool) {
	if len(a.elems) == 0 {
		return nil, false
	}
	v := a.elems[len(a.elems)-1]
	a.elems = a.elems[:len(a.elems)-1]
	return v, true
}

// Elems returns a copy of the elements. It is never nil.
func (a *Array) Elems() []any {
	elems := make([]any, len(a.elems))
	copy(elems, a.elems)
	return elems
}

// Hash is a mutable map from strings to values.
type Hash struct {
	m map[string]any
}

// NewHash creates an empty Hash.
func NewHash() *Hash {
	return &Hash{map[string]any{}}
}

// MakeHash creates a Hash from arguments that are alternately keys and values.
// It panics if the number of arguments is odd or a key is not a string.
func MakeHash(a ...any) *Hash {
	if len(a)%2 == 1 {
		panic("odd number of arguments to MakeHash")
	}
	h := NewHash()
	for i := 0; i < len(a); i += 2 {
		h.Assoc(a[i].(string), a[i+1])
	}
	return h
}

// Len returns the number of entries.
func (h *Hash) Len() int { return len(h.m) }

// Index returns the value associated with k and whether it exists.
func (h *Hash) Index(k string) (any, bool) {
	v, ok := h.m[k]
	return v, ok
}

// Assoc associates k with v.
func (h *Hash) Assoc(k string, v any) {
	if h.m == nil {
		h.m = map[string]any{}
	}
	h.m[k] = v
}

// Dissoc removes k, returning the value previously associated with it.
func (h *Hash) Dissoc(k string) (any, bool) {
	v, ok := h.m[k]
	delete(h.m, k)
	return v, ok
}

// Keys returns the keys in sorted order.
func (h *Hash) Keys() []string {
	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fn is a named callable implemented in Go.
type Fn struct {
	name string
	body func(args ...any) (any, error)
}

// NewFn creates a new Fn.
func NewFn(name string, body func(args ...any) (any, error)) *Fn {
	return &Fn{name, body}
}

// Name returns the name the Fn was created with.
func (f *Fn) Name() string { return f.name }

// Call calls the Fn.
func (f *Fn) Call(args ...any) (any, error) {
	return f.body(args...)
}
