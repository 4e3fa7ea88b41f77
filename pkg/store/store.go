// Package store implements an in-memory binding store.
//
// The store is a tree of namespaces. Each namespace maps names to globs, and
// each glob holds at most one value of every kind in vals, plus any values of
// unrecognized types written with Bind. A glob exists while it holds a value,
// and a namespace is listed in its parent while its subtree holds a glob.
//
// The store is not safe for concurrent use.
package store

import (
	"sort"

	"github.com/symtab-dev/symtab/pkg/logutil"
	. "github.com/symtab-dev/symtab/pkg/store/storedefs"
	"github.com/symtab-dev/symtab/pkg/vals"
)

var logger = logutil.GetLogger("[store] ")

// Default is the process-wide binding store.
var Default = New()

// MemStore is an in-memory binding store. It implements storedefs.Store.
type MemStore struct {
	root *namespace
}

var _ Store = (*MemStore)(nil)

type namespace struct {
	globs map[string]*glob
	subs  map[string]*namespace
}

type glob struct {
	slots   [len(vals.Kinds)]any
	foreign []any
}

func newNamespace() *namespace {
	return &namespace{map[string]*glob{}, map[string]*namespace{}}
}

func (g *glob) empty() bool {
	for _, v := range g.slots {
		if v != nil {
			return false
		}
	}
	return len(g.foreign) == 0
}

// populated reports whether ns or any namespace nested in it binds a name.
func (ns *namespace) populated() bool {
	if len(ns.globs) > 0 {
		return true
	}
	for _, sub := range ns.subs {
		if sub.populated() {
			return true
		}
	}
	return false
}

// New returns an empty MemStore.
func New() *MemStore {
	return &MemStore{newNamespace()}
}

// Returns the namespace at p, or nil if it has not been created. Like all
// methods taking a Path, it ignores leading RootName segments.
func (s *MemStore) find(p Path) *namespace {
	p = p.TrimRoot()
	ns := s.root
	for _, seg := range p {
		ns = ns.subs[seg]
		if ns == nil {
			return nil
		}
	}
	return ns
}

// Returns the namespace at p, creating it and its ancestors as needed.
func (s *MemStore) ensure(p Path) *namespace {
	p = p.TrimRoot()
	ns := s.root
	for i, seg := range p {
		sub := ns.subs[seg]
		if sub == nil {
			sub = newNamespace()
			ns.subs[seg] = sub
			logger.Printf("created namespace %s", p[:i+1])
		}
		ns = sub
	}
	return ns
}

func (s *MemStore) findGlob(p Path, name string) *glob {
	ns := s.find(p)
	if ns == nil {
		return nil
	}
	return ns.globs[name]
}

// Names implements storedefs.Store.
func (s *MemStore) Names(p Path) []string {
	ns := s.find(p)
	if ns == nil {
		return nil
	}
	return sortedKeys(ns.globs)
}

// Namespaces implements storedefs.Store.
func (s *MemStore) Namespaces(p Path) []string {
	ns := s.find(p)
	if ns == nil {
		return nil
	}
	names := make([]string, 0, len(ns.subs))
	for name, sub := range ns.subs {
		if sub.populated() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Bindings implements storedefs.Store.
func (s *MemStore) Bindings(p Path, name string) []any {
	g := s.findGlob(p, name)
	if g == nil {
		return nil
	}
	var values []any
	for _, v := range g.slots {
		if v != nil {
			values = append(values, v)
		}
	}
	return append(values, g.foreign...)
}

// HasName implements storedefs.Store.
func (s *MemStore) HasName(p Path, name string) bool {
	return s.findGlob(p, name) != nil
}

// HasNamespace implements storedefs.Store.
func (s *MemStore) HasNamespace(p Path, name string) bool {
	ns := s.find(p)
	if ns == nil {
		return false
	}
	sub := ns.subs[name]
	return sub != nil && sub.populated()
}

// Get implements storedefs.Store.
func (s *MemStore) Get(p Path, name string, k vals.Kind) (any, bool) {
	g := s.findGlob(p, name)
	if g == nil || g.slots[k] == nil {
		return nil, false
	}
	return g.slots[k], true
}

// Set implements storedefs.Store. Setting a nil value is the same as Unset.
func (s *MemStore) Set(p Path, name string, k vals.Kind, v any) {
	if v == nil {
		s.Unset(p, name, k)
		return
	}
	s.globForWrite(p, name).slots[k] = v
}

// Unset implements storedefs.Store. Globs left empty are removed, and so are
// namespaces whose subtree no longer binds anything.
func (s *MemStore) Unset(p Path, name string, k vals.Kind) (any, bool) {
	ns := s.find(p)
	if ns == nil {
		return nil, false
	}
	g := ns.globs[name]
	if g == nil || g.slots[k] == nil {
		return nil, false
	}
	old := g.slots[k]
	g.slots[k] = nil
	if g.empty() {
		delete(ns.globs, name)
		s.prune(p)
	}
	return old, true
}

// Bind binds a value of any type to name in the namespace at p. Values of the
// bindable kinds go to the slot of their kind; anything else is kept as a
// foreign value, which enumeration cannot interpret. It is the way for code
// outside the vals type system to write to the store directly.
func (s *MemStore) Bind(p Path, name string, v any) {
	if k, ok := vals.KindOf(v); ok {
		s.Set(p, name, k, v)
		return
	}
	g := s.globForWrite(p, name)
	g.foreign = append(g.foreign, v)
}

// Unbind removes every value bound to name in the namespace at p, including
// foreign values.
func (s *MemStore) Unbind(p Path, name string) {
	ns := s.find(p)
	if ns == nil || ns.globs[name] == nil {
		return
	}
	delete(ns.globs, name)
	s.prune(p)
}

func (s *MemStore) globForWrite(p Path, name string) *glob {
	ns := s.ensure(p)
	g := ns.globs[name]
	if g == nil {
		g = &glob{}
		ns.globs[name] = g
	}
	return g
}

// Removes the namespaces along p, innermost first, as long as they bind
// nothing.
func (s *MemStore) prune(p Path) {
	p = p.TrimRoot()
	for i := len(p); i > 0; i-- {
		parent := s.find(p[:i-1])
		ns := parent.subs[p[i-1]]
		if ns == nil || ns.populated() {
			return
		}
		delete(parent.subs, p[i-1])
		logger.Printf("pruned namespace %s", p[:i])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
