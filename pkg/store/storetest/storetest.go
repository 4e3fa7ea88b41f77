// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/symtab-dev/symtab/pkg/store/storedefs"
	"github.com/symtab-dev/symtab/pkg/vals"
)

// TestStore runs all the suites in this package against a store. The store
// must be empty.
func TestStore(t *testing.T, s Store) {
	t.Run("GetSetUnset", func(t *testing.T) { TestGetSetUnset(t, s) })
	t.Run("Listing", func(t *testing.T) { TestListing(t, s) })
	t.Run("NestedNamespaces", func(t *testing.T) { TestNestedNamespaces(t, s) })
}

// TestGetSetUnset tests the basic per-kind operations. It leaves the store
// empty.
func TestGetSetUnset(t *testing.T, s Store) {
	ns := Path{"getset"}
	cell := vals.NewCell(1)
	arr := vals.NewArray(1)

	if _, ok := s.Get(ns, "x", vals.Scalar); ok {
		t.Errorf("Get on empty store reports a value")
	}

	s.Set(ns, "x", vals.Scalar, cell)
	s.Set(ns, "x", vals.Sequence, arr)
	if v, ok := s.Get(ns, "x", vals.Scalar); !ok || v != cell {
		t.Errorf("Get scalar -> (%v, %v), want (%v, true)", v, ok, cell)
	}
	if v, ok := s.Get(ns, "x", vals.Sequence); !ok || v != arr {
		t.Errorf("Get sequence -> (%v, %v), want (%v, true)", v, ok, arr)
	}
	if _, ok := s.Get(ns, "x", vals.Map); ok {
		t.Errorf("Get map reports a value that was never set")
	}

	cell2 := vals.NewCell(2)
	s.Set(ns, "x", vals.Scalar, cell2)
	if v, _ := s.Get(ns, "x", vals.Scalar); v != cell2 {
		t.Errorf("Set did not replace the scalar")
	}

	if v, ok := s.Unset(ns, "x", vals.Scalar); !ok || v != cell2 {
		t.Errorf("Unset scalar -> (%v, %v), want (%v, true)", v, ok, cell2)
	}
	if _, ok := s.Unset(ns, "x", vals.Scalar); ok {
		t.Errorf("second Unset of scalar reports a value")
	}
	if !s.HasName(ns, "x") {
		t.Errorf("name gone while a sequence is still bound")
	}
	s.Unset(ns, "x", vals.Sequence)
	if s.HasName(ns, "x") {
		t.Errorf("name still present after all values are unset")
	}
	if cell2.Get() != 2 {
		t.Errorf("Unset modified the value")
	}
}

// TestListing tests Names, Bindings and HasName. It leaves the store empty.
func TestListing(t *testing.T, s Store) {
	ns := Path{"listing"}
	s.Set(ns, "b", vals.Scalar, vals.NewCell("b"))
	s.Set(ns, "a", vals.Map, vals.NewHash())
	s.Set(ns, "a", vals.Callable, vals.NewFn("a", nil))

	if diff := cmp.Diff([]string{"a", "b"}, s.Names(ns)); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
	if n := len(s.Bindings(ns, "a")); n != 2 {
		t.Errorf("Bindings(a) has %d values, want 2", n)
	}
	if s.Bindings(ns, "nonexistent") != nil {
		t.Errorf("Bindings of nonexistent name is not nil")
	}
	if !s.HasName(ns, "b") || s.HasName(ns, "c") {
		t.Errorf("HasName reports wrong result")
	}

	s.Unset(ns, "a", vals.Map)
	s.Unset(ns, "a", vals.Callable)
	s.Unset(ns, "b", vals.Scalar)
	if names := s.Names(ns); len(names) != 0 {
		t.Errorf("Names after unsetting everything = %v, want empty", names)
	}
}

// TestNestedNamespaces tests Namespaces and HasNamespace. It leaves the store
// empty.
func TestNestedNamespaces(t *testing.T, s Store) {
	root := Path{"nested"}
	deep := Path{"nested", "A", "B"}
	s.Set(deep, "x", vals.Scalar, vals.NewCell(nil))

	if diff := cmp.Diff([]string{"nested"}, s.Namespaces(nil)); diff != "" {
		t.Errorf("Namespaces(root) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A"}, s.Namespaces(root)); diff != "" {
		t.Errorf("Namespaces(nested) (-want +got):\n%s", diff)
	}
	if !s.HasNamespace(root, "A") || !s.HasNamespace(Path{"nested", "A"}, "B") {
		t.Errorf("HasNamespace reports false for populated namespace")
	}
	if s.HasNamespace(root, "Z") {
		t.Errorf("HasNamespace reports true for unknown namespace")
	}
	if names := s.Names(Path{"no", "such"}); len(names) != 0 {
		t.Errorf("Names of nonexistent namespace = %v, want empty", names)
	}

	s.Unset(deep, "x", vals.Scalar)
	if s.HasNamespace(root, "A") {
		t.Errorf("namespace still listed after its subtree became empty")
	}
	if names := s.Namespaces(nil); len(names) != 0 {
		t.Errorf("Namespaces(root) after emptying = %v, want empty", names)
	}
}
