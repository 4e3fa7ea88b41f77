// Package symtab provides a map-like view over the namespaces of a binding
// store.
//
// A View is bound to one namespace. Its keys are strings of the form
// <sigil><label>, addressing the binding of the kind denoted by the sigil
// ($ scalar, @ sequence, % map, & callable), or a bare <label>, addressing
// the nested namespace of that name.
//
// Views hold no state about the bindings themselves; all Views over the same
// store observe the same bindings. Neither Views nor stores are safe for
// concurrent use.
package symtab

import (
	"sort"

	"github.com/symtab-dev/symtab/pkg/logutil"
	"github.com/symtab-dev/symtab/pkg/store"
	"github.com/symtab-dev/symtab/pkg/store/storedefs"
	"github.com/symtab-dev/symtab/pkg/symtab/errs"
	"github.com/symtab-dev/symtab/pkg/vals"
)

var logger = logutil.GetLogger("[symtab] ")

// View is a map-like view over one namespace of a store.
type View struct {
	st   storedefs.Store
	path storedefs.Path
	// Keys not yet returned by NextKey, set by FirstKey.
	cursor []string
}

// New returns a View over the namespace at the given path in st. The path is
// parsed with storedefs.ParsePath; an empty path denotes the root.
func New(st storedefs.Store, path string) *View {
	return At(st, storedefs.ParsePath(path))
}

// At is like New, but takes a parsed path. Leading "main" segments are
// dropped as in storedefs.ParsePath.
func At(st storedefs.Store, path storedefs.Path) *View {
	return &View{st: st, path: path.TrimRoot().Clone()}
}

// Main returns a View over the root namespace of store.Default.
func Main() *View {
	return At(store.Default, nil)
}

// Whether label, looked up in this View, refers to the root namespace itself.
func (v *View) isSelfRef(label string) bool {
	return v.path.IsRoot() && label == storedefs.RootName
}

// Fetch looks up a key. For a typed key, it returns the bound value, or false
// if there is none. For a bare key, it returns a *View over the nested
// namespace, which need not have any bindings yet; the only exception is the
// root's reference to itself ("main" in the root), which is absent. Malformed
// keys are absent.
func (v *View) Fetch(key string) (any, bool) {
	k, ok := ParseKey(key)
	if !ok {
		return nil, false
	}
	if k.IsNs {
		if v.isSelfRef(k.Label) {
			return nil, false
		}
		return v.child(k.Label), true
	}
	return v.st.Get(v.path, k.Label, k.Kind)
}

// Store binds a typed key to value, replacing any value of the same kind bound
// to the same label. It fails with errs.InvalidIdentifier if key is bare or
// malformed, and with errs.TypeMismatch if value is not a bindable value of
// the kind the sigil denotes.
func (v *View) Store(key string, value any) error {
	k, ok := ParseKey(key)
	if !ok || k.IsNs {
		return errs.InvalidIdentifier{Key: key}
	}
	if actual, ok := vals.KindOf(value); !ok || actual != k.Kind {
		return errs.TypeMismatch{Key: key, Want: k.Kind.String(), Actual: vals.KindName(value)}
	}
	v.st.Set(v.path, k.Label, k.Kind, value)
	return nil
}

// Exists reports whether a key is present.
//
// For scalar keys and bare keys, this reports whether the name is listed by
// the store, not whether a value is attached: "$x" exists as soon as any kind
// is bound to x, even if Fetch("$x") is absent, and a nested namespace exists
// while anything is bound inside it. Callers that need the value should use
// Fetch.
func (v *View) Exists(key string) bool {
	k, ok := ParseKey(key)
	if !ok {
		return false
	}
	switch {
	case k.IsNs:
		return !v.isSelfRef(k.Label) && v.st.HasNamespace(v.path, k.Label)
	case k.Kind == vals.Scalar:
		return v.st.HasName(v.path, k.Label)
	default:
		_, ok := v.st.Get(v.path, k.Label, k.Kind)
		return ok
	}
}

// Delete removes a key. For a typed key, it unbinds the value and returns it,
// or returns false if nothing was bound; the value itself is not modified and
// stays usable through other references. For a bare key, it clears the nested
// namespace and returns the View over it, which remains addressable. The error
// is that of Clear.
func (v *View) Delete(key string) (any, bool, error) {
	k, ok := ParseKey(key)
	if !ok {
		return nil, false, nil
	}
	if k.IsNs {
		if v.isSelfRef(k.Label) {
			return nil, false, nil
		}
		sub := v.child(k.Label)
		return sub, true, sub.Clear()
	}
	old, ok := v.st.Unset(v.path, k.Label, k.Kind)
	return old, ok, nil
}

// FirstKey takes a snapshot of all the keys in the namespace, sorted, and
// returns the first one. The rest are returned by subsequent calls to NextKey.
// Calling FirstKey again discards the previous snapshot.
//
// Changes to the namespace made after FirstKey are not reflected in the
// snapshot, so it is safe to delete keys while iterating.
//
// If a name is bound to a value of none of the four kinds, FirstKey fails with
// errs.CorruptBinding and the snapshot is empty.
func (v *View) FirstKey() (string, bool, error) {
	keys, err := v.snapshot()
	v.cursor = keys
	if err != nil {
		return "", false, err
	}
	key, ok := v.NextKey()
	return key, ok, nil
}

// NextKey returns the next key of the snapshot taken by FirstKey, or false if
// there are no more keys.
func (v *View) NextKey() (string, bool) {
	if len(v.cursor) == 0 {
		return "", false
	}
	key := v.cursor[0]
	v.cursor = v.cursor[1:]
	return key, true
}

// Clear deletes all keys in the namespace, emptying nested namespaces too. It
// stops at the first error; keys deleted before that stay deleted.
func (v *View) Clear() error {
	key, ok, err := v.FirstKey()
	if err != nil {
		return err
	}
	for ; ok; key, ok = v.NextKey() {
		if _, _, err := v.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Keys calls f with each key of a fresh snapshot, stopping when f returns
// false. It does not affect the snapshot used by FirstKey and NextKey.
func (v *View) Keys(f func(key string) bool) error {
	keys, err := v.snapshot()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if !f(key) {
			break
		}
	}
	return nil
}

// Len returns the number of keys in the namespace.
func (v *View) Len() (int, error) {
	keys, err := v.snapshot()
	return len(keys), err
}

func (v *View) snapshot() ([]string, error) {
	var keys []string
	for _, name := range v.st.Names(v.path) {
		for _, value := range v.st.Bindings(v.path, name) {
			k, ok := vals.KindOf(value)
			if !ok {
				err := errs.CorruptBinding{
					Ns: v.path.String(), Name: name, Actual: vals.KindName(value)}
				logger.Println(err)
				return nil, err
			}
			keys = append(keys, FormatKey(k, name))
		}
	}
	keys = append(keys, v.st.Namespaces(v.path)...)
	sort.Strings(keys)
	return keys, nil
}
