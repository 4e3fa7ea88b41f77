package symtab

import "github.com/symtab-dev/symtab/pkg/store/storedefs"

// Path returns the path of the namespace the View is bound to.
func (v *View) Path() storedefs.Path { return v.path.Clone() }

// Name returns the path of the namespace in dotted form, or "main" for the
// root.
func (v *View) Name() string { return v.path.String() }

// IsRoot returns whether the View is bound to the root namespace.
func (v *View) IsRoot() bool { return v.path.IsRoot() }

// ParentPath returns the path of the enclosing namespace. There is none if the
// path has at most one segment.
func (v *View) ParentPath() (storedefs.Path, bool) {
	return v.path.Parent()
}

// Parent returns a View over the enclosing namespace, if there is one.
func (v *View) Parent() (*View, bool) {
	p, ok := v.path.Parent()
	if !ok {
		return nil, false
	}
	return &View{st: v.st, path: p}, true
}

func (v *View) child(label string) *View {
	return &View{st: v.st, path: v.path.Child(label)}
}

// Repr returns "<ns path>".
func (v *View) Repr() string { return "<ns " + v.Name() + ">" }
