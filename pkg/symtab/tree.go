package symtab

// Tree maps the names of nested namespaces to their own Trees. A namespace
// without nested namespaces has an empty Tree.
type Tree map[string]Tree

// Tree returns the Tree of nested namespaces under the View.
//
// Every level of recursion extends the path by one segment over a finite
// store, so the recursion always terminates.
func (v *View) Tree() (Tree, error) {
	names, err := Collect(v.ClassesNames)
	if err != nil {
		return nil, err
	}
	tree := Tree{}
	for _, name := range names {
		sub, ok := v.Fetch(name)
		if !ok {
			continue
		}
		subtree, err := sub.(*View).Tree()
		if err != nil {
			return nil, err
		}
		tree[name] = subtree
	}
	return tree, nil
}
