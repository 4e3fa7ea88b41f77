package storedefs

import "strings"

// RootName is the name of the root namespace. Inside the root namespace, it
// refers to the root namespace itself.
const RootName = "main"

// Path identifies a namespace by its segments, outermost first. The root
// namespace has an empty Path.
type Path []string

// ParsePath parses a namespace path. Segments may be delimited by "::" or
// ".". Empty segments are ignored, and leading "main" segments are dropped,
// so that "", "main", "main::" and "main::main" all denote the root.
func ParsePath(s string) Path {
	s = strings.ReplaceAll(s, "::", ".")
	var p Path
	for _, seg := range strings.Split(s, ".") {
		if seg != "" {
			p = append(p, seg)
		}
	}
	return p.TrimRoot()
}

// TrimRoot returns p without its leading RootName segments. Each of them
// denotes the root itself, so a namespace named RootName can never be nested
// directly in the root.
func (p Path) TrimRoot() Path {
	for len(p) > 0 && p[0] == RootName {
		p = p[1:]
	}
	return p
}

// IsRoot returns whether p denotes the root namespace.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Child returns a new Path with name appended. It never shares its backing
// array with p.
func (p Path) Child(name string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = name
	return child
}

// Parent returns the Path with the last segment removed, and whether there is
// such a Path. Paths with at most one segment have no parent.
func (p Path) Parent() (Path, bool) {
	if len(p) <= 1 {
		return nil, false
	}
	return p[:len(p)-1].Clone(), true
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// String returns the dotted form of p, or RootName for the root.
func (p Path) String() string {
	if p.IsRoot() {
		return RootName
	}
	return strings.Join(p, ".")
}
