package vals

import "reflect"

// Equal returns whether two values are equal. Cells, Arrays and Hashes are
// compared by content, Fns by identity. For other types, it uses
// reflect.DeepEqual. Self-containing values are compared without looping: a
// pair of containers met again while it is still being compared is taken to
// be equal, as reflect.DeepEqual does.
func Equal(x, y any) bool {
	return equal(x, y, nil)
}

type pair struct{ x, y any }

type comparer struct {
	visiting map[pair]bool
}

// Reports whether the pair is already being compared, and marks it otherwise.
func (c *comparer) enter(x, y any) bool {
	p := pair{x, y}
	if c.visiting[p] {
		return true
	}
	if c.visiting == nil {
		c.visiting = make(map[pair]bool)
	}
	c.visiting[p] = true
	return false
}

func equal(x, y any, c *comparer) bool {
	if c == nil {
		c = &comparer{}
	}
	switch x := x.(type) {
	case nil:
		return y == nil
	case *Cell:
		if y, ok := y.(*Cell); ok {
			if x == y || c.enter(x, y) {
				return true
			}
			return x != nil && y != nil && equal(x.value, y.value, c)
		}
		return false
	case *Array:
		if y, ok := y.(*Array); ok {
			if x == y || c.enter(x, y) {
				return true
			}
			return x != nil && y != nil && c.equalArray(x, y)
		}
		return false
	case *Hash:
		if y, ok := y.(*Hash); ok {
			if x == y || c.enter(x, y) {
				return true
			}
			return x != nil && y != nil && c.equalHash(x, y)
		}
		return false
	case *Fn:
		return x == y
	default:
		return reflect.DeepEqual(x, y)
	}
}

func (c *comparer) equalArray(x, y *Array) bool {
	if x.Len() != y.Len() {
		return false
	}
	for i, v := range x.elems {
		if !equal(v, y.elems[i], c) {
			return false
		}
	}
	return true
}

func (c *comparer) equalHash(x, y *Hash) bool {
	if x.Len() != y.Len() {
		return false
	}
	for k, vx := range x.m {
		vy, ok := y.m[k]
		if !ok || !equal(vx, vy, c) {
			return false
		}
	}
	return true
}
