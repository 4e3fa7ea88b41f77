// Package vals contains the values that can be bound in a namespace, and
// basic operations on them.
//
// Only reference values can be bound: *Cell, *Array, *Hash and *Fn. Each has
// exactly one Kind.
package vals

import "fmt"

// Kind is the kind of a bound value.
type Kind int

// Possible values of Kind.
const (
	Scalar Kind = iota
	Sequence
	Map
	Callable
)

// Kinds lists all kinds in their canonical order.
var Kinds = [...]Kind{Scalar, Sequence, Map, Callable}

var kindNames = [...]string{
	Scalar:   "scalar",
	Sequence: "sequence",
	Map:      "map",
	Callable: "callable",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("!(bad kind %d)", int(k))
	}
	return kindNames[k]
}

// KindOf returns the kind of v, and whether v is a value that can be bound.
// Nil pointers of the value types are not bindable.
func KindOf(v any) (Kind, bool) {
	switch v := v.(type) {
	case *Cell:
		return Scalar, v != nil
	case *Array:
		return Sequence, v != nil
	case *Hash:
		return Map, v != nil
	case *Fn:
		return Callable, v != nil
	default:
		return 0, false
	}
}

// KindName describes the kind of any value, for use in error messages. It
// returns the name of the Kind for bindable values, "nil" for nil, and the Go
// type name of the argument preceded by "!!" for anything else.
func KindName(v any) string {
	if k, ok := KindOf(v); ok {
		return k.String()
	}
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("!!%T", v)
}
