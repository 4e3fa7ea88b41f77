package vals

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a Value. The string is either a
	// literal of that Value, or a string enclosed in "<>" containing the kind
	// and identity of the Value (like `<fn greet>`).
	Repr() string
}

// Repr returns the representation for a value. Strings are quoted when they
// are not safe barewords, Arrays are written as [a b c], Hashes as
// [&k=v ...] with sorted keys, and a Cell as the representation of its
// content. A Cell, Array or Hash that contains itself is written as <cycle>
// where it recurs.
func Repr(v any) string {
	return repr(v, nil)
}

// The enclosing containers are kept in seen. It is only allocated when the
// first container is entered.
func repr(v any, seen map[any]bool) string {
	switch v.(type) {
	case *Cell, *Array, *Hash:
		if seen[v] {
			return "<cycle>"
		}
		if seen == nil {
			seen = make(map[any]bool)
		}
		seen[v] = true
		defer delete(seen, v)
	}
	switch v := v.(type) {
	case nil:
		return "$nil"
	case bool:
		if v {
			return "$true"
		}
		return "$false"
	case string:
		return Quote(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *Cell:
		return repr(v.Get(), seen)
	case *Array:
		b := new(listReprBuilder)
		for _, elem := range v.elems {
			b.writeElem(repr(elem, seen))
		}
		return b.String()
	case *Hash:
		b := new(listReprBuilder)
		for _, k := range v.Keys() {
			b.writeElem("&" + Quote(k) + "=" + repr(v.m[k], seen))
		}
		if b.sb.Len() == 0 {
			return "[&]"
		}
		return b.String()
	case *Fn:
		return "<fn " + v.name + ">"
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// Quote returns s unchanged if it is a non-empty bareword, and s in single
// quotes otherwise. Single quotes inside s are doubled.
func Quote(s string) string {
	bare := s != ""
	for _, r := range s {
		if !allowedInBareword(r) {
			bare = false
			break
		}
	}
	if bare {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func allowedInBareword(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ':' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

type listReprBuilder struct {
	sb strings.Builder
}

func (b *listReprBuilder) writeElem(v string) {
	if b.sb.Len() == 0 {
		b.sb.WriteByte('[')
	} else {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(v)
}

func (b *listReprBuilder) String() string {
	if b.sb.Len() == 0 {
		return "[]"
	}
	b.sb.WriteByte(']')
	return b.sb.String()
}
