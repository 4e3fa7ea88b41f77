package symtab

import (
	"unicode"

	"github.com/symtab-dev/symtab/pkg/vals"
)

// Sigils of the four kinds.
const (
	ScalarSigil   byte = '$'
	SequenceSigil byte = '@'
	MapSigil      byte = '%'
	CallableSigil byte = '&'
)

var sigils = [...]byte{
	vals.Scalar:   ScalarSigil,
	vals.Sequence: SequenceSigil,
	vals.Map:      MapSigil,
	vals.Callable: CallableSigil,
}

// SigilOf returns the sigil of a kind.
func SigilOf(k vals.Kind) byte {
	return sigils[k]
}

// KindOfSigil returns the kind denoted by a sigil, and whether c is a sigil at
// all.
func KindOfSigil(c byte) (vals.Kind, bool) {
	switch c {
	case ScalarSigil:
		return vals.Scalar, true
	case SequenceSigil:
		return vals.Sequence, true
	case MapSigil:
		return vals.Map, true
	case CallableSigil:
		return vals.Callable, true
	default:
		return 0, false
	}
}

// IsLabel returns whether s can be used as a label: a non-empty string of
// letters, digits and underscores.
func IsLabel(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Key is a parsed key. If IsNs is true, it addresses the nested namespace
// Label and Kind is meaningless; otherwise it addresses the binding of kind
// Kind named Label.
type Key struct {
	Kind  vals.Kind
	Label string
	IsNs  bool
}

// ParseKey parses a key of the form <sigil><label> or <label>. It returns
// false if s is neither.
func ParseKey(s string) (Key, bool) {
	if s == "" {
		return Key{}, false
	}
	if k, ok := KindOfSigil(s[0]); ok {
		if !IsLabel(s[1:]) {
			return Key{}, false
		}
		return Key{Kind: k, Label: s[1:]}, true
	}
	if !IsLabel(s) {
		return Key{}, false
	}
	return Key{Label: s, IsNs: true}, true
}

// FormatKey formats a typed key.
func FormatKey(k vals.Kind, label string) string {
	return string(SigilOf(k)) + label
}

// String formats the key back to the form accepted by ParseKey.
func (k Key) String() string {
	if k.IsNs {
		return k.Label
	}
	return FormatKey(k.Kind, k.Label)
}
