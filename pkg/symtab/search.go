package symtab

import (
	"regexp"

	"github.com/symtab-dev/symtab/pkg/symtab/errs"
)

var (
	scalarKeys    = regexp.MustCompile(`^\$`)
	sequenceKeys  = regexp.MustCompile(`^@`)
	mapKeys       = regexp.MustCompile(`^%`)
	callableKeys  = regexp.MustCompile(`^&`)
	namespaceKeys = regexp.MustCompile(`^[^$@%&]`)
)

// Search calls f with each key of a fresh snapshot of the namespace that
// matches the regular expression pattern, stopping when f returns false. The
// match is unanchored and includes the sigil, so "g.*" matches "&greet".
func (v *View) Search(pattern string, f func(key string) bool) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errs.BadPattern{Pattern: pattern, Err: err}
	}
	return v.SearchRegexp(re, f)
}

// SearchRegexp is like Search, but takes a compiled regular expression.
func (v *View) SearchRegexp(re *regexp.Regexp, f func(key string) bool) error {
	return v.Keys(func(key string) bool {
		if re.MatchString(key) {
			return f(key)
		}
		return true
	})
}

// Scalars iterates the scalar keys.
func (v *View) Scalars(f func(key string) bool) error {
	return v.SearchRegexp(scalarKeys, f)
}

// Sequences iterates the sequence keys.
func (v *View) Sequences(f func(key string) bool) error {
	return v.SearchRegexp(sequenceKeys, f)
}

// Maps iterates the map keys.
func (v *View) Maps(f func(key string) bool) error {
	return v.SearchRegexp(mapKeys, f)
}

// Callables iterates the callable keys.
func (v *View) Callables(f func(key string) bool) error {
	return v.SearchRegexp(callableKeys, f)
}

// ClassesNames iterates the keys of nested namespaces.
func (v *View) ClassesNames(f func(key string) bool) error {
	return v.SearchRegexp(namespaceKeys, f)
}

// Collect runs an iterating method like Keys or Scalars and collects the keys
// into a slice:
//
//	keys, err := symtab.Collect(v.Scalars)
func Collect(iterate func(f func(key string) bool) error) ([]string, error) {
	var keys []string
	err := iterate(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys, err
}
