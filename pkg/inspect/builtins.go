package inspect

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/symtab-dev/symtab/pkg/vals"
)

// Builtins returns the callables that binding files can refer to by name. A
// new table is returned on each call.
func Builtins() map[string]*vals.Fn {
	return map[string]*vals.Fn{
		"greet": vals.NewFn("greet", greet),
		"upper": vals.NewFn("upper", upper),
		"len":   vals.NewFn("len", length),
		"join":  vals.NewFn("join", join),
	}
}

type arityError struct {
	want string
	got  int
}

func (e arityError) Error() string {
	return fmt.Sprintf("arity mismatch: arguments must be %s, but is %d", e.want, e.got)
}

func greet(args ...any) (any, error) {
	if len(args) == 0 {
		return "hello, world", nil
	}
	return "hello, " + joinArgs(", ", args), nil
}

func upper(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, arityError{"1 value", len(args)}
	}
	return strings.ToUpper(fmt.Sprint(args[0])), nil
}

func length(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, arityError{"1 value", len(args)}
	}
	return utf8.RuneCountInString(fmt.Sprint(args[0])), nil
}

func join(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, arityError{"1 or more values", 0}
	}
	return joinArgs(fmt.Sprint(args[0]), args[1:]), nil
}

func joinArgs(sep string, args []any) string {
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = fmt.Sprint(arg)
	}
	return strings.Join(strs, sep)
}
