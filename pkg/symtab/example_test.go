package symtab_test

import (
	"fmt"

	"github.com/symtab-dev/symtab/pkg/store"
	"github.com/symtab-dev/symtab/pkg/symtab"
	"github.com/symtab-dev/symtab/pkg/vals"
)

func Example() {
	st := store.New()
	v := symtab.New(st, "A")
	v.Store("&greet", vals.NewFn("greet", func(args ...any) (any, error) {
		return fmt.Sprint("hello, ", args[0]), nil
	}))
	v.Store("$count", vals.NewCell(3))

	fmt.Println(symtab.Collect(v.Scalars))
	fmt.Println(symtab.Collect(v.Callables))

	greet, _ := v.Fetch("&greet")
	fmt.Println(greet.(*vals.Fn).Call("world"))
	// Output:
	// [$count] <nil>
	// [&greet] <nil>
	// hello, world <nil>
}

func ExampleView_FirstKey() {
	st := store.New()
	v := symtab.New(st, "")
	v.Store("@list", vals.NewArray("a", "b"))
	v.Store("$x", vals.NewCell(1))
	symtab.New(st, "Sub").Store("%m", vals.NewHash())

	for key, ok, _ := v.FirstKey(); ok; key, ok = v.NextKey() {
		fmt.Println(key)
	}
	// Output:
	// $x
	// @list
	// Sub
}

func ExampleView_Exists() {
	v := symtab.New(store.New(), "")
	v.Store("@x", vals.NewArray())

	_, fetched := v.Fetch("$x")
	fmt.Println(v.Exists("$x"), fetched)
	// Output:
	// true false
}
