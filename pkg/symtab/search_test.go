package symtab_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/symtab-dev/symtab/pkg/must"
	"github.com/symtab-dev/symtab/pkg/store"
	. "github.com/symtab-dev/symtab/pkg/symtab"
	"github.com/symtab-dev/symtab/pkg/symtab/errs"
	"github.com/symtab-dev/symtab/pkg/vals"
)

// A namespace with a scalar, a callable and nested namespaces:
//
//	$count, @count, %env, &greet, Sub, Util
func setupSearch() *View {
	st := store.New()
	v := New(st, "")
	must.OK(v.Store("$count", vals.NewCell(3)))
	must.OK(v.Store("@count", vals.NewArray(1, 2, 3)))
	must.OK(v.Store("%env", vals.MakeHash("HOME", "/root")))
	must.OK(v.Store("&greet", vals.NewFn("greet", nil)))
	must.OK(New(st, "Sub").Store("$x", vals.NewCell(nil)))
	must.OK(New(st, "Util::Strings").Store("&upper", vals.NewFn("upper", nil)))
	return v
}

func TestCategoryIterators(t *testing.T) {
	v := setupSearch()
	tests := []struct {
		name    string
		iterate func(func(string) bool) error
		want    []string
	}{
		{"Keys", v.Keys, []string{"$count", "%env", "&greet", "@count", "Sub", "Util"}},
		{"Scalars", v.Scalars, []string{"$count"}},
		{"Sequences", v.Sequences, []string{"@count"}},
		{"Maps", v.Maps, []string{"%env"}},
		{"Callables", v.Callables, []string{"&greet"}},
		{"ClassesNames", v.ClassesNames, []string{"Sub", "Util"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Collect(test.iterate)
			if err != nil {
				t.Fatalf("got error %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	v := setupSearch()
	tests := []struct {
		pattern string
		want    []string
	}{
		{"g.*", []string{"&greet"}},
		{"count", []string{"$count", "@count"}},
		{`^\$`, []string{"$count"}},
		{"^[A-Z]", []string{"Sub", "Util"}},
		{"nothing", nil},
		{"", []string{"$count", "%env", "&greet", "@count", "Sub", "Util"}},
	}
	for _, test := range tests {
		got := must.OK1(Collect(func(f func(string) bool) error {
			return v.Search(test.pattern, f)
		}))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Search(%q) (-want +got):\n%s", test.pattern, diff)
		}
	}
}

func TestSearch_BadPattern(t *testing.T) {
	v := setupSearch()
	called := false
	err := v.Search("(", func(string) bool { called = true; return true })
	var bad errs.BadPattern
	if !errors.As(err, &bad) || bad.Pattern != "(" {
		t.Errorf("Search with bad pattern -> %v, want BadPattern", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("BadPattern does not wrap the parse error")
	}
	if called {
		t.Errorf("callback called despite bad pattern")
	}
}

func TestSearchRegexp_StopsEarly(t *testing.T) {
	v := setupSearch()
	var got []string
	err := v.SearchRegexp(regexp.MustCompile("count"), func(key string) bool {
		got = append(got, key)
		return false
	})
	if err != nil {
		t.Fatalf("got error %v", err)
	}
	if diff := cmp.Diff([]string{"$count"}, got); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestSearch_DoesNotDisturbCursor(t *testing.T) {
	v := setupSearch()
	first, _, _ := v.FirstKey()
	must.OK1(Collect(v.Callables))
	second, _ := v.NextKey()
	if first != "$count" || second != "%env" {
		t.Errorf("cursor disturbed: got %q then %q", first, second)
	}
}

func TestTree(t *testing.T) {
	v := setupSearch()
	want := Tree{"Sub": Tree{}, "Util": Tree{"Strings": Tree{}}}
	if diff := cmp.Diff(want, must.OK1(v.Tree())); diff != "" {
		t.Errorf("Tree (-want +got):\n%s", diff)
	}
	util, _ := v.Fetch("Util")
	if diff := cmp.Diff(Tree{"Strings": Tree{}}, must.OK1(util.(*View).Tree())); diff != "" {
		t.Errorf("Tree of Util (-want +got):\n%s", diff)
	}
}
