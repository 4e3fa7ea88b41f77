package storedefs

import (
	"testing"

	"github.com/symtab-dev/symtab/pkg/tt"
)

var Args = tt.Args

func TestParsePath(t *testing.T) {
	tt.Test(t, tt.Fn("ParsePath", ParsePath), tt.Table{
		Args("").Rets(Path(nil)),
		Args("main").Rets(Path{}),
		Args("main::").Rets(Path{}),
		Args("A").Rets(Path{"A"}),
		Args("A::B").Rets(Path{"A", "B"}),
		Args("A.B").Rets(Path{"A", "B"}),
		Args("main::A::B").Rets(Path{"A", "B"}),
		Args("A::B.C").Rets(Path{"A", "B", "C"}),
		Args("::A::").Rets(Path{"A"}),
		Args("A::main").Rets(Path{"A", "main"}),
		Args("main::main").Rets(Path{}),
		Args("main::main::x").Rets(Path{"x"}),
		Args("main.main.x::main").Rets(Path{"x", "main"}),
	})
}

func TestPath_TrimRoot(t *testing.T) {
	tt.Test(t, tt.Fn("Path.TrimRoot", Path.TrimRoot), tt.Table{
		Args(Path(nil)).Rets(Path(nil)),
		Args(Path{"main"}).Rets(Path{}),
		Args(Path{"main", "main", "A"}).Rets(Path{"A"}),
		Args(Path{"A", "main"}).Rets(Path{"A", "main"}),
	})
}

func TestPath_String(t *testing.T) {
	tt.Test(t, tt.Fn("Path.String", Path.String), tt.Table{
		Args(Path(nil)).Rets("main"),
		Args(Path{"A"}).Rets("A"),
		Args(Path{"A", "B"}).Rets("A.B"),
	})
}

func TestPath_Parent(t *testing.T) {
	tt.Test(t, tt.Fn("Path.Parent", Path.Parent), tt.Table{
		Args(Path(nil)).Rets(Path(nil), false),
		Args(Path{"A"}).Rets(Path(nil), false),
		Args(Path{"A", "B"}).Rets(Path{"A"}, true),
		Args(Path{"A", "B", "C"}).Rets(Path{"A", "B"}, true),
	})
}

func TestPath_ChildDoesNotShareBackingArray(t *testing.T) {
	p := make(Path, 1, 4)
	p[0] = "A"
	b := p.Child("B")
	c := p.Child("C")
	if b[1] != "B" || c[1] != "C" {
		t.Errorf("Child results share storage: %v, %v", b, c)
	}
}

func TestPath_ParentDoesNotShareBackingArray(t *testing.T) {
	p := Path{"A", "B"}
	parent, _ := p.Parent()
	parent = append(parent, "X")
	if p[1] != "B" {
		t.Errorf("appending to Parent result changed the original Path: %v", p)
	}
}
