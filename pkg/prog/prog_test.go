package prog_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/symtab-dev/symtab/pkg/logutil"
	"github.com/symtab-dev/symtab/pkg/must"
	. "github.com/symtab-dev/symtab/pkg/prog"
	"github.com/symtab-dev/symtab/pkg/prog/progtest"
	"github.com/symtab-dev/symtab/pkg/testutil"
)

var (
	Test       = progtest.Test
	ThatSymtab = progtest.ThatSymtab
)

func TestCommonFlagHandling(t *testing.T) {
	Test(t, testProgram{},
		ThatSymtab("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatSymtab("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatSymtab("-help").
			WritesStdoutContaining("Usage: symtab [flags] COMMAND [args]"),
	)
}

func TestLogFlag(t *testing.T) {
	dir := testutil.TempDir(t)
	logFile := filepath.Join(dir, "log")
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })

	Test(t, testProgram{log: "logged from program"},
		ThatSymtab("-log", logFile).DoesNothing(),
	)

	if content := must.ReadFileString(logFile); !strings.Contains(content, "logged from program") {
		t.Errorf("log file has %q", content)
	}
}

func TestFlagsArePassed(t *testing.T) {
	var got Flags
	Test(t, flagsRecorder{&got},
		ThatSymtab("-f", "a.yaml", "-ns", "A::B", "-json", "keys").DoesNothing(),
	)
	want := Flags{File: "a.yaml", Ns: "A::B", JSON: true}
	if got != want {
		t.Errorf("got flags %+v, want %+v", got, want)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatSymtab().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatSymtab().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatSymtab().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatSymtab().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatSymtab().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatSymtab().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatSymtab().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	log         string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	if p.log != "" {
		logutil.GetLogger("[test] ").Println(p.log)
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type flagsRecorder struct{ f *Flags }

func (r flagsRecorder) Run(_ [3]*os.File, f *Flags, _ []string) error {
	*r.f = *f
	return nil
}
