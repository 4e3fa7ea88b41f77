package logutil

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/symtab-dev/symtab/pkg/must"
)

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Println("hello")

	got := buf.String()
	if !strings.HasPrefix(got, "[test] ") || !strings.HasSuffix(got, "hello\n") {
		t.Errorf("log output %q, want prefix [test] and message hello", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")

	fname := filepath.Join(t.TempDir(), "log")
	must.OK(SetOutputFile(fname))
	logger.Println("to file")
	must.OK(SetOutputFile(""))

	if got := must.ReadFileString(fname); !strings.HasSuffix(got, "to file\n") {
		t.Errorf("log file content %q, want suffix %q", got, "to file\n")
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	if err := SetOutputFile("/a/bad/path/log"); err == nil {
		t.Errorf("SetOutputFile with bad path returns nil error")
	}
}
