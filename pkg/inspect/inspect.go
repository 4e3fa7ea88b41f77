// Package inspect implements the inspect subprogram, which loads a binding
// file into a fresh store and runs one command against a namespace in it.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/symtab-dev/symtab/pkg/bindfile"
	"github.com/symtab-dev/symtab/pkg/logutil"
	"github.com/symtab-dev/symtab/pkg/prog"
	"github.com/symtab-dev/symtab/pkg/store"
	"github.com/symtab-dev/symtab/pkg/symtab"
	"github.com/symtab-dev/symtab/pkg/sys"
	"github.com/symtab-dev/symtab/pkg/vals"
)

var logger = logutil.GetLogger("[inspect] ")

// Program is the inspect subprogram.
var Program prog.Program = program{}

type program struct{}

type command struct {
	// Number of arguments accepted. If maxArgs is -1, there is no upper bound.
	minArgs, maxArgs int
	run              func(c *ctx, args []string) error
}

var commands = map[string]command{
	"keys":       iterating((*symtab.View).Keys),
	"scalars":    iterating((*symtab.View).Scalars),
	"sequences":  iterating((*symtab.View).Sequences),
	"maps":       iterating((*symtab.View).Maps),
	"callables":  iterating((*symtab.View).Callables),
	"namespaces": iterating((*symtab.View).ClassesNames),
	"search": {1, 1, func(c *ctx, args []string) error {
		return c.writeKeys(func(f func(string) bool) error {
			return c.v.Search(args[0], f)
		})
	}},
	"get":    {1, 1, get},
	"exists": {1, 1, exists},
	"call":   {1, -1, call},
	"tree": {0, 0, func(c *ctx, _ []string) error {
		return c.writeData(bindfile.ExportTree(c.v))
	}},
	"dump": {0, 0, func(c *ctx, _ []string) error {
		return c.writeData(bindfile.Export(c.v))
	}},
}

// Returns a command that takes no arguments and writes the keys produced by
// an iterating method of View.
func iterating(method func(*symtab.View, func(string) bool) error) command {
	return command{0, 0, func(c *ctx, _ []string) error {
		return c.writeKeys(func(f func(string) bool) error { return method(c.v, f) })
	}}
}

// Commands returns the names of all commands, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no command given")
	}
	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return prog.BadUsage("unknown command: " + name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return prog.BadUsage(fmt.Sprintf("wrong number of arguments to %s", name))
	}

	st := store.New()
	if f.File != "" {
		if err := loadFile(st, f.File); err != nil {
			return err
		}
	}
	c := &ctx{
		fds:       fds,
		v:         symtab.New(st, f.Ns),
		json:      f.JSON,
		highlight: sys.IsTerminal(fds[1]),
	}
	logger.Printf("running %s in %s", name, c.v.Name())
	return cmd.run(c, args)
}

func loadFile(st *store.MemStore, fname string) error {
	file, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	err = bindfile.Load(file, symtab.New(st, ""), Builtins())
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	logger.Println("loaded", fname)
	return nil
}

type ctx struct {
	fds       [3]*os.File
	v         *symtab.View
	json      bool
	highlight bool
}

func (c *ctx) writeKeys(iterate func(func(string) bool) error) error {
	keys, err := symtab.Collect(iterate)
	if err != nil {
		return err
	}
	writeKeys(c.fds[1], keys, c.highlight)
	return nil
}

// Writes one key per line. When highlight is true, keys of nested namespaces
// are written in bold.
func writeKeys(w io.Writer, keys []string, highlight bool) {
	for _, key := range keys {
		if k, _ := symtab.ParseKey(key); highlight && k.IsNs {
			fmt.Fprintf(w, "\033[1m%s\033[m\n", key)
		} else {
			fmt.Fprintln(w, key)
		}
	}
}

func (c *ctx) writeData(data map[string]any, err error) error {
	if err != nil {
		return err
	}
	if c.json {
		enc := json.NewEncoder(c.fds[1])
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return bindfile.Write(c.fds[1], data)
}

func get(c *ctx, args []string) error {
	value, ok := c.v.Fetch(args[0])
	if !ok {
		fmt.Fprintln(c.fds[2], "absent:", args[0])
		return prog.Exit(1)
	}
	fmt.Fprintln(c.fds[1], vals.Repr(value))
	return nil
}

func exists(c *ctx, args []string) error {
	fmt.Fprintln(c.fds[1], c.v.Exists(args[0]))
	return nil
}

func call(c *ctx, args []string) error {
	key := args[0]
	if k, ok := symtab.ParseKey(key); !ok || k.IsNs || k.Kind != vals.Callable {
		return prog.BadUsage(fmt.Sprintf("not a callable key: %s", key))
	}
	value, ok := c.v.Fetch(key)
	if !ok {
		fmt.Fprintln(c.fds[2], "absent:", key)
		return prog.Exit(1)
	}
	callArgs := make([]any, len(args)-1)
	for i, arg := range args[1:] {
		callArgs[i] = arg
	}
	result, err := value.(*vals.Fn).Call(callArgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", strings.TrimPrefix(key, "&"), err)
	}
	fmt.Fprintln(c.fds[1], vals.Repr(result))
	return nil
}
