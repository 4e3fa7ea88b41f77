package prog

import (
	"flag"
	"io"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool

	// Binding file to load, and path of the namespace to operate on.
	File, Ns string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("symtab", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON. Useful with -buildinfo, tree and dump")

	fs.StringVar(&f.File, "f", "", "a binding file to load before running the command")
	fs.StringVar(&f.Ns, "ns", "", "path of the namespace to operate on, such as A::B; the root by default")

	return fs
}
