// Command symtab loads a binding file and inspects the namespaces in it.
package main

import (
	"os"

	"github.com/symtab-dev/symtab/pkg/buildinfo"
	"github.com/symtab-dev/symtab/pkg/inspect"
	"github.com/symtab-dev/symtab/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, inspect.Program)))
}
