// Esmatch matches subjects against shell wildcard patterns, extracts the
// parts matched by wildcards, or expands patterns against the filesystem.
package main

import (
	"os"

	"github.com/es-shell/esmatch/pkg/esmatch"
	"github.com/es-shell/esmatch/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, esmatch.Program()))
}
