package esmatch

import (
	"os"

	"github.com/es-shell/esmatch/pkg/glob"
	"github.com/es-shell/esmatch/pkg/prog"
)

// GlobProgram expands each pattern against the filesystem and prints the
// paths found. It exits with 1 when no path was found.
type GlobProgram struct{}

func (GlobProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.Glob {
		return prog.ErrNotSuitable
	}
	in := parseArgs(args)
	if in.explicit {
		return prog.BadUsage("-glob takes no subjects")
	}
	if len(in.patterns) == 0 {
		return prog.BadUsage("no pattern given")
	}
	var paths []string
	for _, p := range in.patterns {
		glob.Glob(p, func(path string) bool {
			paths = append(paths, path)
			return true
		})
	}
	logger.Debug("glob", "patterns", in.patterns, "paths", len(paths))

	if err := writeList(fds[1], paths, f.JSON); err != nil {
		return err
	}
	if len(paths) == 0 {
		return prog.Exit(1)
	}
	return nil
}
