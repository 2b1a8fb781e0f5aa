package esmatch

import (
	"os"

	"github.com/es-shell/esmatch/pkg/glob"
	"github.com/es-shell/esmatch/pkg/prog"
)

// ExtractProgram prints the parts of subjects matched by the wildcards of the
// first pattern that matches each subject. It exits with 1 when nothing was
// extracted.
type ExtractProgram struct{}

func (ExtractProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.Extract {
		return prog.ErrNotSuitable
	}
	in, err := readSubjects(fds[0], args)
	if err != nil {
		return err
	}
	patterns, quotes := glob.Split(in.patterns)
	fragments := glob.ExtractAll(in.subjects, patterns, quotes)
	logger.Debug("extract", "subjects", len(in.subjects), "fragments", len(fragments))

	if err := writeList(fds[1], fragments, f.JSON); err != nil {
		return err
	}
	if len(fragments) == 0 {
		return prog.Exit(1)
	}
	return nil
}
