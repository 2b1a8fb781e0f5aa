package esmatch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/es-shell/esmatch/pkg/glob"
	"github.com/es-shell/esmatch/pkg/prog"
)

// MatchProgram reports whether any pattern matches any subject. It exits with
// 1 when there is no match.
type MatchProgram struct{}

func (MatchProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	in, err := readSubjects(fds[0], args)
	if err != nil {
		return err
	}
	patterns, quotes := glob.Split(in.patterns)
	matched := glob.MatchAny(in.subjects, patterns, quotes)
	logger.Debug("match", "subjects", len(in.subjects), "patterns", in.patterns, "matched", matched)

	if f.JSON {
		err = json.NewEncoder(fds[1]).Encode(matched)
	} else {
		_, err = fmt.Fprintln(fds[1], matched)
	}
	if err != nil {
		return err
	}
	if !matched {
		return prog.Exit(1)
	}
	return nil
}
