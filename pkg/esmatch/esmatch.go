// Package esmatch implements the subprograms of the esmatch command, which
// exposes the wildcard engine in pkg/glob on the command line.
package esmatch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/es-shell/esmatch/pkg/glob"
	"github.com/es-shell/esmatch/pkg/logutil"
	"github.com/es-shell/esmatch/pkg/prog"
	"github.com/es-shell/esmatch/pkg/sys"
)

var logger = logutil.GetLogger("[esmatch] ")

// Program returns the esmatch program.
func Program() prog.Program {
	return prog.Composite(
		prog.VersionProgram{}, GlobProgram{}, ExtractProgram{}, MatchProgram{})
}

// input is the parsed form of the positional arguments.
type input struct {
	patterns []glob.Pattern
	subjects []string
	// Whether subjects were given after "--".
	explicit bool
}

// parseArgs splits args into patterns and subjects at the first "--".
// Patterns are parsed with glob.Parse.
func parseArgs(args []string) input {
	var in input
	for i, arg := range args {
		if arg == "--" {
			in.explicit = true
			in.subjects = args[i+1:]
			args = args[:i]
			break
		}
	}
	in.patterns = make([]glob.Pattern, len(args))
	for i, arg := range args {
		in.patterns[i] = glob.Parse(arg)
	}
	return in
}

// readSubjects parses args and, when no subjects were given after "--", reads
// them from stdin, one per line.
func readSubjects(stdin *os.File, args []string) (input, error) {
	in := parseArgs(args)
	if in.explicit {
		return in, nil
	}
	if len(in.patterns) == 0 {
		return in, prog.BadUsage("no pattern given")
	}
	if sys.IsATTYFile(stdin) {
		return in, prog.BadUsage("no subjects given and stdin is a terminal")
	}
	subjects, err := readLines(stdin)
	if err != nil {
		return in, fmt.Errorf("cannot read subjects: %w", err)
	}
	in.subjects = subjects
	return in, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// writeList writes items one per line, or as a JSON array.
func writeList(w io.Writer, items []string, asJSON bool) error {
	if asJSON {
		if items == nil {
			items = []string{}
		}
		return json.NewEncoder(w).Encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
