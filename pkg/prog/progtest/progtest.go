// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatEsmatch function, followed by
// method calls that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//		ThatEsmatch("-glob", "*.go").WritesStdout("main.go\n"),
//		ThatEsmatch("-bad-flag").ExitsWith(2).WritesStderrContaining("Usage:"),
//	)
package progtest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/es-shell/esmatch/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	tty   bool

	want result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content  string
	partial  bool
	expected bool
}

// ThatEsmatch returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "esmatch -bad-flag" exits with 2 reads
// like:
//
//	ThatEsmatch("-bad-flag").ExitsWith(2)
func ThatEsmatch(args ...string) Case {
	return Case{args: append([]string{"esmatch"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// WithTTYStdin returns an altered Case that connects stdin of the program to
// a pseudo-terminal.
func (c Case) WithTTYStdin() Case {
	c.tty = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatEsmatch("-cpuprofile", "cpuprof").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s, expected: true}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true, expected: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s, expected: true}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true, expected: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(t, p, c)

			assert.Equal(t, c.want.exitCode, exit, "exit code")
			checkOutput(t, "stdout", c.want.stdout, stdout)
			checkOutput(t, "stderr", c.want.stderr, stderr)
		})
	}
}

func checkOutput(t *testing.T, name string, want output, got string) {
	t.Helper()
	switch {
	case !want.expected:
		assert.Empty(t, got, name)
	case want.partial:
		assert.Contains(t, got, want.content, name)
	default:
		assert.Equal(t, want.content, got, name)
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// code and the output written to stdout and stderr.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (int, string, string) {
	t.Helper()
	return run(t, p, ThatEsmatch(args...).WithStdin(stdin))
}

func run(t *testing.T, p prog.Program, c Case) (int, string, string) {
	t.Helper()
	dir := t.TempDir()

	var stdin *os.File
	if c.tty {
		ptmx, tty, err := pty.Open()
		if err != nil {
			t.Skipf("pty not available: %v", err)
		}
		t.Cleanup(func() {
			tty.Close()
			ptmx.Close()
		})
		stdin = tty
	} else {
		stdin = tempFile(t, dir, "stdin")
		_, err := stdin.WriteString(c.stdin)
		require.NoError(t, err)
		_, err = stdin.Seek(0, io.SeekStart)
		require.NoError(t, err)
	}
	stdout := tempFile(t, dir, "stdout")
	stderr := tempFile(t, dir, "stderr")

	exit := prog.Run([3]*os.File{stdin, stdout, stderr}, c.args, p)
	return exit, readAll(t, stdout), readAll(t, stderr)
}

func tempFile(t *testing.T, dir, name string) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readAll(t *testing.T, f *os.File) string {
	t.Helper()
	_, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(b)
}
