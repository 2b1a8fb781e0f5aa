package prog_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/es-shell/esmatch/pkg/logutil"
	. "github.com/es-shell/esmatch/pkg/prog"
	"github.com/es-shell/esmatch/pkg/prog/progtest"
	"github.com/es-shell/esmatch/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatEsmatch = progtest.ThatEsmatch
)

func TestCommonFlagHandling(t *testing.T) {
	testutil.InTempDir(t)
	t.Setenv(ConfigEnv, "")

	Test(t, testProgram{},
		ThatEsmatch("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatEsmatch("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatEsmatch("-help").
			WritesStdoutContaining("Usage: esmatch [flags] pattern... [-- subject...]"),

		ThatEsmatch("-cpuprofile", "cpuprof").DoesNothing(),
		ThatEsmatch("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),

		ThatEsmatch("-log-level", "loud").
			WritesStderrContaining("Warning: bad -log-level:"),
	)

	// Check for the effect of -cpuprofile. There isn't much to test beyond a
	// sanity check that the profile file now exists.
	_, err := os.Stat("cpuprof")
	assert.NoError(t, err, "CPU profile file does not exist")
}

func TestLogFlag(t *testing.T) {
	testutil.InTempDir(t)
	t.Setenv(ConfigEnv, "")
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })

	Test(t, testProgram{},
		ThatEsmatch("-log", "debug.log").DoesNothing(),
	)

	_, err := os.Stat("debug.log")
	assert.NoError(t, err, "log file does not exist")
}

func TestConfig(t *testing.T) {
	testutil.InTempDir(t)
	t.Setenv(ConfigEnv, "")
	t.Cleanup(func() {
		logutil.SetOutput(io.Discard)
		logutil.SetLevel("debug")
	})
	testutil.ApplyDir(testutil.Dir{
		"good.toml":    "json = true\nlog-level = \"warn\"\n",
		"unknown.toml": "json = true\ncolor = \"auto\"\n",
		"bad.toml":     "json = \n",
	})

	var f Flags
	Test(t, testProgram{flags: &f},
		ThatEsmatch("-config", "good.toml").DoesNothing())
	assert.True(t, f.JSON)
	assert.Equal(t, "warn", f.LogLevel)

	// Flags given explicitly win over the config file.
	f = Flags{}
	Test(t, testProgram{flags: &f},
		ThatEsmatch("-config", "good.toml", "-json=false", "-log-level", "debug").DoesNothing())
	assert.False(t, f.JSON)
	assert.Equal(t, "debug", f.LogLevel)

	f = Flags{}
	t.Setenv(ConfigEnv, "good.toml")
	Test(t, testProgram{flags: &f}, ThatEsmatch().DoesNothing())
	assert.True(t, f.JSON)

	t.Setenv(ConfigEnv, "")
	Test(t, testProgram{},
		ThatEsmatch("-config", "unknown.toml").
			ExitsWith(2).
			WritesStderrContaining("unknown keys color"),
		ThatEsmatch("-config", "bad.toml").
			ExitsWith(2).
			WritesStderrContaining("cannot load config"),
		ThatEsmatch("-config", "missing.toml").
			ExitsWith(2).
			WritesStderrContaining("cannot load config"),
	)
}

func TestLoadConfig(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"c.toml": "log = \"esmatch.log\"\n"})

	c, err := LoadConfig(dir + "/c.toml")
	require.NoError(t, err)
	assert.Equal(t, &Config{Log: "esmatch.log"}, c)

	_, err = LoadConfig(dir + "/nope.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionProgram(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	Test(t, VersionProgram{},
		ThatEsmatch("-version").WritesStdout(Version+"\n"),
		ThatEsmatch("-version", "-json").
			WritesStdoutContaining(`{"version":"`+Version+`","goversion":"go`),
		ThatEsmatch().ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatEsmatch().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatEsmatch().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatEsmatch().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatEsmatch().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatEsmatch().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatEsmatch().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatEsmatch().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
	flags       *Flags
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	if p.flags != nil {
		*p.flags = *f
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}
