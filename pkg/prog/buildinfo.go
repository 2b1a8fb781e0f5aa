package prog

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Version identifies the build. It can be overridden with
// -ldflags "-X github.com/es-shell/esmatch/pkg/prog.Version=...".
var Version = "0.1.0-dev"

// VersionProgram prints the version when -version is given.
type VersionProgram struct{}

func (VersionProgram) Run(fds [3]*os.File, f *Flags, _ []string) error {
	if !f.Version {
		return ErrNotSuitable
	}
	if f.JSON {
		return json.NewEncoder(fds[1]).Encode(struct {
			Version   string `json:"version"`
			GoVersion string `json:"goversion"`
		}{Version, runtime.Version()})
	}
	fmt.Fprintln(fds[1], Version)
	return nil
}
