package prog

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the content of a config file. Each field provides the default
// for the command-line flag of the same name.
type Config struct {
	JSON     bool   `toml:"json"`
	Log      string `toml:"log"`
	LogLevel string `toml:"log-level"`
}

// LoadConfig reads a TOML config file. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("cannot load config: %s: unknown keys %s",
			path, strings.Join(keys, ", "))
	}
	return &c, nil
}

// applyConfig fills in flags that were not set on the command line from the
// config file named by -config or $ESMATCH_CONFIG, if any.
func applyConfig(f *Flags, fs *flag.FlagSet) error {
	path := f.Config
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return nil
	}
	c, err := LoadConfig(path)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["json"] {
		f.JSON = c.JSON
	}
	if !set["log"] {
		f.Log = c.Log
	}
	if !set["log-level"] {
		f.LogLevel = c.LogLevel
	}
	return nil
}
