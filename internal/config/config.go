package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
)

// Config is the immutable run configuration, threaded explicitly through
// every component. There is no global option state.
type Config struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output,omitempty"`
	CSS          string `yaml:"css,omitempty"`
	JS           string `yaml:"js,omitempty"`
	Remove       string `yaml:"remove,omitempty"`
	IgnorePrefix string `yaml:"ignore,omitempty"`
	Hash         bool   `yaml:"hash,omitempty"`
	Etag         bool   `yaml:"etag,omitempty"`
}

// RemoveCondition is the parsed form of the Remove option: an explicit
// (scope, key) pair instead of ad-hoc string splitting at use sites.
type RemoveCondition struct {
	Scope string
	Key   string
}

// ParseRemoveCondition splits a remove argument into scope and key. The key
// is the last colon-delimited segment; everything before it is the scope.
// A value without a colon is all key. The zero value (empty key) selects
// only blocks literally tagged "remove:".
func ParseRemoveCondition(arg string) RemoveCondition {
	if arg == "" {
		return RemoveCondition{}
	}
	idx := strings.LastIndex(arg, ":")
	if idx < 0 {
		return RemoveCondition{Key: arg}
	}
	return RemoveCondition{Scope: arg[:idx], Key: arg[idx+1:]}
}

// RemoveCondition returns the parsed form of the Remove option.
func (c Config) RemoveCondition() RemoveCondition {
	return ParseRemoveCondition(c.Remove)
}

// Load reads a YAML configuration file. A .env file alongside the working
// directory is loaded first so that file values may reference it.
func Load(path string) (Config, error) {
	// .env is optional; missing files are not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ierrors.ConfigLoadFailed(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, ierrors.ConfigLoadFailed(path, fmt.Errorf("parse yaml: %w", err))
	}
	return cfg, nil
}

// LoadIfPresent behaves like Load but returns a zero Config when the file
// does not exist, so a default config path never forces a file to exist.
func LoadIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}
	return Load(path)
}

// Override returns a copy of c with every set string field of o applied on
// top. Flags parsed from the command line therefore win over file values.
// Boolean options cannot express "explicitly off" through a plain struct;
// callers carrying tri-state flags apply those with OverrideBool.
func (c Config) Override(o Config) Config {
	merged := c
	if o.Input != "" {
		merged.Input = o.Input
	}
	if o.Output != "" {
		merged.Output = o.Output
	}
	if o.CSS != "" {
		merged.CSS = o.CSS
	}
	if o.JS != "" {
		merged.JS = o.JS
	}
	if o.Remove != "" {
		merged.Remove = o.Remove
	}
	if o.IgnorePrefix != "" {
		merged.IgnorePrefix = o.IgnorePrefix
	}
	return merged
}

// OverrideBool applies a tri-state flag on top of a file value: nil leaves
// the current value, an explicit true or false wins either way.
func OverrideBool(current bool, flag *bool) bool {
	if flag == nil {
		return current
	}
	return *flag
}

// Normalized returns a copy with defaults applied: the output path defaults
// to the input path (in-place rewrite).
func (c Config) Normalized() Config {
	n := c
	if n.Output == "" {
		n.Output = n.Input
	}
	return n
}

// Validate checks the configuration against the input file on disk.
func (c Config) Validate() error {
	if c.Input == "" {
		return ierrors.MissingInput()
	}

	info, err := os.Stat(c.Input)
	if os.IsNotExist(err) {
		return ierrors.InputNotFound(c.Input)
	}
	if err != nil {
		return ierrors.InternalError("stat input file", err)
	}
	if info.IsDir() {
		return ierrors.InputIsDirectory(c.Input)
	}
	return nil
}
