// Package config loads fnm-setup configuration.
//
// Configuration is layered: embedded defaults first, then an optional
// user file. Every key has a working default; the user file exists only
// to rename the managed tool or adjust the generated templates.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/fnm-setup/pkg/errors"
)

// Config holds all fnm-setup settings
type Config struct {
	Tool    ToolConfig    `koanf:"tool" toml:"tool"`
	AutoRun AutoRunConfig `koanf:"autorun" toml:"autorun"`
}

// ToolConfig describes the managed version-manager executable
type ToolConfig struct {
	Name  string      `koanf:"name" toml:"name"`
	Flags FlagsConfig `koanf:"flags" toml:"flags"`
}

// FlagsConfig toggles the flags passed to the tool's env command
type FlagsConfig struct {
	UseOnCd  bool `koanf:"use_on_cd" toml:"use_on_cd"`
	Corepack bool `koanf:"corepack" toml:"corepack"`
}

// AutoRunConfig describes the cmd.exe init script
type AutoRunConfig struct {
	ScriptName string `koanf:"script_name" toml:"script_name"`
	GuardVar   string `koanf:"guard_var" toml:"guard_var"`
}

// Load returns the configuration, merging the optional user file at
// userFile over the embedded defaults. A missing user file is not an
// error; a malformed one is.
func Load(userFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userFile)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults are validated by tests; a parse failure
		// here is a build defect.
		panic(err)
	}
	return cfg
}

// EnvArgs returns the arguments for the tool's env command targeting
// the given shell, honoring the configured flag toggles.
func (c *Config) EnvArgs(shell string) []string {
	args := []string{"env"}
	if c.Tool.Flags.UseOnCd {
		args = append(args, "--use-on-cd")
	}
	if c.Tool.Flags.Corepack {
		args = append(args, "--corepack-enabled")
	}
	return append(args, "--shell", shell)
}
