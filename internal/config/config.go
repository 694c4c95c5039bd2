// Package config loads the justify command-line configuration.
//
// Configuration lives in an optional TOML file:
//
//	width     = 72        # line width in runes
//	tie_break = "longer"  # "longer" (default) or "shorter"
//	workers   = 4         # paragraphs justified in parallel
//	border    = false     # frame paragraphs in the terminal
//
// Unset keys keep their defaults; unknown keys are rejected so that typos do
// not silently fall back to defaults. Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/dunkelmpl/textjustification/justify"
)

const (
	// appName names the configuration directory.
	appName = "justify"

	// fileName is the configuration file inside the directory.
	fileName = "config.toml"

	// DefaultWidth is the line width used when nothing else is configured.
	DefaultWidth = 80

	// MaxWorkers bounds paragraph-level parallelism.
	MaxWorkers = 64
)

// ErrUnknownKey indicates a key in the file that Config does not define.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the resolved CLI configuration.
type Config struct {
	Width    int    `toml:"width" validate:"min=1"`
	TieBreak string `toml:"tie_break" validate:"omitempty,oneof=longer shorter"`
	Workers  int    `toml:"workers" validate:"min=1,max=64"`
	Border   bool   `toml:"border"`
}

// Default returns the built-in configuration.
func Default() Config {
	workers := runtime.NumCPU()
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	return Config{
		Width:    DefaultWidth,
		TieBreak: justify.TieLonger.String(),
		Workers:  workers,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/justify/config.toml, falling back to
// ~/.config/justify/config.toml.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path on top of Default and validates the result.
// When optional is true a missing file yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// Options converts the configuration into justify options.
func (c Config) Options() ([]justify.Option, error) {
	tie, err := justify.ParseTieBreak(c.TieBreak)
	if err != nil {
		return nil, err
	}

	return []justify.Option{justify.WithTieBreak(tie)}, nil
}
