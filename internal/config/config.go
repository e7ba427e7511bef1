// Package config loads the iomode.toml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the manifest looked up next to the sources.
const DefaultFileName = "iomode.toml"

var (
	// ErrInvalidTabWidth indicates a non-positive [editor].tab_width.
	ErrInvalidTabWidth = errors.New("tab_width must be a positive integer")
	// ErrInterpreterMissing indicates an empty [repl].interpreter.
	ErrInterpreterMissing = errors.New("interpreter must not be empty")
)

// Editor holds the editing-surface knobs.
type Editor struct {
	TabWidth              int  `toml:"tab_width"`
	StripWhitespaceOnSave bool `toml:"strip_whitespace_on_save"`
}

// Repl holds the inferior-interpreter knobs.
type Repl struct {
	// Interpreter is the name or path of the external Io executable.
	Interpreter string   `toml:"interpreter"`
	Args        []string `toml:"args"`
}

// Config is the full tool configuration.
type Config struct {
	Editor Editor `toml:"editor"`
	Repl   Repl   `toml:"repl"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Editor: Editor{
			TabWidth:              2,
			StripWhitespaceOnSave: true,
		},
		Repl: Repl{
			Interpreter: "io",
		},
	}
}

// Load parses a manifest file. Sections that are absent keep their
// defaults; present values are validated.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(cfg, meta); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from dir upward looking for iomode.toml and loads the first
// hit. Missing manifests are not an error: the defaults are returned.
func Discover(dir string) (Config, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Default(), nil
		}
		dir = wd
	}
	for {
		candidate := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func validate(cfg Config, meta toml.MetaData) error {
	if meta.IsDefined("editor", "tab_width") && cfg.Editor.TabWidth < 1 {
		return ErrInvalidTabWidth
	}
	if meta.IsDefined("repl", "interpreter") && cfg.Repl.Interpreter == "" {
		return ErrInterpreterMissing
	}
	return nil
}

// DefaultManifest renders the iomode.toml written by `iomode init`.
func DefaultManifest() string {
	return `[editor]
tab_width = 2
strip_whitespace_on_save = true

[repl]
interpreter = "io"
# args = ["-q"]
`
}
