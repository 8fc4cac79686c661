// Package project loads the optional monkey.toml manifest that supplies
// defaults for the CLI commands.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the upward search looks for.
const ManifestName = "monkey.toml"

// Manifest is a located and decoded monkey.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the monkey.toml schema. Unknown keys are ignored.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Repl     ReplConfig     `toml:"repl"`
	Tokenize TokenizeConfig `toml:"tokenize"`
}

// PackageConfig names the project.
type PackageConfig struct {
	Name string `toml:"name"`
}

// ReplConfig holds repl command defaults.
type ReplConfig struct {
	Prompt string `toml:"prompt"`
	UI     bool   `toml:"ui"`
}

// TokenizeConfig holds tokenize command defaults.
type TokenizeConfig struct {
	Format string `toml:"format"`
	Cache  *bool  `toml:"cache"`
}

// DefaultConfig returns the built-in defaults used when no manifest exists.
func DefaultConfig() Config {
	cache := true
	return Config{
		Repl:     ReplConfig{Prompt: ">> "},
		Tokenize: TokenizeConfig{Format: "pretty", Cache: &cache},
	}
}

// findManifest walks upward from startDir looking for monkey.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest manifest above startDir. A missing
// manifest is not an error: ok is false and the defaults apply.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if cfg.Repl.Prompt == "" {
		cfg.Repl.Prompt = DefaultConfig().Repl.Prompt
	}
	if cfg.Tokenize.Format == "" {
		cfg.Tokenize.Format = DefaultConfig().Tokenize.Format
	}

	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
