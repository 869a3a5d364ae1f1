package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config controls how demo terms are reduced and rendered. Values come
// from a lambda.toml found in or above the working directory; explicit
// flags override.
type Config struct {
	// MaxSteps caps the number of beta steps per term. Zero removes the
	// cap, which makes terms without a normal form reduce forever.
	MaxSteps int `toml:"max_steps"`

	// ASCII renders λ as a backslash for terminals without unicode.
	ASCII bool `toml:"ascii"`

	// Quiet prints only the final term of each demo.
	Quiet bool `toml:"quiet"`

	// Verbose dumps the structure of each final term.
	Verbose bool `toml:"-"`
}

func defaultConfig() Config {
	return Config{MaxSteps: 1000}
}

// LoadConfig loads a lambda.toml file from the given path.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// FindConfig searches for a lambda.toml file starting from dir and
// walking up to parent directories. Returns the path to lambda.toml and
// the parsed config, or ("", nil, nil) if not found.
func FindConfig(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, "lambda.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		// Stop at .git boundary
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}
