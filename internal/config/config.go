/*
File    : monkeylite/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads user settings for the monkeylite CLI from a
// small YAML file, e.g. ~/.monkeylite.yaml. Every field has a usable
// zero value, so a missing or empty file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the settings a user may override.
type Config struct {
	// Prompt is the string the REPL shows before each line of input.
	Prompt string `yaml:"prompt"`
	// NoColor is read from the file but no command consults it, so it
	// does not switch colored output off.
	NoColor bool `yaml:"no_color"`
	// HistoryFile is read from the file but the REPL does not use it:
	// line history is kept in memory for one session only.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in settings used when no config file exists.
func Default() *Config {
	return &Config{
		Prompt:      "monkeylite>> ",
		NoColor:     false,
		HistoryFile: "",
	}
}

// Load reads settings from path, falling back to Default() for any field
// the file does not set. A missing file is not an error: it just means
// every field keeps its default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.monkeylite.yaml, the conventional location the
// CLI looks for a config file when none is given explicitly.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".monkeylite.yaml"
	}
	return filepath.Join(home, ".monkeylite.yaml")
}
