// Package replconfig loads the CLI's optional YAML config file: read the
// file, then unmarshal it onto a struct already populated with defaults.
package replconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a user may override via .loxrc.yaml.
type Config struct {
	HistoryFile  string `yaml:"history_file"`
	HistoryLimit int    `yaml:"history_limit"`
	Prompt       string `yaml:"prompt"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		HistoryFile:  ".lox_history.db",
		HistoryLimit: 100,
		Prompt:       "lox> ",
		LogLevel:     "info",
	}
}

// Load reads and parses a YAML config file at path, filling in defaults
// for any field the file leaves blank.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("replconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("replconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default() when path
// does not exist, so a missing config file is not an error.
func LoadOrDefault(path string) Config {
	if _, err := os.Stat(path); err != nil {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}
