// Package config loads the optional shell startup file (SPEC_FULL.md §2.2),
// adapted from this project's YAML-document loading convention: a missing
// file is not an error, a malformed one is reported but never fatal to the
// caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/toba/shellkit/internal/constants"
)

// Config is the decoded contents of ~/.shellkitrc.yaml.
type Config struct {
	Prompt          string   `yaml:"prompt"`
	HistoryCapacity int      `yaml:"historyCapacity"`
	HistoryFile     string   `yaml:"historyFile"`
	ExtraPath       []string `yaml:"extraPath"`
	Color           *bool    `yaml:"color"`
}

// Default returns the configuration used when no rc file is present.
func Default() *Config {
	return &Config{
		Prompt:          constants.DefaultPrompt,
		HistoryCapacity: constants.DefaultHistoryCapacity,
	}
}

// ResolvePath returns the rc file path: override if non-empty, else
// $HOME/.shellkitrc.yaml. Returns "" if HOME is unset and override is empty.
func ResolvePath(override string) string {
	if override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, constants.RCFileName)
}

// Load reads and decodes the rc file at path, overlaying it on Default().
// A missing file is not an error. A malformed file is, so the caller can
// report it and fall back to defaults (never fatal — SPEC_FULL.md §2.2).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if loaded.Prompt != "" {
		cfg.Prompt = loaded.Prompt
	}
	if loaded.HistoryCapacity > 0 {
		cfg.HistoryCapacity = loaded.HistoryCapacity
	}
	if loaded.HistoryFile != "" {
		cfg.HistoryFile = expandHome(loaded.HistoryFile)
	}
	for _, p := range loaded.ExtraPath {
		cfg.ExtraPath = append(cfg.ExtraPath, expandHome(p))
	}
	cfg.Color = loaded.Color

	return cfg, nil
}

// ColorEnabled reports whether styling should be applied, defaulting to
// true when the rc file doesn't set color explicitly.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func expandHome(p string) string {
	if p == "" {
		return p
	}
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if p[0] == '~' && p[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
