// Package config persists the few preferences dandata keeps between
// runs: the Gemini API key, a model override and the UI theme.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "config.json"

// Config holds the persisted user preferences. The zero value is the
// default configuration: no key, default model, auto-detected theme.
type Config struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`
	Theme  string `json:"theme,omitempty"` // "light", "dark" or empty for auto-detect
}

// Path returns the config file location. A project-local .dandata
// directory is preferred over the home directory, so a per-project key
// stays with its checkout.
func Path() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".dandata")
		if info, err := os.Stat(local); (err == nil && info.IsDir()) || os.IsNotExist(err) {
			return filepath.Join(local, fileName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".dandata", fileName), nil
}

// Load reads the config file. A missing file is not an error and yields
// the zero config. A malformed file returns the zero config alongside
// the error, so callers can degrade to flags and environment.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize drops values the rest of the app would have to second-guess.
func (c *Config) sanitize() {
	switch c.Theme {
	case "", "light", "dark":
	default:
		c.Theme = ""
	}
}

// Save writes the config. The file carries a credential, so both the
// directory and the file are created private to the user.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	cfg.sanitize()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
