// Package config loads the user-editable sheetdesk configuration from a YAML
// file, with environment variables as read-only overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Env var names used as overrides.
const (
	EnvServerURL   = "SHEETDESK_SERVER"
	EnvCloneSource = "SHEETDESK_CLONE_SOURCE"
	EnvLogFile     = "SHEETDESK_LOG_FILE"
)

// Config is the persisted configuration.
type Config struct {
	// ServerURL is the base URL of the sheet backend.
	ServerURL string `yaml:"server_url"`
	// CloneSource is the sheet used as the template for clone operations.
	CloneSource string `yaml:"clone_source"`
	// LogFile enables rotating file logging when non-empty.
	LogFile string `yaml:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ServerURL:   "http://localhost:8080",
		CloneSource: "APR 25",
	}
}

// Path returns the config file location (~/.config/sheetdesk/config.yaml).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "sheetdesk", "config.yaml"), nil
}

// Load reads the config file if present and applies env overrides. A missing
// file is not an error; the defaults are returned.
func Load() (Config, error) {
	cfg := Defaults()

	path, err := Path()
	if err == nil {
		data, rerr := os.ReadFile(path)
		switch {
		case rerr == nil:
			if uerr := yaml.Unmarshal(data, &cfg); uerr != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, uerr)
			}
		case !os.IsNotExist(rerr):
			return cfg, fmt.Errorf("reading %s: %w", path, rerr)
		}
	}

	applyEnv(&cfg)
	fillDefaults(&cfg)
	return cfg, nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvCloneSource); v != "" {
		cfg.CloneSource = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
}

func fillDefaults(cfg *Config) {
	def := Defaults()
	if cfg.ServerURL == "" {
		cfg.ServerURL = def.ServerURL
	}
	if cfg.CloneSource == "" {
		cfg.CloneSource = def.CloneSource
	}
}
