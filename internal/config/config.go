// Package config loads plantops settings: built-in defaults, overlaid by a
// YAML file, overlaid by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding config, database and cache.
const DirName = ".plantops"

// Config represents the plantops configuration.
type Config struct {
	DatabasePath         string        `yaml:"database_path"`
	CacheDir             string        `yaml:"cache_dir"`
	CacheInMemory        bool          `yaml:"cache_in_memory"`
	ProgressTTL          time.Duration `yaml:"progress_ttl"`
	DefaultChecklistSize int           `yaml:"default_checklist_size"`
	HTTPAddr             string        `yaml:"http_addr"`
	LogLevel             string        `yaml:"log_level"`
	LogFormat            string        `yaml:"log_format"`
	Location             string        `yaml:"location"` // IANA zone used for calendar days
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) *Config {
	return &Config{
		DatabasePath:         filepath.Join(dir, "plantops.db"),
		CacheDir:             filepath.Join(dir, "progress"),
		ProgressTTL:          2 * time.Hour,
		DefaultChecklistSize: 8,
		HTTPAddr:             ":8080",
		LogLevel:             "info",
		LogFormat:            "text",
		Location:             "Local",
	}
}

// DefaultDir returns ~/.plantops.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns ~/.plantops/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig applies defaults, then overlays the YAML file at path.
// With an empty path the default location is used and a missing file is
// not an error; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg := Default(dir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, creating the directory.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later and far away.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database_path is required")
	}
	if !c.CacheInMemory && c.CacheDir == "" {
		return errors.New("cache_dir is required unless cache_in_memory is set")
	}
	if c.ProgressTTL <= 0 {
		return fmt.Errorf("progress_ttl must be positive, got %s", c.ProgressTTL)
	}
	if c.DefaultChecklistSize < 0 {
		return fmt.Errorf("default_checklist_size must not be negative, got %d", c.DefaultChecklistSize)
	}
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	return nil
}

// TimeLocation resolves the configured zone.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("unknown location %q: %w", c.Location, err)
	}
	return loc, nil
}
