// ABOUTME: Coach configuration management.
// ABOUTME: JSON config file under XDG config, with env var overrides for testing.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/coach/internal/storage"
)

// Config stores coach tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; coach.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/coach.
	DataDir string `json:"data_dir,omitempty" env:"COACH_DATA_DIR"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store under the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "coach.db")
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path. COACH_CONFIG_DIR overrides
// the directory, which is handy for testing.
func GetConfigPath() string {
	if dir := os.Getenv("COACH_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.json")
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "coach", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	path := GetConfigPath()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Missing config is fine, defaults apply.
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
