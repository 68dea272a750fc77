// Package config loads and saves metrodesk user configuration. The config
// lives in a project-local .metrodesk directory when one exists, otherwise
// under the user's home directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	// Theme selects the color scheme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`

	// SimulatedLatency is the delay applied to every simulated backend
	// call. It exists so the pending-operation states stay visible while
	// the real backend is not wired up.
	SimulatedLatency time.Duration `yaml:"simulated_latency"`

	// UploadDir is the directory the file browser opens in. Empty means
	// the current working directory.
	UploadDir string `yaml:"upload_dir"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the rotating file log.
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	File       string `yaml:"file"`        // empty = <config dir>/metrodesk.log
	MaxSizeMB  int    `yaml:"max_size_mb"` // per-file cap before rotation
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:            "auto",
		SimulatedLatency: 1500 * time.Millisecond,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Dir returns the directory the config and logs live in. A project-local
// .metrodesk directory wins over the home-level one.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".metrodesk")
		if stat, err := os.Stat(local); err == nil && stat.IsDir() {
			return local, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".metrodesk"), nil
}

// File returns the full path of the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = File()
		if err != nil {
			return Default(), err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func (c Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = File()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
