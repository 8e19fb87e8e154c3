// Package config resolves the todo file path and CLI settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML settings filename.
	ConfigFile = "config.toml"

	// DefaultFile is the backing file used when nothing else is configured.
	DefaultFile = "TODO"

	// EnvFile overrides the backing file path.
	EnvFile = "TODO_FILE"

	// EnvDebug enables debug logging when set to a true value.
	EnvDebug = "TODO_DEBUG"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// File is the todo backing file path.
	File string `toml:"file"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// Warnings collects settings that were ignored while loading.
	Warnings []string `toml:"-"`
}

// Overrides carries values set on the command line.
// Empty or nil fields leave the lower layers untouched.
type Overrides struct {
	File  string
	Debug *bool
	Quiet *bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, File: DefaultFile}, nil
}

// Load builds a Config from, in increasing priority: defaults, the TOML file
// in configDir, environment variables, then flag overrides.
func Load(configDir string, ov Overrides) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	cfg.loadEnv()

	if ov.File != "" {
		cfg.File = ov.File
	}
	if ov.Debug != nil {
		cfg.Debug = *ov.Debug
	}
	if ov.Quiet != nil {
		cfg.Quiet = *ov.Quiet
	}

	cfg.File = expandPath(cfg.File)
	if strings.TrimSpace(cfg.File) == "" {
		return nil, errors.New("todo file path is empty")
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the TOML settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if the settings file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// loadFile decodes the settings file over c. A missing file is not an error.
func (c *Config) loadFile() error {
	if !c.HasConfigFile() {
		return nil
	}
	if _, err := toml.DecodeFile(c.ConfigPath(), c); err != nil {
		return fmt.Errorf("loading config file %s: %w", c.ConfigPath(), err)
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvFile); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring %s=%q: want true or false", EnvDebug, v))
		} else {
			c.Debug = b
		}
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
