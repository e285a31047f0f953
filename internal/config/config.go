package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the scribe configuration
type Config struct {
	// LogFile receives the structured session log.
	LogFile string `yaml:"log_file"`
	// DefaultExtension is assumed when a save path has no extension.
	DefaultExtension string `yaml:"default_extension"`
	// AutosaveOnGrowth controls the implicit save fired when an edit
	// increases the paragraph count of an open file.
	AutosaveOnGrowth bool `yaml:"autosave_on_growth"`
	// TabWidth is the rendered width of a tab in the editor.
	TabWidth int `yaml:"tab_width"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:          "/tmp/scribe.log",
		DefaultExtension: "txt",
		AutosaveOnGrowth: true,
		TabWidth:         4,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "scribe", "config.yaml")
	}
	return filepath.Join(home, ".config", "scribe", "config.yaml")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Start from defaults so absent keys keep their default values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.DefaultExtension == "" {
		return fmt.Errorf("default_extension cannot be empty")
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be positive")
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
