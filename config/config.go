// Package config loads the editor settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the variable that overrides the config file location.
const EnvPath = "MODAL_CONFIG"

const defaultNotificationLimit = 100

type Config struct {
	Log           LogConfig          `yaml:"log"`
	Notifications NotificationConfig `yaml:"notifications"`
	Strict        bool               `yaml:"strict"`
	Editor        EditorConfig       `yaml:"editor"`
	Highlight     HighlightConfig    `yaml:"highlight"`
	Theme         ThemeConfig        `yaml:"theme"`
}

type LogConfig struct {
	File    string `yaml:"file"`
	Enabled bool   `yaml:"enabled"`
}

type NotificationConfig struct {
	// Limit is how many notifications are kept. 0 keeps the default.
	Limit int `yaml:"limit"`
}

type EditorConfig struct {
	LineNumbers     bool `yaml:"line_numbers"`
	RelativeNumbers bool `yaml:"relative_numbers"`
}

type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Theme    string `yaml:"theme"` // chroma style name, empty for the default
	Language string `yaml:"language"`
}

// ThemeConfig holds colour overrides. Empty values keep the built-in colour.
type ThemeConfig struct {
	Normal            string `yaml:"normal"`
	Insert            string `yaml:"insert"`
	GoTo              string `yaml:"goto"`
	Delete            string `yaml:"delete"`
	StatusBackground  string `yaml:"status_background"`
	StatusForeground  string `yaml:"status_foreground"`
	LineNumber        string `yaml:"line_number"`
	CurrentLineNumber string `yaml:"current_line_number"`
	Info              string `yaml:"info"`
	Warning           string `yaml:"warning"`
	Error             string `yaml:"error"`
	Success           string `yaml:"success"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			File:    defaultLogFile(),
			Enabled: true,
		},
		Notifications: NotificationConfig{Limit: defaultNotificationLimit},
		Editor:        EditorConfig{LineNumbers: true},
		Highlight:     HighlightConfig{Enabled: true},
	}
}

// Load reads the file at path over the defaults. If the file does not exist,
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Notifications.Limit == 0 {
		cfg.Notifications.Limit = defaultNotificationLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns $MODAL_CONFIG, else ~/.config/modal/config.yaml.
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".modal", "config.yaml")
	}
	return filepath.Join(home, ".config", "modal", "config.yaml")
}

func (c *Config) Validate() error {
	if c.Notifications.Limit < 0 {
		return fmt.Errorf("notifications.limit must not be negative, got %d", c.Notifications.Limit)
	}
	return nil
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "modal.log"
	}
	return filepath.Join(home, ".local", "share", "modal", "modal.log")
}
