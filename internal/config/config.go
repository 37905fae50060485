// Package config loads and saves user settings, using a viper-backed,
// XDG-rooted, defaults-then-file-then-env layering scoped down to this
// editor's own settings surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every user-adjustable editor setting.
type Config struct {
	Theme           string `mapstructure:"theme" yaml:"theme"`
	AutosaveSeconds int    `mapstructure:"autosave_seconds" yaml:"autosave_seconds"`
	WrapWidth       int    `mapstructure:"wrap_width" yaml:"wrap_width"`
	TabSize         int    `mapstructure:"tab_size" yaml:"tab_size"`
	ShowLineNumbers bool   `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	SpellCheck      bool   `mapstructure:"spell_check" yaml:"spell_check"`
	HistoryMaxCount int    `mapstructure:"history_max_count" yaml:"history_max_count"`
	HistoryMaxDays  int    `mapstructure:"history_max_days" yaml:"history_max_days"`
	SyntaxHighlight string `mapstructure:"syntax_highlight_style" yaml:"syntax_highlight_style"`
}

// GetDefaults is the single source of truth for every setting's default
// value, centralizing every default in one place.
func GetDefaults() map[string]any {
	return map[string]any{
		"theme":                  "gruvbox",
		"autosave_seconds":       60,
		"wrap_width":             0, // 0 means "fill terminal width"
		"tab_size":               4,
		"show_line_numbers":      false,
		"spell_check":            false,
		"history_max_count":      50,
		"history_max_days":       30,
		"syntax_highlight_style": "monokai",
	}
}

// knownKeys lists every mapstructure key Config recognizes, used to flag
// typos in a hand-edited config file rather than silently ignoring them.
var knownKeys = func() map[string]bool {
	keys := make(map[string]bool)
	for k := range GetDefaults() {
		keys[k] = true
	}
	return keys
}()

// IsKnownKey reports whether keyPath names a recognized setting.
func IsKnownKey(keyPath string) bool {
	return knownKeys[keyPath]
}

// GetConfigDir returns the XDG config directory for the editor: honors
// $XDG_CONFIG_HOME, falling back to ~/.config.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "dawn"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dawn"), nil
}

// GetConfigPath returns the path to the editor's config.yaml.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads settings from config.yaml, layering defaults underneath and
// environment variables (DAWN_*) on top.
func Load() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")
	v.SetEnvPrefix("dawn")
	v.AutomaticEnv()

	for key, value := range GetDefaults() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to config.yaml under the XDG config directory, creating
// the directory if needed.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("theme", cfg.Theme)
	v.Set("autosave_seconds", cfg.AutosaveSeconds)
	v.Set("wrap_width", cfg.WrapWidth)
	v.Set("tab_size", cfg.TabSize)
	v.Set("show_line_numbers", cfg.ShowLineNumbers)
	v.Set("spell_check", cfg.SpellCheck)
	v.Set("history_max_count", cfg.HistoryMaxCount)
	v.Set("history_max_days", cfg.HistoryMaxDays)
	v.Set("syntax_highlight_style", cfg.SyntaxHighlight)

	return v.WriteConfigAs(path)
}

// Exists reports whether a config file is already present.
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
