// Package config provides configuration loading for tunetexture.
//
// Values are layered: built-in defaults, then ~/.tunetexture/config.json, then a .env file in
// the working directory, then TUNETEXTURE_* environment variables. Command flags are applied
// last by the commands themselves.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gigurra/tunetexture/cmd/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. TUNETEXTURE_BASE_URL.
const EnvPrefix = "TUNETEXTURE"

const (
	DefaultBaseURL          = "http://127.0.0.1:8000"
	DefaultPlaybackTemplate = "https://open.spotify.com/track/%s"
	DefaultTimeoutSeconds   = 15
	DefaultBarWidth         = 20
)

// Config represents the tunetexture configuration file structure.
// Environment names are derived by envconfig word splitting (BaseURL -> TUNETEXTURE_BASE_URL).
type Config struct {
	BaseURL             string `json:"base_url" split_words:"true"`
	PlaybackURLTemplate string `json:"playback_url_template" split_words:"true"`
	TimeoutSeconds      int    `json:"timeout_seconds" split_words:"true"`
	BarWidth            int    `json:"bar_width" split_words:"true"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             DefaultBaseURL,
		PlaybackURLTemplate: DefaultPlaybackTemplate,
		TimeoutSeconds:      DefaultTimeoutSeconds,
		BarWidth:            DefaultBarWidth,
	}
}

// ConfigPath returns the path to the config file (~/.tunetexture/config.json).
func ConfigPath() string {
	dir := common.AppDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.json")
}

// Load reads the config file, then applies .env and environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

// LoadFile loads the config from path.
// Returns the default config if the file doesn't exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from TUNETEXTURE_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Save saves the config to ~/.tunetexture/config.json.
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg as indented JSON to path.
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://, got %q", c.BaseURL)
	}
	if strings.Count(c.PlaybackURLTemplate, "%s") > 1 {
		return fmt.Errorf("playback_url_template may contain %%s at most once, got %q", c.PlaybackURLTemplate)
	}
	return nil
}

// Timeout is the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// applyDefaults fills zero values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.PlaybackURLTemplate == "" {
		c.PlaybackURLTemplate = defaults.PlaybackURLTemplate
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.BarWidth <= 0 {
		c.BarWidth = defaults.BarWidth
	}
}
