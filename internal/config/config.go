package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gemdynamics/pulse/internal/pulse"
)

// Config represents the pulse configuration
type Config struct {
	Version int    `toml:"version"`
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Version: 1,
		BaseURL: pulse.DefaultBaseURL,
		Timeout: "1m",
	}
}

// Load reads config from ~/.pulse/cfg.toml, creating with defaults if needed
func Load() (*Config, error) {
	path := ConfigPath()

	// Create with defaults if doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Defaults()
		if err := cfg.Save(); err != nil {
			return cfg, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	cfg := &Config{}
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Apply defaults for any missing fields
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = pulse.DefaultBaseURL
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "1m"
	}

	return cfg, nil
}

// Save writes config to ~/.pulse/cfg.toml
func (c *Config) Save() error {
	dir := filepath.Dir(ConfigPath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := ConfigPath()
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	encoder.Indent = ""
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".pulse", "cfg.toml")
}

// ParseTimeout returns the timeout as a duration. Zero means no
// client-side deadline.
func (c *Config) ParseTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

// ValidateBaseURL checks that a base URL is absolute
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("base URL must include a host")
	}
	return nil
}
