package cmd

import (
	"fmt"
	"time"

	"github.com/gemdynamics/pulse/internal/config"
)

// CfgCmd manages configuration
type CfgCmd struct {
	BaseURL CfgBaseURLCmd `cmd:"" name:"base-url" help:"Set the service base URL"`
	Timeout CfgTimeoutCmd `cmd:"" help:"Set request timeout duration"`
}

// Run shows current configuration
func (c *CfgCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Current configuration (~/.pulse/cfg.toml):\n\n")
	fmt.Printf("Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("Timeout:  %s\n", cfg.Timeout)

	return nil
}

// CfgBaseURLCmd sets the service base URL
type CfgBaseURLCmd struct {
	URL string `arg:"" help:"Base URL (e.g. https://pulse.gemdynamics.dev)"`
}

func (c *CfgBaseURLCmd) Run() error {
	if err := config.ValidateBaseURL(c.URL); err != nil {
		return fmt.Errorf("invalid base URL '%s': %w", c.URL, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.BaseURL = c.URL
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Base URL set to: %s\n", c.URL)
	return nil
}

// CfgTimeoutCmd sets the request timeout
type CfgTimeoutCmd struct {
	Timeout string `arg:"" help:"Timeout duration (e.g. 30s, 1m; 0 disables)"`
}

func (c *CfgTimeoutCmd) Run() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid duration format: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Timeout = c.Timeout
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Timeout set to: %s\n", c.Timeout)
	return nil
}
