package cmd

import (
	"fmt"

	"github.com/gemdynamics/pulse/internal/config"
	"github.com/gemdynamics/pulse/internal/pulse"
)

// newClient builds an API client from the saved configuration
func newClient() (*pulse.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		// Continue with defaults if config fails
		fmt.Printf("Warning: using default configuration: %v\n", err)
		cfg = config.Defaults()
	}

	timeout, err := cfg.ParseTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid timeout in config: %w", err)
	}

	return pulse.NewClient(cfg.BaseURL, timeout), nil
}
