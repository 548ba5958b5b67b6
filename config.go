/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package reliant

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cloudward/reliant/resilience"
)

// ClientConfig is the per-client configuration surface. The only tunable
// behavior is the retry schedule; zero values fall back to the defaults
// in resilience.DefaultConfig.
type ClientConfig struct {
	// MaxAttempts overrides the retry budget (default 5).
	MaxAttempts int `yaml:"maxAttempts"`
	// BaseIntervalMs overrides the base backoff interval in milliseconds (default 200).
	BaseIntervalMs int `yaml:"baseIntervalMs"`
	// Exponential selects exponential (true, default) or linear backoff.
	Exponential *bool `yaml:"exponential"`
}

// LoadClientConfig reads a ClientConfig from a YAML file.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client config: %w", err)
	}
	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}
	return &cfg, nil
}

// RetryConfig converts the YAML surface into a resilience.Config,
// filling unset fields from the defaults.
func (c *ClientConfig) RetryConfig() resilience.Config {
	cfg := resilience.DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.MaxAttempts > 0 {
		cfg.MaxAttempts = c.MaxAttempts
	}
	if c.BaseIntervalMs > 0 {
		cfg.BaseInterval = time.Duration(c.BaseIntervalMs) * time.Millisecond
	}
	if c.Exponential != nil {
		cfg.Exponential = *c.Exponential
	}
	return cfg
}
