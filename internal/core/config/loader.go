package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if necessary
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Printify.BaseURL == "" {
		cfg.Printify.BaseURL = "https://api.printify.com/v1"
	}
	if cfg.Printify.MaxRetries == 0 {
		cfg.Printify.MaxRetries = 3
	}
	if cfg.Printify.CallTimeout == 0 {
		cfg.Printify.CallTimeout = 30 * time.Second
	}
	if cfg.Printify.ListingTimeout == 0 {
		cfg.Printify.ListingTimeout = 60 * time.Second
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 1 * time.Hour
	}

	if cfg.Printify.APIKey == "" {
		return nil, fmt.Errorf("printify.api_key is required")
	}

	return &cfg, nil
}
