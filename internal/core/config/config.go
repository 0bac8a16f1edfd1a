package config

import "time"

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Printify PrintifyConfig `yaml:"printify"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server settings for health and metrics.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// PrintifyConfig holds upstream Printify API settings.
type PrintifyConfig struct {
	APIKey         string        `yaml:"api_key"`
	ShopID         string        `yaml:"shop_id"`
	BaseURL        string        `yaml:"base_url"`
	MaxRetries     int           `yaml:"max_retries"`
	CallTimeout    time.Duration `yaml:"call_timeout"`
	ListingTimeout time.Duration `yaml:"listing_timeout"`
}

// CacheConfig holds catalog response cache settings.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
