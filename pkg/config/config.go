package config

import (
	"fmt"
	"os"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// defaults
const (
	DefaultFeedURL   = "https://www.microsoft.com/releasecommunications/api/v2/azure/rss"
	DefaultTimeout   = 30 * time.Second
	DefaultCacheTTL  = 5 * time.Minute
	DefaultUserAgent = "azupdates/1.0"
	DefaultTransport = TransportStdio
	DefaultListen    = "0.0.0.0:8000"
)

// transports
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the application configuration
type Config struct {
	Feed   FeedConfig   `yaml:"feed" json:"feed" jsonschema:"description=Upstream feed configuration"`
	Cache  CacheConfig  `yaml:"cache" json:"cache" jsonschema:"description=Feed cache configuration"`
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Tool server configuration"`
}

// FeedConfig holds upstream feed settings
type FeedConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"description=RSS feed URL"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=azupdates/1.0,description=User agent for feed requests"`
}

// CacheConfig holds feed cache settings
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=5m,description=Maximum age of cached feed data"`
}

// ServerConfig holds tool server settings
type ServerConfig struct {
	Transport string        `yaml:"transport" json:"transport" jsonschema:"enum=stdio,enum=http,default=stdio,description=Tool transport"`
	Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=0.0.0.0:8000,description=HTTP listen address"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public base URL used in generated RSS links"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file, environment variables in the file are expanded
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Feed.URL == "" {
		c.Feed.URL = DefaultFeedURL
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = DefaultTimeout
	}
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = DefaultUserAgent
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Server.Transport == "" {
		c.Server.Transport = DefaultTransport
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive, got %v", c.Feed.Timeout)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	if c.Server.Transport != TransportStdio && c.Server.Transport != TransportHTTP {
		return fmt.Errorf("server.transport must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Server.Transport)
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
