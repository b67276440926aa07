package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/assessrec"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogURL is the product catalog page scraped when no
// configuration overrides it.
const DefaultCatalogURL = "https://www.shl.com/solutions/products/product-catalog/"

// Config holds the program configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the web server and recommendation output.
type ServerConfig struct {
	Addr              string `yaml:"addr"`
	TopN              int    `yaml:"top_n"`
	ExtractTimeoutSec int    `yaml:"extract_timeout_sec"`
}

// ExtractTimeout returns the query URL extraction timeout.
func (c ServerConfig) ExtractTimeout() time.Duration {
	return time.Duration(c.ExtractTimeoutSec) * time.Second
}

// CatalogConfig configures catalog scraping.
type CatalogConfig struct {
	URLs        []string `yaml:"urls"`
	Concurrency int      `yaml:"concurrency"`
	TimeoutSec  int      `yaml:"timeout_sec"`
	RatePerSec  float64  `yaml:"rate_per_sec"`
}

// Timeout returns the catalog scrape timeout.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8501",
			TopN:              assessrec.DefaultTopN,
			ExtractTimeoutSec: 5,
		},
		Catalog: CatalogConfig{
			URLs:        []string{DefaultCatalogURL},
			Concurrency: 4,
			TimeoutSec:  10,
			RatePerSec:  1.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads configuration from the given YAML file, applies
// environment variable overrides, and validates the result. An empty
// path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides overrides configuration values from ASSESSREC_*
// environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ASSESSREC_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ASSESSREC_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.TopN = n
		}
	}
	if v := os.Getenv("ASSESSREC_CATALOG_URLS"); v != "" {
		var urls []string
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) > 0 {
			cfg.Catalog.URLs = urls
		}
	}
	if v := os.Getenv("ASSESSREC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	if len(c.Catalog.URLs) == 0 {
		return fmt.Errorf("config: at least one catalog URL is required")
	}
	if c.Server.TopN <= 0 {
		return fmt.Errorf("config: top_n must be positive, got %d", c.Server.TopN)
	}
	if c.Catalog.Concurrency <= 0 {
		return fmt.Errorf("config: concurrency must be positive, got %d", c.Catalog.Concurrency)
	}
	if c.Catalog.TimeoutSec <= 0 {
		return fmt.Errorf("config: timeout_sec must be positive, got %d", c.Catalog.TimeoutSec)
	}
	if c.Catalog.RatePerSec <= 0 {
		return fmt.Errorf("config: rate_per_sec must be positive, got %g", c.Catalog.RatePerSec)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}
