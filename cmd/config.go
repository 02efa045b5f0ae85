package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/etnz/opsheet"
	"github.com/etnz/opsheet/tinkoff"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the configuration file.
const (
	EnvToken        = "OPSHEET_TOKEN"
	EnvBaseURL      = "OPSHEET_BASE_URL"
	EnvLogLevel     = "OPSHEET_LOG_LEVEL"
	EnvTradingStart = "OPSHEET_TRADING_START"
	EnvFormat       = "OPSHEET_FORMAT"
)

// Config holds all configuration for opsheet
type Config struct {
	Broker  BrokerConfig  `toml:"broker"`
	Report  ReportConfig  `toml:"report"`
	Logging LoggingConfig `toml:"logging"`
}

// BrokerConfig holds the broker API client configuration
type BrokerConfig struct {
	Token     string `toml:"token"`
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	CacheDir  string `toml:"cache_dir"` // empty disables the instrument search cache
}

// GetTimeout parses and returns the timeout duration
func (c *BrokerConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return tinkoff.DefaultTimeout
	}
	return d
}

// GetRateLimit returns the requests per second, a non positive limit falls
// back to the default.
func (c *BrokerConfig) GetRateLimit() int {
	if c.RateLimit <= 0 {
		return tinkoff.DefaultRateLimit
	}
	return c.RateLimit
}

// ReportConfig holds the report defaults
type ReportConfig struct {
	TradingStart  string `toml:"trading_start"` // RFC 3339
	ReferenceFigi string `toml:"reference_figi"`
	Format        string `toml:"format"`
}

// GetTradingStart parses the trading start.
func (c *ReportConfig) GetTradingStart() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.TradingStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid trading_start %q: %w", c.TradingStart, err)
	}
	return t, nil
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Broker: BrokerConfig{
			BaseURL:   tinkoff.DefaultBaseURL,
			RateLimit: tinkoff.DefaultRateLimit,
			Timeout:   tinkoff.DefaultTimeout.String(),
		},
		Report: ReportConfig{
			TradingStart:  opsheet.DefaultTradingStart.Format(time.RFC3339),
			ReferenceFigi: string(opsheet.DefaultReferenceInstrument),
			Format:        "md",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first, it never overrides
// variables already set.
func LoadConfig(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue // Skip missing files
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvToken); v != "" {
		config.Broker.Token = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		config.Broker.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv(EnvTradingStart); v != "" {
		config.Report.TradingStart = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		config.Report.Format = v
	}
	if v := os.Getenv("OPSHEET_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Broker.RateLimit = n
		}
	}
}
