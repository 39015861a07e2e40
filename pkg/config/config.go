package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Forecast struct {
		// Seeded by the API handler as defaults for requests that omit
		// the corresponding field.
		Lookback     int     `yaml:"lookback"`
		Horizon      int     `yaml:"horizon"`
		TestFraction float64 `yaml:"test_fraction"`
		Model        string  `yaml:"model"`
		MaxCandles   int     `yaml:"max_candles"`
	} `yaml:"forecast"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FORECAST_MODEL"); v != "" {
		c.Forecast.Model = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Forecast.Lookback <= 0 {
		return fmt.Errorf("forecast.lookback must be positive")
	}
	if c.Forecast.Horizon <= 0 {
		return fmt.Errorf("forecast.horizon must be positive")
	}
	if c.Forecast.TestFraction <= 0 || c.Forecast.TestFraction >= 1 {
		return fmt.Errorf("forecast.test_fraction must be in (0,1), got %v", c.Forecast.TestFraction)
	}
	switch c.Forecast.Model {
	case "linear", "forest", "svr":
	default:
		return fmt.Errorf("forecast.model must be 'linear', 'forest' or 'svr', got '%s'", c.Forecast.Model)
	}
	return nil
}
