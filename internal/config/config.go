package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"ubertool-rental-billing/internal/domain"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// CatalogConfig selects where tool charge policies come from
type CatalogConfig struct {
	Source string       `yaml:"source"` // "memory" or "postgres"
	Tools  []ToolConfig `yaml:"tools"`  // seed for the memory catalog; empty means the default catalog
}

// ToolConfig is one seeded catalog entry
type ToolConfig struct {
	Code          string `yaml:"code"`
	Type          string `yaml:"type"`
	Brand         string `yaml:"brand"`
	DailyCharge   string `yaml:"daily_charge"`
	WeekdayCharge bool   `yaml:"weekday_charge"`
	WeekendCharge bool   `yaml:"weekend_charge"`
	HolidayCharge bool   `yaml:"holiday_charge"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.overrideWithEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Catalog
	if val := os.Getenv("CATALOG_SOURCE"); val != "" {
		c.Catalog.Source = val
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceMemory
	}
	c.Catalog.Source = strings.ToLower(c.Catalog.Source)
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case CatalogSourceMemory:
		if _, err := c.Catalog.SeedTools(); err != nil {
			return err
		}
	case CatalogSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported catalog source: %q", c.Catalog.Source)
	}

	return nil
}

// SeedTools converts the configured seed list into catalog entries
func (c CatalogConfig) SeedTools() ([]domain.Tool, error) {
	tools := make([]domain.Tool, 0, len(c.Tools))
	seen := make(map[string]bool, len(c.Tools))
	for _, t := range c.Tools {
		if t.Code == "" {
			return nil, fmt.Errorf("catalog tool code is required")
		}
		if seen[t.Code] {
			return nil, fmt.Errorf("duplicate catalog tool code: %s", t.Code)
		}
		seen[t.Code] = true

		charge, err := decimal.NewFromString(t.DailyCharge)
		if err != nil {
			return nil, fmt.Errorf("invalid daily charge for %s: %w", t.Code, err)
		}
		if !charge.IsPositive() {
			return nil, fmt.Errorf("daily charge for %s must be greater than 0", t.Code)
		}

		tools = append(tools, domain.Tool{
			Code:  t.Code,
			Type:  t.Type,
			Brand: t.Brand,
			Policy: domain.ChargePolicy{
				DailyCharge:     charge,
				WeekdayBillable: t.WeekdayCharge,
				WeekendBillable: t.WeekendCharge,
				HolidayBillable: t.HolidayCharge,
			},
		})
	}
	return tools, nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
