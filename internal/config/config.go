package config

import (
	"fmt"

	"go-inventario/pkg/database"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Every field maps to an environment variable,
// optionally provided through a local .env file.
type Config struct {
	Env  string `mapstructure:"APP_ENV"` // development | production
	Host string `mapstructure:"HOST"`
	Port int    `mapstructure:"PORT"`

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"` // sqlite | postgres
	DBPath      string `mapstructure:"DB_PATH"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBLogLevel  string `mapstructure:"DB_LOG_LEVEL"`

	// Views
	LowStockThreshold int `mapstructure:"LOW_STOCK_THRESHOLD"`
	PageSize          int `mapstructure:"PAGE_SIZE"`

	// Local session
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	SessionRequired bool   `mapstructure:"SESSION_REQUIRED"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from the environment and an optional .env file in
// the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", 3000)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "inventario.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_REQUIRED", true)
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("METRICS_ENABLED", true)

	// Missing .env is fine, the environment alone is enough.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", c.LowStockThreshold)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	return nil
}

// Addr is the listen address of the local interface.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database returns the connection options for database.Open.
func (c *Config) Database() database.Options {
	return database.Options{
		Driver:   c.DBDriver,
		Path:     c.DBPath,
		URL:      c.DatabaseURL,
		LogLevel: c.DBLogLevel,
	}
}
