package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Store struct {
		Backend string `mapstructure:"backend"` // "memory" or "sqlite"
	} `mapstructure:"store"`

	Session struct {
		TTLMinutes int `mapstructure:"ttl_minutes"`
	} `mapstructure:"session"`

	Upload struct {
		MaxBytes int64 `mapstructure:"max_bytes"`
	} `mapstructure:"upload"`

	Dictionary struct {
		Seed bool `mapstructure:"seed"`
	} `mapstructure:"dictionary"`

	Preview struct {
		Rows int `mapstructure:"rows"`
	} `mapstructure:"preview"`
}

// SessionTTL returns the session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func setDefaults() {
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("store.backend", BackendMemory)
	viper.SetDefault("session.ttl_minutes", 60)
	viper.SetDefault("upload.max_bytes", 10<<20)
	viper.SetDefault("dictionary.seed", true)
	viper.SetDefault("preview.rows", 5)
}

// LoadConfig reads config.yaml from the working directory if present and
// falls back to defaults and environment variables otherwise.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvPrefix("LEXITAG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)",
			cfg.Store.Backend, BackendMemory, BackendSQLite)
	}
	if cfg.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session.ttl_minutes must be positive, got %d", cfg.Session.TTLMinutes)
	}
	if cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive, got %d", cfg.Upload.MaxBytes)
	}
	return nil
}
