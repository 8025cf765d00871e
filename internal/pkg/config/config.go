package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// LogPretty and SeedEnabled default by environment when unset.
	LogPretty   *bool `env:"LOG_PRETTY,   noinit"`
	SeedEnabled *bool `env:"SEED_ENABLED, noinit"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,    default=mernapp"`
}

// RedisConfig is optional; an empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// AdminConfig is only read by the provisioning command.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD, default=password123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	return &cfg, nil
}

// IsDevelopment reports whether raw error detail may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// PrettyLogs defaults to console output in development.
func (c *Config) PrettyLogs() bool {
	if c.LogPretty != nil {
		return *c.LogPretty
	}
	return c.IsDevelopment()
}

// SeedAllowed reports whether the destructive seed endpoint is exposed. It is
// off in production unless SEED_ENABLED explicitly turns it on.
func (c *Config) SeedAllowed() bool {
	if c.SeedEnabled != nil {
		return *c.SeedEnabled
	}
	return !c.IsProduction()
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
