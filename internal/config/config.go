// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"4000"`

	DatabaseURL      string        `env:"DATABASE_URL"`
	DatabaseHostname string        `env:"DATABASE_HOSTNAME" envDefault:"localhost"`
	DatabasePort     string        `env:"DATABASE_PORT" envDefault:"5432"`
	DatabaseUsername string        `env:"DATABASE_USERNAME" envDefault:"postgres"`
	DatabasePassword string        `env:"DATABASE_PASSWORD"`
	DatabaseName     string        `env:"DATABASE_NAME" envDefault:"feedback"`
	DBMaxOpen        int           `env:"DB_MAX_OPEN" envDefault:"25"`
	DBMaxIdle        int           `env:"DB_MAX_IDLE" envDefault:"25"`
	DBMaxLifetime    time.Duration `env:"DB_MAX_LIFETIME" envDefault:"5m"`

	SecretKey                 string `env:"SECRET_KEY,required,notEmpty"`
	Algorithm                 string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpiresMinutes int    `env:"ACCESS_TOKEN_EXPIRES_MINUTES" envDefault:"30"`
	BcryptCost                int    `env:"BCRYPT_COST" envDefault:"10"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MaxPageSize        int      `env:"MAX_PAGE_SIZE" envDefault:"100"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses and validates the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("config: unsupported ALGORITHM %q", c.Algorithm)
	}
	if c.AccessTokenExpiresMinutes <= 0 {
		return errors.New("config: ACCESS_TOKEN_EXPIRES_MINUTES must be positive")
	}
	if c.MaxPageSize <= 0 {
		return errors.New("config: MAX_PAGE_SIZE must be positive")
	}
	return nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpiresMinutes) * time.Minute
}

// DSN returns DATABASE_URL, or a postgres URL assembled from the
// DATABASE_* parts when it is unset.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DatabaseUsername, c.DatabasePassword),
		Host:   net.JoinHostPort(c.DatabaseHostname, c.DatabasePort),
		Path:   "/" + c.DatabaseName,
	}
	return u.String()
}

// AllowedOrigins trims blanks and trailing slashes from the configured
// CORS origins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
