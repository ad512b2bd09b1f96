// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
// Every field has a working default so the server starts with no
// environment at all.
type Config struct {
	Server ServerConfig
	DB     DatabaseConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `env:"HOST" env-default:"0.0.0.0"`
	Port         int           `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`

	// StaticPath is the directory the browser client is served from.
	// Empty disables static serving; the root then answers with a
	// plain liveness banner.
	StaticPath string `env:"STATIC_PATH" env-default:""`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `env:"DB_PATH" env-default:"./data/farmledger.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
