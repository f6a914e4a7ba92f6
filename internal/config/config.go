package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the admin service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"admin-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database connection, assembled into a DSN by DSN(). Each knob also
	// honors the libpq-style fallback names some hosting platforms inject.
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"registry_hub"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Database connection pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Static assets for the admin SPA
	StaticDir string `env:"STATIC_DIR" envDefault:"web/public"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	applyFallbacks(cfg)

	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 10
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}

// applyFallbacks fills fields whose primary variable is unset from the
// alternative names. The primary always wins when both are present.
func applyFallbacks(cfg *Config) {
	fallbackString("DB_HOST", &cfg.DBHost, "PGHOST", "DB_HOSTNAME")
	fallbackString("DB_USER", &cfg.DBUser, "PGUSER")
	fallbackString("DB_PASSWORD", &cfg.DBPassword, "PGPASSWORD")
	fallbackString("DB_NAME", &cfg.DBName, "PGDATABASE")
	fallbackInt("DB_PORT", &cfg.DBPort, "PGPORT")
	fallbackInt("PORT", &cfg.HTTPPort, "HTTP_PORT")
}

func fallbackString(primary string, dst *string, alternates ...string) {
	if _, ok := os.LookupEnv(primary); ok {
		return
	}
	for _, name := range alternates {
		if value, ok := os.LookupEnv(name); ok {
			*dst = value
			return
		}
	}
}

func fallbackInt(primary string, dst *int, alternates ...string) {
	if _, ok := os.LookupEnv(primary); ok {
		return
	}
	for _, name := range alternates {
		if value, ok := os.LookupEnv(name); ok {
			if parsed, err := strconv.Atoi(value); err == nil {
				*dst = parsed
			}
			return
		}
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
