// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Upload     UploadConfig
	Security   SecurityConfig
	Validation ValidationConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 4000)
	Port int `env:"PORT" envAlt:"SERVER_PORT" default:"4000"`

	// ReadHeaderTimeout bounds reading the request line and headers (default: 30s).
	// The body has no read deadline so large uploads on slow links complete.
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 120s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"120s"`
}

// DatabaseConfig holds database connection settings.
//
// The connection is described either by URL or by the individual
// host/user/password/name parts. URL wins when both are set.
type DatabaseConfig struct {
	// URL is an optional full PostgreSQL connection string
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	Host     string `env:"DB_HOST" default:"localhost"`
	Port     int    `env:"DB_PORT" default:"5432"`
	User     string `env:"DB_USER" default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" default:"employeeDB"`
	SSLMode  string `env:"DB_SSL_MODE" default:"disable"`

	// MaxConns is the connection ceiling of the pool; callers beyond it queue (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// AutoMigrate applies embedded schema migrations on startup (default: true)
	AutoMigrate bool `env:"DB_AUTO_MIGRATE" default:"true"`
}

// UploadConfig holds onboarding attachment settings.
type UploadConfig struct {
	// Dir is the directory uploaded files are written to (default: uploads)
	Dir string `env:"UPLOAD_DIR" default:"uploads"`

	// MaxRequestSize caps the whole multipart body in bytes (default: 200MB)
	MaxRequestSize int64 `env:"UPLOAD_MAX_REQUEST_SIZE" default:"209715200"`

	// MaxConcurrent is the maximum number of submissions streaming files at once (default: 10)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" default:"10"`

	// MaxWaitTime is how long a submission waits for a slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" default:"30s"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// ValidationConfig controls optional checks on submitted records.
type ValidationConfig struct {
	// RequiredFields is a comma-separated list of columns that must be non-null.
	// Empty (the default) stores every submission as received.
	RequiredFields []string `env:"VALIDATE_REQUIRED_FIELDS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// DSN returns the connection string for pgx. Without URL it is built as a
// postgres:// URL so empty passwords and passwords with spaces or quotes
// survive parsing.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return c.partsURL("postgres")
}

// MigrateURL returns the URL form golang-migrate's pgx/v5 driver expects.
func (c *DatabaseConfig) MigrateURL() string {
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
			u.Scheme = "pgx5"
			return u.String()
		}
		return c.URL
	}
	return c.partsURL("pgx5")
}

func (c *DatabaseConfig) partsURL(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
