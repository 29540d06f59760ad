// Package config provides configuration structures and validation for the
// service. Settings come from the environment (optionally seeded from a .env
// file) and cover the HTTP server, the database pool, and logging.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration. Each field represents
// one subsystem and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Database    DatabaseConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// DatabaseConfig contains PostgreSQL configuration. MaxConns bounds the
// only shared resource in the process; requests queue on the pool when it
// is saturated.
type DatabaseConfig struct {
	ConnString      string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Minimum number of idle connections kept open
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// validate ensures all configuration values meet minimum requirements
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate database config
	if c.Database.ConnString == "" {
		validationErrors = append(validationErrors, "DB_CONN_STR is required")
	}
	if c.Database.MaxConns <= 0 {
		validationErrors = append(validationErrors, "DB_MAX_OPEN_CONNS must be greater than 0")
	}
	if c.Database.MinConns <= 0 {
		validationErrors = append(validationErrors, "DB_MIN_CONNS must be greater than 0")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		validationErrors = append(validationErrors, "DB_MIN_CONNS must not exceed DB_MAX_OPEN_CONNS")
	}
	if c.Database.ConnMaxLifetime <= 0 {
		validationErrors = append(validationErrors, "DB_MAX_CONN_LIFETIME must be greater than 0")
	}
	if c.Database.ConnMaxIdleTime <= 0 {
		validationErrors = append(validationErrors, "DB_MAX_CONN_IDLE_TIME must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
