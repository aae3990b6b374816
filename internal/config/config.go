// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `validate:"required,numeric"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `validate:"oneof=debug info warn error"`

	// StoreDriver selects the record store: "postgres" (default) or "sqlite".
	StoreDriver string `validate:"oneof=postgres sqlite"`

	// DatabaseURL is the Postgres connection string.
	// Required when StoreDriver is "postgres".
	DatabaseURL string `validate:"required_if=StoreDriver postgres"`

	// SQLitePath is the database file used when StoreDriver is "sqlite".
	// Defaults to "hammock.db".
	SQLitePath string `validate:"required_if=StoreDriver sqlite"`

	// JWTSecret is the HMAC key used to verify bearer tokens. Required,
	// at least 32 characters.
	JWTSecret string `validate:"required,min=32"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64 `validate:"gt=0"`
}

// envNames maps each validated field to the environment variable that sets it,
// so error messages name what the operator has to fix.
var envNames = map[string]string{
	"Port":         "PORT",
	"LogLevel":     "LOG_LEVEL",
	"StoreDriver":  "STORE_DRIVER",
	"DatabaseURL":  "DATABASE_URL",
	"SQLitePath":   "SQLITE_PATH",
	"JWTSecret":    "JWT_SECRET",
	"MaxBodyBytes": "MAX_BODY_BYTES",
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any variables that are missing or invalid.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("SQLITE_PATH", "hammock.db")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)

	cfg := Config{
		Port:         v.GetString("PORT"),
		LogLevel:     strings.ToLower(v.GetString("LOG_LEVEL")),
		StoreDriver:  strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		SQLitePath:   v.GetString("SQLITE_PATH"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		CORSOrigins:  splitCSV(v.GetString("CORS_ORIGINS")),
		MaxBodyBytes: v.GetInt64("MAX_BODY_BYTES"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, describe(err)
	}
	return cfg, nil
}

// describe turns validator output into one error naming every bad variable.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config: %w", err)
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		name := envNames[fe.Field()]
		switch fe.Tag() {
		case "required", "required_if":
			missing = append(missing, name)
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s)", name, fe.Tag()))
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	return errors.New(strings.Join(parts, "; "))
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
