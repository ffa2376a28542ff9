// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/zmanim/internal/astro"
	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/geo"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Calendar policy
	InIsrael       bool // observe the single festival days of Israel
	ModernHolidays bool // include observances instituted after 1948

	// Sunrise algorithm: noaa, usno, meeus
	Calculator string

	// Default observer
	LocationName string
	Latitude     float64
	Longitude    float64
	Elevation    float64 // meters
	TimeZone     string  // IANA name

	// Optional YAML catalog of named locations
	LocationsFile string
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Calendar policy
	cfg.InIsrael = getEnvBool("ZMANIM_IN_ISRAEL", false)
	cfg.ModernHolidays = getEnvBool("ZMANIM_MODERN_HOLIDAYS", true)

	cfg.Calculator = getEnv("ZMANIM_CALCULATOR", astro.NOAAName)

	// Default observer is the Royal Observatory, Greenwich
	greenwich := geo.Greenwich()
	cfg.LocationName = getEnv("ZMANIM_LOCATION_NAME", greenwich.Name)
	cfg.Latitude = getEnvFloat("ZMANIM_LATITUDE", greenwich.Point.Latitude)
	cfg.Longitude = getEnvFloat("ZMANIM_LONGITUDE", greenwich.Point.Longitude)
	cfg.Elevation = getEnvFloat("ZMANIM_ELEVATION", greenwich.Point.Elevation)
	cfg.TimeZone = getEnv("ZMANIM_TIMEZONE", "UTC")

	cfg.LocationsFile = getEnv("ZMANIM_LOCATIONS_FILE", "")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if names := astro.CalculatorNames(); !slices.Contains(names, c.Calculator) {
		errs = append(errs, fmt.Errorf("ZMANIM_CALCULATOR must be one of: %v; got %q", names, c.Calculator))
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		errs = append(errs, fmt.Errorf("ZMANIM_LATITUDE must be between -90 and 90, got %v", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errs = append(errs, fmt.Errorf("ZMANIM_LONGITUDE must be between -180 and 180, got %v", c.Longitude))
	}
	if c.Elevation < 0 {
		errs = append(errs, fmt.Errorf("ZMANIM_ELEVATION must not be negative, got %v", c.Elevation))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("ZMANIM_TIMEZONE %q: %w", c.TimeZone, err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Options returns the calendar policy flags.
func (c *Config) Options() calendar.Options {
	return calendar.Options{InIsrael: c.InIsrael, ModernHolidays: c.ModernHolidays}
}

// Location returns the configured default observer.
func (c *Config) Location() (geo.Location, error) {
	return geo.NewLocation(c.LocationName, c.Latitude, c.Longitude, c.Elevation, c.TimeZone)
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool reads an environment variable as a boolean with a default fallback.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
