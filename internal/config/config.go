package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Logging LoggingConfig

	// Itinerary pipeline configuration
	Itinerary ItineraryConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// DatabaseConfig holds database-related configuration. It is only
// validated when no snapshot file is configured.
type DatabaseConfig struct {
	Host         string `validate:"required"`
	Port         string `validate:"required,numeric"`
	User         string `validate:"required"`
	Password     string `validate:"required"`
	Name         string `validate:"required"`
	SSLMode      string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns     int32  `validate:"gte=1"`
	MinConns     int32  `validate:"gte=0,ltefield=MaxConns"`
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration `validate:"gt=0"`
	QueryTimeout time.Duration `validate:"gte=0"`
}

// JWTConfig holds the settings used to verify access tokens issued by the
// hosted auth service.
type JWTConfig struct {
	Secret   string `validate:"required,min=16"`
	Audience string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `validate:"min=1"`
	AllowedMethods   []string `validate:"min=1"`
	AllowedHeaders   []string
	AllowCredentials bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `validate:"oneof=debug info warn warning error"`
}

// ItineraryConfig holds pipeline settings
type ItineraryConfig struct {
	// TimeZone is the IANA zone used for booking times written without an offset.
	TimeZone string `validate:"required"`
	// SnapshotFile, when set, replaces the database with a YAML snapshot.
	SnapshotFile string
	// FetchConcurrency caps parallel table reads per category; 0 means unlimited.
	FetchConcurrency int `validate:"gte=0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := FromEnv()

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv reads the configuration from the process environment without
// loading .env files or validating.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			Audience: getEnv("JWT_AUDIENCE", "authenticated"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Itinerary: ItineraryConfig{
			TimeZone:         getEnv("ITINERARY_TIMEZONE", "UTC"),
			SnapshotFile:     getEnv("ITINERARY_SNAPSHOT_FILE", ""),
			FetchConcurrency: getIntEnv("ITINERARY_FETCH_CONCURRENCY", 0),
		},
	}
}

var validate = validator.New()

// Validate validates the configuration
func (c *Config) Validate() error {
	type section struct {
		name  string
		value any
	}
	sections := []section{
		{"server", c.Server},
		{"jwt", c.JWT},
		{"cors", c.CORS},
		{"logging", c.Logging},
		{"itinerary", c.Itinerary},
	}
	// The database is not needed when serving a snapshot.
	if !c.UseSnapshot() {
		sections = append(sections, section{"database", c.Database})
	}

	for _, s := range sections {
		if err := validate.Struct(s.value); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// UseSnapshot reports whether the itinerary is served from a YAML file.
func (c *Config) UseSnapshot() bool {
	return c.Itinerary.SnapshotFile != ""
}

// Location resolves the configured itinerary time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Itinerary.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("ITINERARY_TIMEZONE %q: %w", c.Itinerary.TimeZone, err)
	}
	return loc, nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
