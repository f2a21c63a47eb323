package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns a lib/pq connection URL.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type Config struct {
	HTTPAddr        string
	JWTSecret       string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	DB              Database
}

// Load reads a .env file when present and then the process environment.
// It reports whether a .env file was found so callers can log it.
func Load() (Config, bool, error) {
	found := godotenv.Load() == nil

	cfg := Config{
		HTTPAddr:        getenv("HTTP_ADDR", "0.0.0.0:8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "console"),
		ShutdownTimeout: 30 * time.Second,
		DB: Database{
			Host:     getenv("POSTGRES_HOST", "localhost"),
			Port:     getenv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
			SSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
		},
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, found, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, found, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DB.User == "" || c.DB.Name == "" {
		return errors.New("POSTGRES_USER and POSTGRES_DB are required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
