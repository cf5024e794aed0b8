// Package config loads application configuration from the environment.
// Configuration is passed explicitly into constructors rather than read
// from ambient globals, so tests can run with independent settings.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port       string
	CORSOrigin string

	// Base currency every expense is normalized into at write time.
	BaseCurrency string

	// FX rate source (exchangerate.host / Apilayer)
	ExchangeAPIBase string
	ExchangeAPIKey  string
	ExchangeTimeout time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if present; plain environment variables work too.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		BaseCurrency:    strings.ToUpper(getEnv("BASE_CURRENCY", "CAD")),
		ExchangeAPIBase: getEnv("EXCHANGE_API_BASE", "https://api.exchangerate.host"),
		ExchangeAPIKey:  os.Getenv("EXCHANGE_API_KEY"),
	}

	timeoutStr := getEnv("EXCHANGE_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_TIMEOUT value %q: %w", timeoutStr, err)
	}
	cfg.ExchangeTimeout = timeout

	if cfg.BaseCurrency == "" {
		return nil, fmt.Errorf("BASE_CURRENCY must not be empty")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
