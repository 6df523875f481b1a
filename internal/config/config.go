// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all settings for the report server. Values come from
// environment variables with sensible defaults.
type Config struct {
	Port     int
	LogLevel string

	// LedgerPath is the CSV ledger the server aggregates from.
	LedgerPath string

	// RatesPath optionally adds rate tables beyond the built-in years.
	RatesPath string

	// ReadTimeout/WriteTimeout bound HTTP request handling; the ledger call
	// inherits the request context, so a slow aggregation fails the report.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8080),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LedgerPath:   getEnv("LEDGER_PATH", "ledger.csv"),
		RatesPath:    getEnv("RATES_PATH", ""),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
