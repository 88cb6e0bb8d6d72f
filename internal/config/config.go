// Package config loads tracker settings from the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Ledger backends, matching the db package's backend names
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

type Config struct {
	// HTTP server
	Port string

	// Logging
	LogLevel string

	// Ledger backend selection
	LedgerBackend string
}

// Load reads an optional .env file and then the process environment
func Load() *Config {
	// A missing .env is fine; the environment may be set directly
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LedgerBackend: strings.ToLower(getEnv("LEDGER_BACKEND", BackendMemory)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LedgerBackend {
	case BackendMemory, BackendBadger:
	default:
		problems = append(problems, fmt.Sprintf("invalid ledger backend '%s': must be one of [%s %s]",
			c.LedgerBackend, BackendMemory, BackendBadger))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
