package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"expenses/internal/log"
)

type Config struct {
	// Logging
	LogLevel string

	// Presentation
	CurrencySymbol string
	Prompt         string
	MaxNameLength  int
}

func Load() *Config {
	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "$"),
		Prompt:         getEnv("SHELL_PROMPT", "> "),
		MaxNameLength:  getEnvInt("MAX_NAME_LENGTH", 40),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		errors = append(errors, "currency symbol cannot be empty")
	} else if utf8.RuneCountInString(c.CurrencySymbol) > 3 {
		errors = append(errors, fmt.Sprintf("invalid currency symbol '%s': at most 3 characters", c.CurrencySymbol))
	}

	if c.MaxNameLength < 1 {
		errors = append(errors, fmt.Sprintf("invalid max name length %d: must be at least 1", c.MaxNameLength))
	} else if c.MaxNameLength > 200 {
		errors = append(errors, fmt.Sprintf("invalid max name length %d: must be at most 200", c.MaxNameLength))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
