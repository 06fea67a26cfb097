// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/emysliwietz/rosarium/internal/prayer"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Prayers
	PrayerDir string          // Directory with one subdirectory per language
	Language  prayer.Language // Preferred language of prayer texts
	CacheSize int             // Number of prayer texts kept in memory

	// Audio
	AudioEnabled bool   // Play recordings while praying
	AudioCommand string // External player, e.g. paplay
	Volume       int    // Initial volume, 0..100

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
	LogFile   string // Path of the log file, "-" for stderr
}

// LogToStderr is the LOG_FILE value that sends logs to stderr.
const LogToStderr = "-"

// Load reads configuration from environment variables.
// It first loads a .env file from the working directory if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	// Prayers
	cfg.PrayerDir = getEnv("ROSARIUM_PRAYER_DIR", "preces")
	cfg.Language = prayer.Language(strings.ToLower(getEnv("ROSARIUM_LANGUAGE", string(prayer.Latina))))
	cfg.CacheSize = getEnvInt("ROSARIUM_CACHE_SIZE", 128)

	// Audio
	cfg.AudioEnabled = getEnvBool("ROSARIUM_AUDIO", false)
	cfg.AudioCommand = getEnv("ROSARIUM_AUDIO_COMMAND", "paplay")
	cfg.Volume = getEnvInt("ROSARIUM_VOLUME", 100)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")
	cfg.LogFile = getEnv("LOG_FILE", "rosarium.log")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.PrayerDir == "" {
		errs = append(errs, errors.New("ROSARIUM_PRAYER_DIR is required"))
	}

	if _, err := prayer.ParseLanguage(string(c.Language)); err != nil {
		errs = append(errs, fmt.Errorf("ROSARIUM_LANGUAGE: %w", err))
	}

	if c.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("ROSARIUM_CACHE_SIZE must be positive, got %d", c.CacheSize))
	}

	// The player command only matters when audio is on
	if c.AudioEnabled && c.AudioCommand == "" {
		errs = append(errs, errors.New("ROSARIUM_AUDIO_COMMAND is required when audio is enabled"))
	}

	if c.Volume < 0 || c.Volume > 100 {
		errs = append(errs, fmt.Errorf("ROSARIUM_VOLUME must be between 0 and 100, got %d", c.Volume))
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

	if c.LogFile == "" {
		errs = append(errs, errors.New("LOG_FILE is required (use \"-\" for stderr)"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// VolumeFraction returns the volume in the range 0..1.
func (c *Config) VolumeFraction() float64 {
	return float64(c.Volume) / 100
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool reads an environment variable as a boolean with a default fallback.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
