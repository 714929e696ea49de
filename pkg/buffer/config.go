package buffer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
)

// Config holds all buffer configuration
type Config struct {
	// Application metadata
	AppName    string
	AppVersion string

	// Storage configuration
	DataPath string

	// Retention configuration
	MaxStoredEvents int

	// Connectivity polling interval
	PollInterval time.Duration

	// Diagnostics server configuration; empty Port disables the listener
	Port string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		AppName:         "telemetry-buffer",
		AppVersion:      getEnvOrDefault("VERSION", "dev"),
		DataPath:        getEnvOrDefault("BUFFER_DATA_PATH", "/data/telemetry-buffer"),
		MaxStoredEvents: parseIntOrDefault("BUFFER_MAX_STORED_EVENTS", DefaultMaxStoredEvents),
		PollInterval:    parseDurationOrDefault("BUFFER_POLL_INTERVAL", connectivity.DefaultPollInterval),
		Port:            os.Getenv("BUFFER_DIAGNOSTICS_PORT"),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("AppName cannot be empty")
	}
	if c.DataPath == "" {
		return fmt.Errorf("DataPath cannot be empty")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("PollInterval must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
