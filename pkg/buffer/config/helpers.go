package config

import (
	"fmt"
	"time"

	"github.com/garunski/telemetry-buffer/pkg/buffer"
)

// Builder provides a fluent interface for building buffer configuration.
type Builder struct {
	config buffer.Config
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		config: buffer.DefaultConfig(),
	}
}

// WithAppName sets the application name.
func (b *Builder) WithAppName(name string) *Builder {
	b.config.AppName = name
	return b
}

// WithAppVersion sets the application version.
func (b *Builder) WithAppVersion(version string) *Builder {
	b.config.AppVersion = version
	return b
}

// WithDataPath sets the event storage path.
func (b *Builder) WithDataPath(path string) *Builder {
	b.config.DataPath = path
	return b
}

// WithMaxStoredEvents sets the retention limit.
func (b *Builder) WithMaxStoredEvents(max int) *Builder {
	b.config.MaxStoredEvents = max
	return b
}

// WithPollInterval sets the connectivity polling interval.
func (b *Builder) WithPollInterval(interval time.Duration) *Builder {
	b.config.PollInterval = interval
	return b
}

// WithPort enables the diagnostics server on the given port.
func (b *Builder) WithPort(port string) *Builder {
	b.config.Port = port
	return b
}

// Build returns the configured Config and validates it.
// Returns an error if validation fails.
func (b *Builder) Build() (buffer.Config, error) {
	if err := b.config.Validate(); err != nil {
		return buffer.Config{}, err
	}
	return b.config, nil
}

// MustBuild returns the configured Config and panics if validation fails.
func (b *Builder) MustBuild() buffer.Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return cfg
}
