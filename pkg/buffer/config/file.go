package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garunski/telemetry-buffer/pkg/buffer"
	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
)

type fileConfig struct {
	AppName         string `yaml:"appName"`
	AppVersion      string `yaml:"appVersion"`
	DataPath        string `yaml:"dataPath"`
	MaxStoredEvents *int   `yaml:"maxStoredEvents"`
	PollInterval    string `yaml:"pollInterval"`
	Port            string `yaml:"port"`
}

// LoadFile reads a YAML configuration file and merges it over the defaults.
// Absent fields keep their default values.
func LoadFile(path string) (buffer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return buffer.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return buffer.Config{}, apperrors.WrapInvalid(err, fmt.Sprintf("failed to parse config file %s", path))
	}

	cfg := buffer.DefaultConfig()
	if fc.AppName != "" {
		cfg.AppName = fc.AppName
	}
	if fc.AppVersion != "" {
		cfg.AppVersion = fc.AppVersion
	}
	if fc.DataPath != "" {
		cfg.DataPath = fc.DataPath
	}
	if fc.MaxStoredEvents != nil {
		cfg.MaxStoredEvents = *fc.MaxStoredEvents
	}
	if fc.PollInterval != "" {
		interval, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return buffer.Config{}, apperrors.WrapInvalid(err, fmt.Sprintf("pollInterval in %s", path))
		}
		cfg.PollInterval = interval
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}

	if err := cfg.Validate(); err != nil {
		return buffer.Config{}, apperrors.WrapInvalid(err, fmt.Sprintf("config file %s", path))
	}

	return cfg, nil
}
