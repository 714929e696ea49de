package buffer

import (
	"testing"
	"time"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.AppName != "telemetry-buffer" {
		t.Errorf("DefaultConfig() AppName = %v, want telemetry-buffer", cfg.AppName)
	}

	if cfg.DataPath != getEnvOrDefault("BUFFER_DATA_PATH", "/data/telemetry-buffer") {
		t.Errorf("DefaultConfig() DataPath = %v, want /data/telemetry-buffer (or env value)", cfg.DataPath)
	}

	if cfg.MaxStoredEvents != parseIntOrDefault("BUFFER_MAX_STORED_EVENTS", DefaultMaxStoredEvents) {
		t.Errorf("DefaultConfig() MaxStoredEvents = %v, want %v (or env value)", cfg.MaxStoredEvents, DefaultMaxStoredEvents)
	}

	if cfg.PollInterval != parseDurationOrDefault("BUFFER_POLL_INTERVAL", connectivity.DefaultPollInterval) {
		t.Errorf("DefaultConfig() PollInterval = %v, want %v (or env value)", cfg.PollInterval, connectivity.DefaultPollInterval)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				AppName:         "test",
				DataPath:        "/tmp/test",
				MaxStoredEvents: 30,
				PollInterval:    time.Minute,
			},
			wantErr: false,
		},
		{
			name: "empty AppName",
			config: Config{
				AppName:      "",
				DataPath:     "/tmp/test",
				PollInterval: time.Minute,
			},
			wantErr: true,
		},
		{
			name: "empty DataPath",
			config: Config{
				AppName:      "test",
				DataPath:     "",
				PollInterval: time.Minute,
			},
			wantErr: true,
		},
		{
			name: "zero PollInterval",
			config: Config{
				AppName:  "test",
				DataPath: "/tmp/test",
			},
			wantErr: true,
		},
		{
			name: "non-positive MaxStoredEvents is allowed, engine falls back",
			config: Config{
				AppName:         "test",
				DataPath:        "/tmp/test",
				MaxStoredEvents: -1,
				PollInterval:    time.Minute,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseIntOrDefault(t *testing.T) {
	t.Setenv("BUFFER_TEST_INT", "42")
	if got := parseIntOrDefault("BUFFER_TEST_INT", 7); got != 42 {
		t.Errorf("parseIntOrDefault() = %v, want 42", got)
	}

	t.Setenv("BUFFER_TEST_INT", "not-a-number")
	if got := parseIntOrDefault("BUFFER_TEST_INT", 7); got != 7 {
		t.Errorf("parseIntOrDefault() = %v, want default 7", got)
	}

	if got := parseIntOrDefault("BUFFER_TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("parseIntOrDefault() = %v, want default 7", got)
	}
}

func TestParseDurationOrDefault(t *testing.T) {
	t.Setenv("BUFFER_TEST_DURATION", "90s")
	if got := parseDurationOrDefault("BUFFER_TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("parseDurationOrDefault() = %v, want 90s", got)
	}

	t.Setenv("BUFFER_TEST_DURATION", "garbage")
	if got := parseDurationOrDefault("BUFFER_TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("parseDurationOrDefault() = %v, want default 1m", got)
	}
}
