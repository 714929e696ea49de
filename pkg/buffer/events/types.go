package events

import "time"

type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
)

// Event is a single telemetry record as produced by the host client. It has no
// identifier of its own: delivery identifiers are assigned by the sink, and
// storage keys are generated when an event is cached.
type Event struct {
	Level     Level                  `json:"level"`
	Message   string                 `json:"message"`
	Error     string                 `json:"error,omitempty"`
	Logger    string                 `json:"logger,omitempty"`
	Timestamp time.Time              `json:"timestamp,omitempty"`
	Tags      map[string]string      `json:"tags,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// SortKey is the ordering key used when ranking cached events by recency.
// Events without a timestamp rank as 0, older than any stamped event.
func (e Event) SortKey() int64 {
	if e.Timestamp.IsZero() {
		return 0
	}
	return e.Timestamp.UnixMilli()
}
