package events

import (
	"errors"
	"testing"
	"time"
)

func TestError(t *testing.T) {
	testErr := errors.New("test error")
	event := Error("app.worker", "Error message", testErr)

	if event.Level != LevelError {
		t.Errorf("Error() Level = %v, want %v", event.Level, LevelError)
	}

	if event.Logger != "app.worker" {
		t.Errorf("Error() Logger = %v, want app.worker", event.Logger)
	}

	if event.Message != "Error message" {
		t.Errorf("Error() Message = %v, want Error message", event.Message)
	}

	if event.Error != "test error" {
		t.Errorf("Error() Error = %v, want test error", event.Error)
	}

	if event.Timestamp.IsZero() {
		t.Error("Error() Timestamp should not be zero")
	}
}

func TestErrorNilErr(t *testing.T) {
	event := Error("app.worker", "Error message", nil)

	if event.Error != "" {
		t.Errorf("Error() Error = %v, want empty", event.Error)
	}
}

func TestWarning(t *testing.T) {
	event := Warning("app.worker", "Warning message")

	if event.Level != LevelWarning {
		t.Errorf("Warning() Level = %v, want %v", event.Level, LevelWarning)
	}

	if event.Message != "Warning message" {
		t.Errorf("Warning() Message = %v, want Warning message", event.Message)
	}

	if event.Timestamp.IsZero() {
		t.Error("Warning() Timestamp should not be zero")
	}
}

func TestInfo(t *testing.T) {
	event := Info("app.worker", "Info message")

	if event.Level != LevelInfo {
		t.Errorf("Info() Level = %v, want %v", event.Level, LevelInfo)
	}
}

func TestDebug(t *testing.T) {
	event := Debug("app.worker", "Debug message")

	if event.Level != LevelDebug {
		t.Errorf("Debug() Level = %v, want %v", event.Level, LevelDebug)
	}
}

func TestSortKey(t *testing.T) {
	stamped := Event{Timestamp: time.UnixMilli(1700000000000)}
	if stamped.SortKey() != 1700000000000 {
		t.Errorf("SortKey() = %d, want 1700000000000", stamped.SortKey())
	}

	unstamped := Event{}
	if unstamped.SortKey() != 0 {
		t.Errorf("SortKey() for zero timestamp = %d, want 0", unstamped.SortKey())
	}

	if unstamped.SortKey() >= stamped.SortKey() {
		t.Error("unstamped event should rank older than stamped event")
	}
}
