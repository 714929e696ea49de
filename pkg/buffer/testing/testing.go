package testing

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/database"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

// NewTestLogger creates a test logger
func NewTestLogger() logr.Logger {
	zapLog, _ := zap.NewDevelopment()
	return zapr.NewLogger(zapLog)
}

// NewTestDB creates a test database
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewTestDB(t)
	if err != nil {
		t.Fatalf("failed to create test DB: %v", err)
	}
	return db
}

// NewTestStore creates a pending-event store over an in-memory database
func NewTestStore(t *testing.T) store.EventStore {
	db := NewTestDB(t)
	return store.NewPendingStore(db, logr.Discard())
}

// NewTestSignal creates a manual connectivity signal in the given state
func NewTestSignal(state connectivity.State) *connectivity.Manual {
	return connectivity.NewManual(state)
}

// RecordingSink is a Sink test double. It records every submitted event and
// can be set to reject deliveries.
type RecordingSink struct {
	mu        sync.Mutex
	accepted  []events.Event
	rejected  []events.Event
	rejecting bool
	nextID    int
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) Submit(ctx context.Context, event events.Event) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rejecting {
		s.rejected = append(s.rejected, event)
		return "", false
	}

	s.nextID++
	s.accepted = append(s.accepted, event)
	return fmt.Sprintf("event-%d", s.nextID), true
}

// Reject makes subsequent Submit calls report non-delivery.
func (s *RecordingSink) Reject(rejecting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejecting = rejecting
}

// Accepted returns the events the sink accepted, in submission order.
func (s *RecordingSink) Accepted() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.Event{}, s.accepted...)
}

// Rejected returns the events the sink turned away.
func (s *RecordingSink) Rejected() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.Event{}, s.rejected...)
}
