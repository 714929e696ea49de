package buffer

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

const DefaultMaxStoredEvents = 30

// Engine intercepts outbound telemetry events, caches them while the
// connectivity signal reports offline, bounds the cache by evicting the oldest
// entries past the retention limit, and flushes cached events through the sink
// whenever connectivity comes back.
//
// The engine never blocks the interception path on storage: caching and
// eviction run on their own goroutines and their failures surface only as
// logged warnings.
type Engine struct {
	maxStoredEvents int
	store           store.EventStore
	signal          connectivity.Signal
	logger          logr.Logger

	mu   sync.RWMutex
	sink events.Sink

	pending sync.WaitGroup
}

// NewEngine creates an engine bound to the given store and connectivity
// signal. sink may be nil and bound later via Bind; until then flush attempts
// log a warning and leave the cache untouched. maxStoredEvents values <= 0
// fall back to DefaultMaxStoredEvents.
//
// The engine subscribes to the signal's went-online notification, and if the
// signal already reports online it schedules one eager flush for events cached
// by a previous run.
func NewEngine(st store.EventStore, signal connectivity.Signal, sink events.Sink, maxStoredEvents int, logger logr.Logger) *Engine {
	if maxStoredEvents <= 0 {
		maxStoredEvents = DefaultMaxStoredEvents
	}

	e := &Engine{
		maxStoredEvents: maxStoredEvents,
		store:           st,
		signal:          signal,
		sink:            sink,
		logger:          logger,
	}

	signal.OnOnline(e.flushAsync)

	if signal.State() == connectivity.StateOnline {
		e.flushAsync()
	}

	return e
}

// Bind attaches the sink used for flushing cached events. The hub context of
// a telemetry client often does not exist yet when the engine is constructed.
func (e *Engine) Bind(sink events.Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = sink
}

func (e *Engine) currentSink() events.Sink {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sink
}

// MaxStoredEvents returns the retention limit in effect.
func (e *Engine) MaxStoredEvents() int {
	return e.maxStoredEvents
}

// WaitPending blocks until all in-flight cache and flush goroutines have
// finished. Hosts call this on shutdown so cached events reach disk.
func (e *Engine) WaitPending() {
	e.pending.Wait()
}

func (e *Engine) flushAsync() {
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		if err := e.SendEvents(context.Background()); err != nil {
			e.logger.V(1).Info("failed to flush cached events", "error", err)
		}
	}()
}
