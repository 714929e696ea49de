package buffer

import (
	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
)

type Disposition int

const (
	// DispositionPassthrough means the event was not touched and must be
	// delivered normally by the caller.
	DispositionPassthrough Disposition = iota

	// DispositionCached means the engine took ownership of the event and the
	// caller must suppress normal delivery.
	DispositionCached
)

// Result is the outcome of an interception. Event is populated only for
// passthrough results.
type Result struct {
	Disposition Disposition
	Event       events.Event
}

func (r Result) Cached() bool {
	return r.Disposition == DispositionCached
}

// Intercept is called for every outbound event before delivery. While the
// signal reports definitively offline the event is cached asynchronously and
// delivery is suppressed; in any other state, including unknown, the event
// passes through unchanged.
//
// The cached result is returned before the store write happens. Callers must
// not depend on the write having completed, and a failed write costs at most
// one dropped event and a logged warning.
func (e *Engine) Intercept(event events.Event) Result {
	if e.signal.State() != connectivity.StateOffline {
		return Result{Disposition: DispositionPassthrough, Event: event}
	}

	e.pending.Add(1)
	go func() {
		defer e.pending.Done()

		if _, err := e.CacheEvent(event); err != nil {
			e.logger.V(1).Info("failed to cache event", "error", err, "level", event.Level)
			return
		}

		if err := e.EnforceMaxEvents(); err != nil {
			e.logger.V(1).Info("failed to enforce retention limit", "error", err)
		}
	}()

	return Result{Disposition: DispositionCached}
}
